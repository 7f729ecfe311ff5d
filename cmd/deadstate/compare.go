package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/deadstate/runner"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	var inPath string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run a transaction log against every algorithm and report any disagreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inPath, err)
			}
			txs, err := runner.DecodeTransactionLog(raw)
			if err != nil {
				return err
			}

			results, divergences, err := runner.Compare(txs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, res := range results {
				status := "ok"
				if res.TimedOut {
					status = "timed out"
				}
				fmt.Fprintf(out, "%-18s %s  time=%d space=%d elapsed=%s\n", res.Algorithm, status, res.Time, res.Space, res.Elapsed)
			}

			if len(divergences) == 0 {
				fmt.Fprintln(out, "all algorithms agree")
				return nil
			}

			for _, d := range divergences {
				fmt.Fprintf(out, "DIVERGENCE: %s vs %s\n  %s: %+v\n  %s: %+v\n", d.Left, d.Right, d.Left, d.LeftOut, d.Right, d.RightOut)
			}
			return fmt.Errorf("%d divergence(s) found", len(divergences))
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to a transaction log JSON file (required)")
	cmd.MarkFlagRequired("in")

	return cmd
}
