package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/deadstate/runner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runCmd() *cobra.Command {
	var (
		inPath     string
		expectPath string
		algorithm  string
		timeout    time.Duration
		noStats    bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a transaction log against one algorithm",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inPath, err)
			}
			txs, err := runner.DecodeTransactionLog(raw)
			if err != nil {
				return err
			}

			opts := []runner.Option{WithCLILogger()}
			if timeout > 0 {
				opts = append(opts, runner.WithTimeout(timeout))
			}
			if expectPath != "" {
				expectedRaw, err := os.ReadFile(expectPath)
				if err != nil {
					return fmt.Errorf("reading %s: %w", expectPath, err)
				}
				expected, err := runner.DecodeExpectedOutput(expectedRaw)
				if err != nil {
					return err
				}
				opts = append(opts, runner.WithExpected(expected))
			}

			res, err := runner.Run(algorithm, txs, opts...)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}

			if !noStats {
				fmt.Fprintf(cmd.ErrOrStderr(), "time=%d space=%d elapsed=%s\n", res.Time, res.Space, res.Elapsed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "path to a transaction log JSON file (required)")
	cmd.Flags().StringVar(&expectPath, "expect", "", "path to an expected-output JSON file")
	cmd.Flags().StringVar(&algorithm, "algorithm", "simple", "algorithm to run: "+joinNames())
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "wall-clock budget checked between transactions, 0 means none")
	cmd.Flags().BoolVar(&noStats, "no-stats", false, "skip printing time/space counters to stderr")
	cmd.MarkFlagRequired("in")

	return cmd
}

// WithCLILogger attaches a production zap.Logger so run surfaces
// timeouts and completions the way a long-lived service would.
func WithCLILogger() runner.Option {
	logger, _ := zap.NewProduction()
	return runner.WithLogger(logger)
}

func joinNames() string {
	names := runner.AlgorithmNames()
	out := ""
	for i, n := range names {
		if i > 0 {
			out += "|"
		}
		out += n
	}
	return out
}
