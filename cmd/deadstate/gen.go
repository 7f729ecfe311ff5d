package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/deadstate/classify"
	"github.com/katalvlaran/deadstate/scenario"
	"github.com/spf13/cobra"
)

// wireTx mirrors runner's unexported wireTransaction shape (spec
// section 6.1) from the encoding side, so gen can write transaction
// logs that DecodeTransactionLog reads back unchanged. U is a pointer
// so that "u" is written for every two-vertex kind, including u == 0,
// and omitted for close/live.
type wireTx struct {
	Kind string `json:"kind"`
	U    *int   `json:"u,omitempty"`
	V    int    `json:"v"`
}

func encodeTransactions(txs []classify.Transaction) []wireTx {
	out := make([]wireTx, 0, len(txs))
	for _, tx := range txs {
		u := tx.V1
		switch tx.Kind {
		case classify.TxAdd:
			out = append(out, wireTx{Kind: "add", U: &u, V: tx.V2})
		case classify.TxClose:
			out = append(out, wireTx{Kind: "close", V: tx.V1})
		case classify.TxLive:
			out = append(out, wireTx{Kind: "live", V: tx.V1})
		case classify.TxNotReachable:
			out = append(out, wireTx{Kind: "not_reachable", U: &u, V: tx.V2})
		}
	}
	return out
}

func genCmd() *cobra.Command {
	var (
		topology  string
		n         int
		p         float64
		edgeCount int
		seed      int64
		leaveOpen int
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a deterministic transaction log for one of the built-in topologies",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []scenario.Option{scenario.WithSeed(seed)}
			if leaveOpen >= 0 {
				opts = append(opts, scenario.WithLeaveOpen(leaveOpen))
			}

			var txs []classify.Transaction
			switch topology {
			case "path":
				txs = scenario.Path(n, opts...)
			case "cycle":
				txs = scenario.Cycle(n, opts...)
			case "star":
				txs = scenario.Star(n, opts...)
			case "wheel":
				txs = scenario.Wheel(n, opts...)
			case "random-sparse":
				txs = scenario.RandomSparse(n, p, opts...)
			case "random-dag":
				txs = scenario.RandomDAG(n, edgeCount, opts...)
			default:
				return fmt.Errorf("unknown topology %q, want one of path|cycle|star|wheel|random-sparse|random-dag", topology)
			}

			raw, err := json.MarshalIndent(encodeTransactions(txs), "", "  ")
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(append(raw, '\n'))
				return err
			}
			return os.WriteFile(outPath, raw, 0o644)
		},
	}

	cmd.Flags().StringVar(&topology, "topology", "path", "path|cycle|star|wheel|random-sparse|random-dag")
	cmd.Flags().IntVar(&n, "n", 4, "number of vertices")
	cmd.Flags().Float64Var(&p, "p", 0.3, "edge probability, for random-sparse")
	cmd.Flags().IntVar(&edgeCount, "edges", 4, "edge count, for random-dag")
	cmd.Flags().Int64Var(&seed, "seed", 1, "RNG seed, for random-sparse and random-dag")
	cmd.Flags().IntVar(&leaveOpen, "leave-open", -1, "vertex to leave unclosed instead of closing every vertex")
	cmd.Flags().StringVar(&outPath, "out", "", "output path, default stdout")

	return cmd
}
