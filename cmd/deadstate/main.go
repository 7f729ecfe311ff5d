// Command deadstate is the CLI front end for the dead-state detection
// library (spec section 1 places it outside the core, honoring the
// interface spec section 6 describes). Grounded on luxfi-consensus's
// cmd/consensus package: a single rootCmd with one subcommand per
// concern, flags resolved via cobra/pflag.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "deadstate",
	Short: "Incremental dead-state detection over a client-revealed directed graph",
	Long: `deadstate runs, generates, and cross-checks transaction logs against
the five interchangeable dead-state classification algorithms: naive,
simple, bfgt, jump, and polylog (plus its polylog-optimized variant).`,
}

func main() {
	rootCmd.AddCommand(
		runCmd(),
		genCmd(),
		compareCmd(),
		serveMetricsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
