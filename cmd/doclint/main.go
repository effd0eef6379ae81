package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "doclint",
		Short: "Documentation graph validator and traceability matrix generator",
		Long: `doclint validates a docs-as-code corpus of screens, components,
requirements, rules, flows and messages: it checks ID patterns, resolves
every cross-reference, flags structural problems, and generates the
traceability matrix.`,
		SilenceUsage: true,
	}

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(matrixCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
