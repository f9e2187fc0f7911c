package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Callisto - SAT-backed feature model analyzer",
	Long: `Callisto analyzes software product line feature models.

It parses XML feature model documents, compiles the tree and its cross-tree
constraints into propositional logic, and uses a SAT solver to answer
product-line questions:
  - Enumerate all minimal valid products
  - Validate candidate feature selections with targeted diagnostics
  - Serve the analysis over an HTTP API

For more information, visit: https://github.com/mercator-hq/callisto`,
	Version: Version,
	// Execute prints errors itself; without these cobra would print the
	// error a second time and dump usage on runtime failures.
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
