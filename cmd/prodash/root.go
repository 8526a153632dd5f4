package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "prodash",
	Short: "Drive the prodash progress tree through its renderers",
	Long: `prodash demonstrates the shared, concurrent progress tree and its
two renderers: a single-region in-place line renderer and a full-screen
bubbletea dashboard.

Subcommands simulate one or more concurrent task producers and render their
progress with whichever renderer you choose.`,
}

// Execute runs the root command, exiting the process with status 1 on
// failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(lineCmd)
	rootCmd.AddCommand(tuiCmd)
}
