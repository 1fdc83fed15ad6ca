// Package cli implements the nobra command line interface: offline access to
// the same calculator registry the HTTP server exposes.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nobra",
	Short: "Clinical score calculators from the command line",
	Long: `nobra evaluates medical risk scores and clinical calculators locally,
using the same catalog and validation rules as the REST API.

Use "nobra list" to browse the catalog, "nobra describe <id>" to see a
calculator's parameters, and "nobra calc <id> --params '<json>'" to run one.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
