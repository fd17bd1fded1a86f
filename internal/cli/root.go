// Package cli implements the sqlmorph command-line interface: thin glue
// around the conversion engine using the Cobra framework. All conversion
// behavior lives in the engine; this package only reads input, passes strings
// through the engine contract, and renders the results.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// rootCmd is the base command when sqlmorph is called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "sqlmorph",
	Short: "Convert SQL schema text between MySQL, PostgreSQL, and SQLite",
	Long: `sqlmorph converts SQL schema text between MySQL, PostgreSQL, and SQLite
dialects using ordered text rewrites and per-pair type-mapping tables. It does
not parse SQL; conversion is syntactic, and constructs without a textual
analogue in the target dialect pass through unchanged.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
