package cli

import (
	"sort"
	"strings"

	"github.com/coregx/sqlmorph"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// dialectsCmd lists the supported dialects and their accepted aliases.
var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List supported dialects and their aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		byCanonical := make(map[string][]string)
		for alias, canonical := range sqlmorph.DialectAliases() {
			byCanonical[canonical] = append(byCanonical[canonical], alias)
		}

		rows := pterm.TableData{{"Dialect", "Aliases"}}
		for _, name := range sqlmorph.SupportedDialects() {
			aliases := byCanonical[name]
			sort.Strings(aliases)
			rows = append(rows, []string{name, strings.Join(aliases, ", ")})
		}

		return pterm.DefaultTable.
			WithHasHeader().
			WithData(rows).
			WithWriter(cmd.OutOrStdout()).
			Render()
	},
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}
