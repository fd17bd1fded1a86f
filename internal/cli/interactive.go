package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/coregx/sqlmorph"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	interactiveFrom string
	interactiveTo   string
)

// interactiveCmd converts statements typed on stdin line by line.
var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Convert SQL statements line by line from stdin",
	Long: `Interactive reads one SQL statement per line, converts it, and prints the
result. An empty line, "exit", "quit", or end of input stops the loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.Printfln("Converting %s -> %s. Empty line or \"exit\" to quit.", interactiveFrom, interactiveTo)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Fprint(cmd.OutOrStdout(), "sqlmorph> ")
			if !scanner.Scan() {
				break
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" || line == "exit" || line == "quit" {
				break
			}

			session := sqlmorph.NewSession(line, interactiveFrom, interactiveTo)
			out, ok := session.Convert()
			if !ok {
				for _, msg := range session.Errors() {
					pterm.Error.Println(msg)
				}
				continue
			}
			for _, w := range session.Warnings() {
				pterm.Warning.Println(w)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		return scanner.Err()
	},
}

func init() {
	interactiveCmd.Flags().StringVar(&interactiveFrom, "from", "", "source dialect (required)")
	interactiveCmd.Flags().StringVar(&interactiveTo, "to", "", "target dialect (required)")
	_ = interactiveCmd.MarkFlagRequired("from")
	_ = interactiveCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(interactiveCmd)
}
