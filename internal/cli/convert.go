package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/coregx/sqlmorph"
	"github.com/coregx/sqlmorph/internal/logger"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	convertFrom    string
	convertTo      string
	convertOut     string
	convertMaps    []string
	convertVerbose bool
)

// convertCmd converts a schema file (or stdin) between dialects.
var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert a SQL schema file or stdin between dialects",
	Long: `Convert reads SQL schema text from a file (or stdin when no file is given),
converts it from the --from dialect to the --to dialect, and writes the result
to --out. Without --out, file input is written next to the input as
<name>.<target>.sql and stdin input goes to stdout.

Custom type mappings override the built-in tables:

  sqlmorph convert --from mysql --to postgres --map DATETIME=TIMESTAMPTZ schema.sql`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertFrom, "from", "", "source dialect (required)")
	convertCmd.Flags().StringVar(&convertTo, "to", "", "target dialect (required)")
	convertCmd.Flags().StringVarP(&convertOut, "out", "o", "", "output path (default: derived from the input path)")
	convertCmd.Flags().StringArrayVar(&convertMaps, "map", nil, "custom type mapping SOURCE=TARGET (repeatable)")
	convertCmd.Flags().BoolVarP(&convertVerbose, "verbose", "v", false, "log each rewrite pass")
	_ = convertCmd.MarkFlagRequired("from")
	_ = convertCmd.MarkFlagRequired("to")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	sqlText, inputPath, err := readInput(args)
	if err != nil {
		return err
	}

	opts, err := sessionOptions()
	if err != nil {
		return err
	}

	session := sqlmorph.NewSession(sqlText, convertFrom, convertTo, opts...)
	out, err := session.ConvertOrFail()
	if err != nil {
		for _, msg := range session.Errors() {
			pterm.Error.Println(msg)
		}
		return err
	}
	for _, w := range session.Warnings() {
		pterm.Warning.Println(w)
	}

	outPath := convertOut
	if outPath == "" && inputPath != "" {
		outPath = deriveOutputPath(inputPath, string(session.Target()))
	}
	if outPath == "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if err := os.WriteFile(outPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	pterm.Success.Printfln("Converted %s -> %s: %s", session.Source(), session.Target(), outPath)
	return nil
}

// readInput returns the SQL text and, for file input, the input path.
func readInput(args []string) (string, string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read input: %w", err)
	}
	return string(data), args[0], nil
}

// sessionOptions builds the session options from the command flags.
func sessionOptions() ([]sqlmorph.SessionOption, error) {
	opts := []sqlmorph.SessionOption{}

	if convertVerbose {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		opts = append(opts, sqlmorph.WithLogger(logger.NewSlogAdapter(slog.New(handler))))
	}

	if len(convertMaps) > 0 {
		pair := sqlmorph.Pair{
			Source: sqlmorph.ResolveDialect(convertFrom),
			Target: sqlmorph.ResolveDialect(convertTo),
		}
		dict := sqlmorph.NewDictionary()
		for _, m := range convertMaps {
			src, dst, ok := strings.Cut(m, "=")
			if !ok {
				return nil, fmt.Errorf("invalid --map %q: expected SOURCE=TARGET", m)
			}
			if err := dict.AddCustomMapping(pair, src, dst); err != nil {
				return nil, fmt.Errorf("invalid --map %q: %w", m, err)
			}
		}
		opts = append(opts, sqlmorph.WithDictionary(dict))
	}

	return opts, nil
}

// deriveOutputPath derives the default output path from the input path and
// the target dialect: schema.sql -> schema.postgres.sql.
func deriveOutputPath(inputPath, target string) string {
	base := strings.TrimSuffix(inputPath, ".sql")
	return base + "." + target + ".sql"
}
