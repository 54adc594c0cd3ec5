package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/joshuahamrick/ncformatter"
	"github.com/joshuahamrick/ncformatter/model"
)

// Flag variables.
var (
	flagFormat        string
	flagOutput        string
	flagNoDiagnostics bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.docx>",
	Short: "Convert one Word document",
	Long: `Convert reads a Word notice template and writes the normalized letter.

Formats:
  html      the normalized letter HTML (default)
  markdown  a Markdown preview of the letter
  json      the full response envelope served by "ncformatter serve"

Examples:
  ncformatter convert notice.docx
  ncformatter convert notice.docx --extended -o notice.html
  ncformatter convert notice.docx --format json --no-diagnostics`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&flagFormat, "format", "html", "output format: html, markdown, or json")
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output file (default: stdout)")
	convertCmd.Flags().BoolVar(&flagNoDiagnostics, "no-diagnostics", false, "omit the field cleanup banner")
	convertCmd.Flags().Bool("extended", false, "apply the plsMatrix, money and title rewrites")
	convertCmd.Flags().Bool("include-tables", false, "render Word tables after the paragraphs")

	rootCmd.AddCommand(convertCmd)
}

// converter builds the converter for path. A flag set on the command line
// wins over the config file and environment.
func converter(cmd *cobra.Command, path string, logger *zap.Logger) *ncformatter.Converter {
	conv := ncformatter.Open(path).Logger(logger)
	if boolSetting(cmd, "extended") {
		conv = conv.Extended()
	}
	if viper.IsSet("diagnostics") && !viper.GetBool("diagnostics") {
		conv = conv.WithoutDiagnostics()
	}
	if boolSetting(cmd, "include-tables") {
		conv = conv.IncludeTables()
	}
	return conv
}

func boolSetting(cmd *cobra.Command, name string) bool {
	if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
		v, _ := cmd.Flags().GetBool(name)
		return v
	}
	return viper.GetBool(strings.ReplaceAll(name, "-", "_"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	switch flagFormat {
	case "html", "markdown", "json":
	default:
		return fmt.Errorf("unknown format %q (want html, markdown, or json)", flagFormat)
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	conv := converter(cmd, args[0], logger)
	if flagNoDiagnostics {
		conv = conv.WithoutDiagnostics()
	}
	if flagFormat == "markdown" {
		conv = conv.Markdown()
	}

	res, warnings, err := conv.Process()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("conversion warning", zap.String("file", args[0]), zap.String("warning", w.Message))
	}

	var out io.Writer = os.Stdout
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeResult(out, res, flagFormat); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if flagOutput != "" {
		fmt.Fprintf(os.Stderr, "Wrote %s\n", flagOutput)
	}
	return nil
}

func writeResult(w io.Writer, res model.Result, format string) error {
	switch format {
	case "markdown":
		_, err := io.WriteString(w, res.Markdown)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	default:
		_, err := fmt.Fprintln(w, res.FormattedHTML)
		return err
	}
}
