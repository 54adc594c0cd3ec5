package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields <file.docx>",
	Short: "List the merge fields left in the normalized letter",
	Long: `Fields converts a Word document and prints every {[Field]} placeholder
of the normalized letter with its number of occurrences, in order of first
appearance.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := newLogger()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		res, _, err := converter(cmd, args[0], logger).WithoutDiagnostics().Fields().Process()
		if err != nil {
			return err
		}
		for _, f := range res.Fields {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", f.Name, f.Count)
		}
		return nil
	},
}

func init() {
	fieldsCmd.Flags().Bool("extended", false, "apply the plsMatrix, money and title rewrites")
	rootCmd.AddCommand(fieldsCmd)
}
