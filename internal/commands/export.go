package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/statement-top-amounts/service"
)

func newExportCommand() *cobra.Command {
	var (
		opts   rankOptions
		output string
		format string
	)

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the top debits and credits report of a statement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, result, err := opts.rankFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			export, err := svc.Export(result, format)
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = export.Filename
			}
			if err := os.WriteFile(path, export.Body, 0o644); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d debits and %d credits to %s\n", len(result.Debits), len(result.Credits), path)
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "report path (default top5_debit_credit.<format>)")
	cmd.Flags().StringVar(&format, "format", service.FormatCSV, "report format: csv or xlsx")
	return cmd
}
