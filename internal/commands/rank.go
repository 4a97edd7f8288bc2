package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newRankCommand() *cobra.Command {
	var opts rankOptions

	cmd := &cobra.Command{
		Use:   "rank FILE",
		Short: "Print the top debits and credits of a statement as JSON",
		Long: `Reads a statement table from FILE (.json, .csv, .xlsx, .xls, .pdf or an
image) and prints the five largest debits and credits as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, result, err := opts.rankFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			resp := svc.BuildResponse("", result)
			resp.ProcessedAt = time.Now().Format(time.RFC3339)

			out, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding result: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}

	opts.register(cmd)
	return cmd
}
