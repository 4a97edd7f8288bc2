package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/statement-top-amounts/client"
	"github.com/Aashish23092/statement-top-amounts/config"
	"github.com/Aashish23092/statement-top-amounts/dto"
	"github.com/Aashish23092/statement-top-amounts/internal/buildinfo"
	"github.com/Aashish23092/statement-top-amounts/service"
	"github.com/Aashish23092/statement-top-amounts/utils/topamounts"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "top5",
		Short:   "Top five debits and credits of an extracted statement table",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRankCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}

// rankOptions are the flags shared by every command that reads a statement.
type rankOptions struct {
	signPolicy string
	password   string
}

func (o *rankOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.signPolicy, "sign-policy", "", "how signs reach ranked values: legacy or magnitude (default from SIGN_POLICY)")
	cmd.Flags().StringVar(&o.password, "password", "", "password of an encrypted PDF statement")
}

// rankFile extracts the table in path and ranks it.
func (o *rankOptions) rankFile(ctx context.Context, path string) (*service.StatementService, dto.RankedResult, error) {
	cfg := config.LoadConfig()

	policyName := o.signPolicy
	if policyName == "" {
		policyName = cfg.SignPolicy
	}
	policy, err := topamounts.ParseSignPolicy(policyName)
	if err != nil {
		return nil, dto.RankedResult{}, err
	}

	var extractor service.TableExtractor
	if cfg.TableExtractorURL != "" {
		extractor = client.NewTableClient(cfg.TableExtractorURL, cfg.TableExtractorTimeout)
	}
	svc := service.NewStatementService(
		service.NewPDFProcessor(),
		client.NewTesseractClient(cfg.TesseractDataPath),
		extractor,
		topamounts.Options{SignPolicy: policy},
	)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, dto.RankedResult{}, fmt.Errorf("reading statement: %w", err)
	}

	table, err := svc.ExtractTable(ctx, path, data, o.password)
	if err != nil {
		return nil, dto.RankedResult{}, fmt.Errorf("extracting table: %w", err)
	}

	return svc, svc.TopAmounts(table), nil
}
