package main

import (
	"context"
	"os"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/services"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/SscSPs/money_planner/internal/utils/export"
	"github.com/spf13/cobra"
)

var (
	flagPreviewKind   string
	flagPreviewID     string
	flagPreviewStart  string
	flagPreviewEnd    string
	flagPreviewFormat string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print an obligation's projection without writing budget records",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagOwner, "owner", "", "Owner ID")
	previewCmd.Flags().StringVar(&flagPreviewKind, "kind", "", "Obligation kind (goal, debt, receivable, investment)")
	previewCmd.Flags().StringVar(&flagPreviewID, "id", "", "Obligation ID")
	previewCmd.Flags().StringVar(&flagPreviewStart, "start", "", "First month (YYYY-MM)")
	previewCmd.Flags().StringVar(&flagPreviewEnd, "end", "", "Last month (YYYY-MM)")
	previewCmd.Flags().StringVarP(&flagPreviewFormat, "format", "f", "csv", "Output format (csv or yaml)")
	_ = previewCmd.MarkFlagRequired("kind")
	_ = previewCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	if err := requireOwnerFlag(); err != nil {
		return err
	}
	kind, err := domain.ParseObligationKind(flagPreviewKind)
	if err != nil {
		return err
	}
	format, err := export.ParseFormat(flagPreviewFormat)
	if err != nil {
		return err
	}
	window, err := dto.ParseWindow(flagPreviewStart, flagPreviewEnd)
	if err != nil {
		return err
	}

	cfg, logger, err := setup(os.Stderr)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	repos, closeRepos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepos()

	container := services.NewServiceContainer(cfg, repos, nil)
	lines, err := container.Plan.Preview(ctx, flagOwner, kind, flagPreviewID, window)
	if err != nil {
		return err
	}
	return export.Write(os.Stdout, format, lines)
}
