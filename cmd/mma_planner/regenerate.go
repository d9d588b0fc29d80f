package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/core/services"
	"github.com/spf13/cobra"
)

var (
	flagRegenKind      string
	flagRegenOverwrite bool
)

var regenerateCmd = &cobra.Command{
	Use:   "regenerate",
	Short: "Rebuild the budget records of every planned obligation of an owner",
	RunE:  runRegenerate,
}

func init() {
	regenerateCmd.Flags().StringVar(&flagOwner, "owner", "", "Owner ID")
	regenerateCmd.Flags().StringVar(&flagRegenKind, "kind", "", "Only regenerate one kind (goal, debt, receivable, investment)")
	regenerateCmd.Flags().BoolVar(&flagRegenOverwrite, "overwrite", false, "Replace existing records of the same source")
	rootCmd.AddCommand(regenerateCmd)
}

func runRegenerate(cmd *cobra.Command, _ []string) error {
	if err := requireOwnerFlag(); err != nil {
		return err
	}
	var kind *domain.ObligationKind
	if flagRegenKind != "" {
		k, err := domain.ParseObligationKind(flagRegenKind)
		if err != nil {
			return err
		}
		kind = &k
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
	publisher, closePublisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	container := services.NewServiceContainer(cfg, repos, publisher)
	outcome, err := container.Plan.RegenerateAll(ctx, flagOwner, kind, flagRegenOverwrite)
	if err != nil {
		return err
	}

	for _, s := range outcome.Succeeded {
		logger.Info("Obligation regenerated",
			slog.String("obligation_id", s.ObligationID),
			slog.String("kind", string(s.Kind)),
			slog.Int("created", s.Result.Created),
			slog.Int("updated", s.Result.Updated),
			slog.Int("skipped", s.Result.Skipped),
			slog.Int("deleted", s.Result.Deleted))
	}
	for _, f := range outcome.Failed {
		logger.Warn("Obligation failed to regenerate",
			slog.String("obligation_id", f.ObligationID),
			slog.String("kind", string(f.Kind)),
			slog.String("error", f.Error))
	}
	logger.Info("Regeneration finished", slog.Int("succeeded", len(outcome.Succeeded)), slog.Int("failed", len(outcome.Failed)))
	return nil
}
