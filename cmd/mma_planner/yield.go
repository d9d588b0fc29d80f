package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/money_planner/internal/core/services"
	"github.com/SscSPs/money_planner/internal/dto"
	"github.com/spf13/cobra"
)

var (
	flagYieldMonth string
	flagYieldAsOf  string
)

var yieldCmd = &cobra.Command{
	Use:   "yield",
	Short: "Record a month's account yield as next month's income budget",
	RunE:  runYield,
}

func init() {
	yieldCmd.Flags().StringVar(&flagOwner, "owner", "", "Owner ID")
	yieldCmd.Flags().StringVar(&flagYieldMonth, "month", "", "Month to reconstruct (YYYY-MM), defaults to last month")
	yieldCmd.Flags().StringVar(&flagYieldAsOf, "as-of", "", "Date the stored balances are valid for (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(yieldCmd)
}

func runYield(cmd *cobra.Command, _ []string) error {
	if err := requireOwnerFlag(); err != nil {
		return err
	}

	now := time.Now().UTC()
	asOf := now
	if flagYieldAsOf != "" {
		var err error
		if asOf, err = dto.ParseDate(flagYieldAsOf); err != nil {
			return err
		}
	}
	monthText := flagYieldMonth
	if monthText == "" {
		monthText = now.AddDate(0, -1, 0).Format("2006-01")
	}
	month, err := dto.ParseMonth(monthText)
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
	publisher, closePublisher, err := openPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	container := services.NewServiceContainer(cfg, repos, publisher)
	outcome, err := container.Yield.GenerateMonthlyYield(ctx, flagOwner, month, asOf)
	if err != nil {
		return err
	}

	logger.Info("Yield generated",
		slog.String("month", outcome.Month.String()),
		slog.String("target_month", outcome.Target.String()),
		slog.Int64("total", outcome.Total),
		slog.Bool("created", outcome.Created),
		slog.Int("accounts", len(outcome.Accounts)))
	return nil
}
