package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/money_planner/internal/platform/migrations"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, logger, err := setup(os.Stderr)
		if err != nil {
			return err
		}
		version, err := migrations.Run(cfg.DataBackend, migrationDSN(cfg), logger)
		if err != nil {
			return err
		}
		logger.Info("Database migrations applied", slog.String("backend", cfg.DataBackend), slog.Uint64("version", uint64(version)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
