package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/money_planner/internal/adapters/amqp"
	"github.com/SscSPs/money_planner/internal/core/ports/events"
	portsrepo "github.com/SscSPs/money_planner/internal/core/ports/repositories"
	"github.com/SscSPs/money_planner/internal/platform/config"
	"github.com/SscSPs/money_planner/internal/repositories/database/pgsql"
	"github.com/SscSPs/money_planner/internal/repositories/database/sqlite"
	"github.com/SscSPs/money_planner/pkg/database"
	"github.com/spf13/cobra"
)

var (
	flagBackend string
	flagOwner   string
)

var rootCmd = &cobra.Command{
	Use:           "mma_planner",
	Short:         "Money planner backend",
	Long:          "Projects goals, debts, receivables and investments into monthly budget records.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Storage backend override (postgres or sqlite)")
}

// setup loads configuration and installs a JSON logger writing to logOut as the default.
func setup(logOut io.Writer) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	if flagBackend != "" {
		cfg.DataBackend = flagBackend
		if err := cfg.Validate(); err != nil {
			return nil, nil, err
		}
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

// openRepositories connects the configured backend. The returned func releases it.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.DataBackend {
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.SQLiteDBPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("open sqlite database: %w", err)
		}
		logger.Info("SQLite database opened", slog.String("path", cfg.SQLiteDBPath))
		return sqlite.NewRepositoryProvider(db), func() {
			if err := db.Close(); err != nil {
				logger.Error("Error closing sqlite database", slog.String("error", err.Error()))
			}
		}, nil
	default:
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
}

// openPublisher connects to the broker when AMQP_URL is set. Without it, events are dropped.
func openPublisher(cfg *config.Config, logger *slog.Logger) (events.BudgetEventPublisher, func(), error) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, budget change events are disabled")
		return events.NoopPublisher{}, func() {}, nil
	}
	publisher, err := amqp.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to broker: %w", err)
	}
	logger.Info("Publishing budget change events", slog.String("exchange", cfg.AMQPExchange))
	return publisher, func() {
		if err := publisher.Close(); err != nil {
			logger.Error("Error closing AMQP publisher", slog.String("error", err.Error()))
		}
	}, nil
}

// migrationDSN returns the connection string migrations run against.
func migrationDSN(cfg *config.Config) string {
	if cfg.DataBackend == config.BackendSQLite {
		return cfg.SQLiteDBPath
	}
	return cfg.DatabaseURL
}

func requireOwnerFlag() error {
	if flagOwner == "" {
		return fmt.Errorf("--owner is required")
	}
	return nil
}
