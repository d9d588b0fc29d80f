// Package migrations embeds the schema for both storage backends and applies it
// with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var migrationsFS embed.FS

// Backend names accepted by Run. They match the DATA_BACKEND config values.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Run applies every pending up migration for backend. dsn is a postgres URL or
// a sqlite file path. It returns the schema version after the run.
func Run(backend, dsn string, logger *slog.Logger) (uint, error) {
	if logger == nil {
		logger = slog.Default()
	}

	driverName := "pgx"
	if backend == SQLite {
		driverName = "sqlite"
	}

	// A separate connection keeps migrate from closing the application's pool.
	migrationDB, err := sql.Open(driverName, dsn)
	if err != nil {
		return 0, fmt.Errorf("open migration database: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return 0, fmt.Errorf("ping migration database: %w", err)
	}

	var driver database.Driver
	switch backend {
	case Postgres:
		driver, err = postgres.WithInstance(migrationDB, &postgres.Config{})
	case SQLite:
		driver, err = sqlite.WithInstance(migrationDB, &sqlite.Config{})
	default:
		return 0, fmt.Errorf("unknown migration backend %q", backend)
	}
	if err != nil {
		return 0, fmt.Errorf("create %s migration driver: %w", backend, err)
	}

	source, err := iofs.New(migrationsFS, backend)
	if err != nil {
		return 0, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, backend, driver)
	if err != nil {
		return 0, fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()
	version, dirty, verr := m.Version()

	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return 0, fmt.Errorf("apply migrations: %w", upErr)
	}
	if sourceErr != nil {
		return 0, fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return 0, fmt.Errorf("migration database error: %w", dbErr)
	}
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return 0, fmt.Errorf("read migration version: %w", verr)
	}
	if dirty {
		return version, fmt.Errorf("database schema version %d is dirty", version)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.", slog.String("backend", backend), slog.Uint64("version", uint64(version)))
	} else {
		logger.Info("Database migrations applied successfully.", slog.String("backend", backend), slog.Uint64("version", uint64(version)))
	}
	return version, nil
}
