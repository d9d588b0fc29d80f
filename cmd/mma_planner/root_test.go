package main

import (
	"testing"

	"github.com/SscSPs/money_planner/internal/platform/config"
	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "regenerate", "yield", "preview", "token"} {
		assert.True(t, names[want], want)
	}
}

func TestMigrationDSN(t *testing.T) {
	pg := &config.Config{DataBackend: config.BackendPostgres, DatabaseURL: "postgres://localhost/planner", SQLiteDBPath: "x.db"}
	assert.Equal(t, "postgres://localhost/planner", migrationDSN(pg))

	lite := &config.Config{DataBackend: config.BackendSQLite, DatabaseURL: "postgres://localhost/planner", SQLiteDBPath: "x.db"}
	assert.Equal(t, "x.db", migrationDSN(lite))
}
