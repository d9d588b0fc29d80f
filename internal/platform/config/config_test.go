package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                    "8080",
		JWTSecret:               "secret",
		DataBackend:             BackendSQLite,
		SQLiteDBPath:            "planner.db",
		PlanHorizonMonths:       12,
		RegenerationConcurrency: 4,
		YieldCategoryName:       "Account Yield",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendSQLite, cfg.DataBackend)
	assert.Equal(t, 12, cfg.PlanHorizonMonths)
	assert.Equal(t, 4, cfg.RegenerationConcurrency)
	assert.False(t, cfg.AllowCrossSourceOverwrite)
	assert.Equal(t, "Account Yield", cfg.YieldCategoryName)
	assert.Equal(t, "120-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("DATA_BACKEND", "sqlite")
	t.Setenv("PLAN_HORIZON_MONTHS", "24")
	t.Setenv("ALLOW_CROSS_SOURCE_OVERWRITE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.PlanHorizonMonths)
	assert.True(t, cfg.AllowCrossSourceOverwrite)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"unknown backend", func(c *Config) { c.DataBackend = "memory" }, "invalid data backend"},
		{"empty sqlite path", func(c *Config) { c.SQLiteDBPath = "" }, "SQLite database path"},
		{"bad amqp scheme", func(c *Config) { c.AMQPURL = "http://localhost"; c.AMQPExchange = "x" }, "AMQP URL scheme"},
		{"zero horizon", func(c *Config) { c.PlanHorizonMonths = 0 }, "plan horizon"},
		{"zero concurrency", func(c *Config) { c.RegenerationConcurrency = 0 }, "regeneration concurrency"},
		{"default secret in production", func(c *Config) {
			c.IsProduction = true
			c.JWTSecret = defaultJWTSecret
		}, "JWT_SECRET"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_AggregatesProblems(t *testing.T) {
	c := validConfig()
	c.Port = "0"
	c.PlanHorizonMonths = 500

	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 0")
	assert.Contains(t, err.Error(), "invalid plan horizon 500")
}
