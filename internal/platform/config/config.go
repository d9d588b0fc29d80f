package config

import (
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported DATA_BACKEND values.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	LogLevel      slog.Level

	DataBackend  string
	SQLiteDBPath string

	// Change events; an empty AMQPURL disables publishing.
	AMQPURL      string
	AMQPExchange string

	// Plan engine
	PlanHorizonMonths         int
	RegenerationConcurrency   int
	AllowCrossSourceOverwrite bool
	YieldCategoryName         string

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := fromViper(v)
	if cfg.JWTSecret == defaultJWTSecret {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}
	if cfg.DataBackend == BackendPostgres && cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATA_BACKEND", BackendPostgres)
	v.SetDefault("SQLITE_DB_PATH", "./data/planner.db")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("AMQP_EXCHANGE", "money_planner")
	v.SetDefault("PLAN_HORIZON_MONTHS", 12)
	v.SetDefault("REGENERATION_CONCURRENCY", 4)
	v.SetDefault("ALLOW_CROSS_SOURCE_OVERWRITE", false)
	v.SetDefault("YIELD_CATEGORY_NAME", "Account Yield")
	v.SetDefault("RATE_LIMIT", "120-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{
		DatabaseURL:               v.GetString("PGSQL_URL"),
		Port:                      v.GetString("PORT"),
		IsProduction:              v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:             v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:                 v.GetString("JWT_SECRET"),
		LogLevel:                  parseLogLevel(v.GetString("LOG_LEVEL")),
		DataBackend:               strings.ToLower(v.GetString("DATA_BACKEND")),
		SQLiteDBPath:              v.GetString("SQLITE_DB_PATH"),
		AMQPURL:                   v.GetString("AMQP_URL"),
		AMQPExchange:              v.GetString("AMQP_EXCHANGE"),
		PlanHorizonMonths:         v.GetInt("PLAN_HORIZON_MONTHS"),
		RegenerationConcurrency:   v.GetInt("REGENERATION_CONCURRENCY"),
		AllowCrossSourceOverwrite: v.GetBool("ALLOW_CROSS_SOURCE_OVERWRITE"),
		YieldCategoryName:         v.GetString("YIELD_CATEGORY_NAME"),
		RateLimit:                 v.GetString("RATE_LIMIT"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}
	return cfg
}

func parseLogLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Validate validates the configuration and returns an error listing every problem found.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendPostgres:
		if c.IsProduction && c.DatabaseURL == "" {
			problems = append(problems, "PGSQL_URL is required in production when using the postgres backend")
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			problems = append(problems, "SQLite database path cannot be empty when using sqlite backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid data backend '%s': must be one of [%s %s]", c.DataBackend, BackendPostgres, BackendSQLite))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
	}

	if c.PlanHorizonMonths < 1 || c.PlanHorizonMonths > 120 {
		problems = append(problems, fmt.Sprintf("invalid plan horizon %d: must be between 1 and 120 months", c.PlanHorizonMonths))
	}
	if c.RegenerationConcurrency < 1 {
		problems = append(problems, fmt.Sprintf("invalid regeneration concurrency %d: must be at least 1", c.RegenerationConcurrency))
	}
	if strings.TrimSpace(c.YieldCategoryName) == "" {
		problems = append(problems, "yield category name cannot be empty")
	}
	if c.IsProduction && c.JWTSecret == defaultJWTSecret {
		problems = append(problems, "JWT_SECRET must be set in production")
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
