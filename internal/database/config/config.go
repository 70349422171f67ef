// Package config loads database connection settings from the environment.
package config

import (
	"fmt"
	"strings"

	appConfig "github.com/festy23/octofit_tracker/internal/config"
	"github.com/festy23/octofit_tracker/internal/database/pool"
	"github.com/festy23/octofit_tracker/pkg/retry"
)

// Supported values of DB_DRIVER.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds database connection configuration.
type Config struct {
	Driver   string
	Host     string
	User     string
	Password string
	DBName   string
	Port     string
	SSLMode  string
	TimeZone string
	// SQLitePath is the database file used when Driver is sqlite; ":memory:" keeps it in memory.
	SQLitePath string
	// LogLevel controls SQL logging: silent, error, warn or info.
	LogLevel string
	Pool     pool.Config
}

// LoadConfigFromEnv loads database configuration from DB_* environment variables.
func LoadConfigFromEnv() Config {
	defaults := pool.DefaultConfig()
	return Config{
		Driver:     appConfig.GetEnv("DB_DRIVER", DriverPostgres),
		Host:       appConfig.GetEnv("DB_HOST", "localhost"),
		User:       appConfig.GetEnv("DB_USER", "postgres"),
		Password:   appConfig.GetEnv("DB_PASSWORD", "postgres"),
		DBName:     appConfig.GetEnv("DB_NAME", "octofit_db"),
		Port:       appConfig.GetEnv("DB_PORT", "5432"),
		SSLMode:    appConfig.GetEnv("DB_SSLMODE", "disable"),
		TimeZone:   appConfig.GetEnv("DB_TIMEZONE", "UTC"),
		SQLitePath: appConfig.GetEnv("SQLITE_PATH", "octofit.db"),
		LogLevel:   appConfig.GetEnv("DB_LOG_LEVEL", "warn"),
		Pool: pool.Config{
			MaxOpenConns:    appConfig.GetEnvInt("DB_MAX_OPEN_CONNS", defaults.MaxOpenConns),
			MaxIdleConns:    appConfig.GetEnvInt("DB_MAX_IDLE_CONNS", defaults.MaxIdleConns),
			ConnMaxLifetime: appConfig.GetEnvDuration("DB_CONN_MAX_LIFETIME", defaults.ConnMaxLifetime),
			ConnMaxIdleTime: appConfig.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", defaults.ConnMaxIdleTime),
		},
	}
}

// Validate checks the driver and the settings it needs.
func (c Config) Validate() error {
	switch c.Driver {
	case DriverPostgres:
		if c.Host == "" || c.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %q (must be: %s, %s)", c.Driver, DriverPostgres, DriverSQLite)
	}
	return c.Pool.Validate()
}

// InMemory reports whether the store lives only as long as its connection.
func (c Config) InMemory() bool {
	return c.Driver == DriverSQLite && strings.Contains(c.SQLitePath, ":memory:")
}

// BuildDSN constructs the PostgreSQL DSN from configuration.
func BuildDSN(cfg Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.DBName, cfg.Port, cfg.SSLMode, cfg.TimeZone)
}

// SanitizeError masks the password in a connection error.
func SanitizeError(err error, cfg Config) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if cfg.Password != "" {
		msg = strings.ReplaceAll(msg, cfg.Password, "***")
	}
	return fmt.Errorf("failed to connect to database: %s", msg)
}

// LoadRetryPolicyFromEnv loads the connection retry policy from DB_RETRY_* variables.
func LoadRetryPolicyFromEnv() retry.Policy {
	p := retry.Connection()
	p.MaxAttempts = appConfig.GetEnvInt("DB_RETRY_MAX_ATTEMPTS", p.MaxAttempts)
	p.InitialDelay = appConfig.GetEnvDuration("DB_RETRY_INITIAL_DELAY", p.InitialDelay)
	p.MaxDelay = appConfig.GetEnvDuration("DB_RETRY_MAX_DELAY", p.MaxDelay)
	p.Multiplier = appConfig.GetEnvFloat("DB_RETRY_MULTIPLIER", p.Multiplier)
	return p
}
