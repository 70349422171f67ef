// Package config loads the service configuration from environment variables.
package config

import "fmt"

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// MigrationsPath is the directory holding the postgres SQL migrations.
	MigrationsPath string
	// SeedOnStart repopulates the store with demo data before serving.
	SeedOnStart bool
	// MetricsPath is the route serving Prometheus metrics; empty disables it.
	MetricsPath string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:         LoadServerConfigFromEnv(),
		Logger:         LoadLoggerConfigFromEnv(),
		GinMode:        GetEnv("GIN_MODE", "release"),
		MigrationsPath: GetEnv("MIGRATIONS_PATH", "migrations"),
		SeedOnStart:    GetEnvBool("SEED_ON_START", false),
		MetricsPath:    GetEnv("METRICS_PATH", "/metrics"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if c.MetricsPath != "" && c.MetricsPath[0] != '/' {
		return fmt.Errorf("invalid METRICS_PATH: %s (must start with /)", c.MetricsPath)
	}

	return nil
}
