package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "console"}
)

// LoggerConfig describes the application zap logger.
type LoggerConfig struct {
	Level  string
	Format string
	// Output is stdout, stderr or a file path.
	Output string
}

// LoadLoggerConfigFromEnv reads LOG_LEVEL, LOG_FORMAT and LOG_OUTPUT.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  strings.ToLower(GetEnv("LOG_LEVEL", "info")),
		Format: strings.ToLower(GetEnv("LOG_FORMAT", "json")),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	if !slices.Contains(logLevels, c.Level) {
		return fmt.Errorf("invalid log level: %s (must be: %s)", c.Level, strings.Join(logLevels, ", "))
	}
	if !slices.Contains(logFormats, c.Format) {
		return fmt.Errorf("invalid log format: %s (must be: %s)", c.Format, strings.Join(logFormats, ", "))
	}
	if strings.TrimSpace(c.Output) != c.Output {
		return fmt.Errorf("invalid log output: %q has surrounding whitespace", c.Output)
	}
	return nil
}

// IsProduction reports whether the logger should use zap's production defaults.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == "json" && c.Level != "debug"
}
