package config

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// ServerConfig holds HTTP listener settings for the API.
type ServerConfig struct {
	Host string // empty listens on all interfaces
	Port string // ":8080" or "8080"

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LoadServerConfigFromEnv reads SERVER_* variables.
func LoadServerConfigFromEnv() ServerConfig {
	return ServerConfig{
		Host:            GetEnv("SERVER_HOST", ""),
		Port:            GetEnv("SERVER_PORT", ":8080"),
		ReadTimeout:     GetEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:    GetEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		IdleTimeout:     GetEnvDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
		ShutdownTimeout: GetEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 15*time.Second),
	}
}

// GetAddress returns the address passed to http.Server.
func (c ServerConfig) GetAddress() string {
	if c.Host == "" {
		return c.Port
	}
	return net.JoinHostPort(c.Host, strings.TrimPrefix(c.Port, ":"))
}

// Validate checks that every timeout is positive.
func (c ServerConfig) Validate() error {
	timeouts := []struct {
		name  string
		value time.Duration
	}{
		{"ReadTimeout", c.ReadTimeout},
		{"WriteTimeout", c.WriteTimeout},
		{"IdleTimeout", c.IdleTimeout},
		{"ShutdownTimeout", c.ShutdownTimeout},
	}
	for _, t := range timeouts {
		if t.value <= 0 {
			return fmt.Errorf("%s must be greater than 0, got %s", t.name, t.value)
		}
	}
	return nil
}
