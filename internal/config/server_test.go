package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadServerConfigFromEnv_DefaultValues(t *testing.T) {
	clearEnv(t,
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT",
		"SERVER_WRITE_TIMEOUT", "SERVER_IDLE_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	)

	cfg := LoadServerConfigFromEnv()

	assert.Equal(t, "", cfg.Host)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, 10*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.IdleTimeout)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadServerConfigFromEnv_CustomValues(t *testing.T) {
	t.Setenv("SERVER_HOST", "0.0.0.0")
	t.Setenv("SERVER_PORT", "8000")
	t.Setenv("SERVER_READ_TIMEOUT", "30s")
	t.Setenv("SERVER_WRITE_TIMEOUT", "45s")
	t.Setenv("SERVER_IDLE_TIMEOUT", "5m")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "1m")

	cfg := LoadServerConfigFromEnv()

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 45*time.Second, cfg.WriteTimeout)
	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, time.Minute, cfg.ShutdownTimeout)
}

func TestServerConfig_GetAddress(t *testing.T) {
	tests := []struct {
		name     string
		config   ServerConfig
		expected string
	}{
		{name: "port only", config: ServerConfig{Port: ":8000"}, expected: ":8000"},
		{name: "host and colon port", config: ServerConfig{Host: "127.0.0.1", Port: ":8000"}, expected: "127.0.0.1:8000"},
		{name: "host and bare port", config: ServerConfig{Host: "localhost", Port: "8000"}, expected: "localhost:8000"},
		{name: "ipv6 host", config: ServerConfig{Host: "::1", Port: "8000"}, expected: "[::1]:8000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetAddress())
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := validConfig().Server
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*ServerConfig)
		field  string
	}{
		{name: "read timeout", mutate: func(c *ServerConfig) { c.ReadTimeout = 0 }, field: "ReadTimeout"},
		{name: "write timeout", mutate: func(c *ServerConfig) { c.WriteTimeout = -time.Second }, field: "WriteTimeout"},
		{name: "idle timeout", mutate: func(c *ServerConfig) { c.IdleTimeout = 0 }, field: "IdleTimeout"},
		{name: "shutdown timeout", mutate: func(c *ServerConfig) { c.ShutdownTimeout = 0 }, field: "ShutdownTimeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()

			assert.ErrorContains(t, err, tt.field)
		})
	}
}
