package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("OCTOFIT_TEST_KEY", "value")
	t.Setenv("OCTOFIT_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnv("OCTOFIT_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("OCTOFIT_TEST_EMPTY", "default"))
	assert.Equal(t, "default", GetEnv("OCTOFIT_TEST_UNSET_KEY", "default"))
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback int
		expected int
	}{
		{name: "valid integer", value: "42", fallback: 0, expected: 42},
		{name: "negative integer", value: "-10", fallback: 0, expected: -10},
		{name: "invalid integer", value: "not_a_number", fallback: 10, expected: 10},
		{name: "unset", value: "", fallback: 5, expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OCTOFIT_TEST_INT", tt.value)
			assert.Equal(t, tt.expected, GetEnvInt("OCTOFIT_TEST_INT", tt.fallback))
		})
	}
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "30s", fallback: 10 * time.Second, expected: 30 * time.Second},
		{name: "complex duration", value: "1h30m15s", fallback: time.Second, expected: 90*time.Minute + 15*time.Second},
		{name: "invalid duration", value: "invalid", fallback: 5 * time.Second, expected: 5 * time.Second},
		{name: "unset", value: "", fallback: time.Minute, expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OCTOFIT_TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, GetEnvDuration("OCTOFIT_TEST_DURATION", tt.fallback))
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		fallback bool
		expected bool
	}{
		{name: "true value", value: "true", fallback: false, expected: true},
		{name: "false value", value: "false", fallback: true, expected: false},
		{name: "1 as true", value: "1", fallback: false, expected: true},
		{name: "0 as false", value: "0", fallback: true, expected: false},
		{name: "invalid value", value: "invalid", fallback: true, expected: true},
		{name: "unset", value: "", fallback: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("OCTOFIT_TEST_BOOL", tt.value)
			assert.Equal(t, tt.expected, GetEnvBool("OCTOFIT_TEST_BOOL", tt.fallback))
		})
	}
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("OCTOFIT_TEST_FLOAT", "1.5")
	assert.InDelta(t, 1.5, GetEnvFloat("OCTOFIT_TEST_FLOAT", 2.0), 1e-9)

	t.Setenv("OCTOFIT_TEST_FLOAT", "fast")
	assert.InDelta(t, 2.0, GetEnvFloat("OCTOFIT_TEST_FLOAT", 2.0), 1e-9)
}
