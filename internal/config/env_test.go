// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/etc/sdk/base.yaml,/etc/sdk/prod.yaml",

		"APP_NAMESPACE": "acme.sdk",
		"APP_ROOT_KEY":  "acme_sdk",
		"APP_VERSION":   "1.2.3",
		"APP_LOG_LEVEL": "info",

		"SERVER_ADDRESS":         "localhost:8080",
		"SERVER_REQUEST_TIMEOUT": "30s",

		"PROBE_SERVICE_KEY": "acme.sdk.orders.jwt_client",
		"PROBE_PATH":        "/health",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"/etc/sdk/base.yaml", "/etc/sdk/prod.yaml"}, cfg.ConfigFilePaths)

	assert.Equal(t, "acme.sdk", cfg.App.Namespace)
	assert.Equal(t, "acme_sdk", cfg.App.RootKey)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "info", cfg.App.LogLevel)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "acme.sdk.orders.jwt_client", cfg.Probe.ServiceKey)
	assert.Equal(t, "/health", cfg.Probe.Path)

	assert.Nil(t, cfg.SDK)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION": "0.1.0",
		"CONFIG":      "/etc/sdk/base.yaml",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "0.1.0", cfg.App.Version)
	assert.Equal(t, []string{"/etc/sdk/base.yaml"}, cfg.ConfigFilePaths)
	assert.Empty(t, cfg.App.Namespace)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Zero(t, cfg.Server.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	setEnvVars(t, map[string]string{})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"seconds", "45s", 45 * time.Second},
		{"minutes", "2m", 2 * time.Minute},
		{"mixed", "1m30s", 90 * time.Second},
		{"milliseconds", "250ms", 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_NAMESPACE",
		"APP_ROOT_KEY",
		"APP_VERSION",
		"APP_LOG_LEVEL",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",

		"PROBE_SERVICE_KEY",
		"PROBE_PATH",
	}
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			t.Setenv(k, old)
			require.NoError(t, os.Unsetenv(k))
		}
	}
}
