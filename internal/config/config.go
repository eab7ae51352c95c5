// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied after all sources are merged.
const (
	DefaultNamespace = "nab.web_api_sdk"
	DefaultRootKey   = "nab_web_api_base_sdk"
	DefaultLogLevel  = "debug"
	DefaultProbePath = "/"
)

// StructuredConfig is the top-level configuration container for sdkctl. It
// aggregates the ambient settings read from environment variables and flags
// with the bundle configuration tree read from the config files.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the service key namespace, the config file root key, the
	// application version and the log level.
	App App `envPrefix:"APP_"`

	// Server holds the inspection HTTP server settings. The server is only
	// started when an address is configured.
	Server Server `envPrefix:"SERVER_"`

	// Probe names a client to call once after loading instead of serving.
	Probe Probe `envPrefix:"PROBE_"`

	// SDK is the merged bundle configuration tree ("transport" and
	// "endpoints"), taken from under App.RootKey in every config file.
	SDK map[string]any `env:"-"`

	// ConfigFilePaths lists the YAML or JSON files to load, merged in order.
	// Populated via the CONFIG environment variable (comma-separated) or the
	// repeatable -c / -config flag.
	ConfigFilePaths []string `env:"CONFIG" envSeparator:","`
}

// App holds application-level settings.
type App struct {
	// Namespace prefixes every service key.
	// Env: APP_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// RootKey is the top-level key the bundle tree is nested under in config
	// files. Files without it are read as the bundle tree itself.
	// Env: APP_ROOT_KEY
	RootKey string `env:"ROOT_KEY"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inspection API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Probe selects a one-shot GET request through a registered client.
type Probe struct {
	// ServiceKey of the client to call.
	// Env: PROBE_SERVICE_KEY
	ServiceKey string `env:"SERVICE_KEY"`

	// Path requested relative to the client's base URL.
	// Env: PROBE_PATH
	Path string `env:"PATH"`
}

// Enabled reports whether the inspection server should be started.
func (s Server) Enabled() bool {
	return s.HTTPAddress != ""
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources (later sources override earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. Config files (paths resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withFiles().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Namespace == "" {
		cfg.App.Namespace = DefaultNamespace
	}
	if cfg.App.RootKey == "" {
		cfg.App.RootKey = DefaultRootKey
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Probe.ServiceKey != "" && cfg.Probe.Path == "" {
		cfg.Probe.Path = DefaultProbePath
	}
	if cfg.SDK == nil {
		cfg.SDK = map[string]any{}
	}
}
