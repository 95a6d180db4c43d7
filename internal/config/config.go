// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// DefaultEndpointURL is the hosted backend project the service talks to.
// It can be overridden (staging, tests) but never needs to be set in
// production.
const DefaultEndpointURL = "https://homecarejobbd.supabase.co"

// Defaults applied before any other configuration source.
const (
	DefaultBackendRequestTimeout = 15 * time.Second
	DefaultStorageDSN            = "homecare-session.db"
	DefaultHTTPAddress           = "localhost:8080"
	DefaultServerRequestTimeout  = 30 * time.Second
	DefaultRefreshInterval       = 30 * time.Second
)

// StructuredConfig is the top-level configuration container for the
// homecare-jobs service. It aggregates all sub-configurations and is
// populated by merging defaults, environment variables, command-line flags
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Backend holds the connection settings of the hosted backend service
	// used for authentication and session management.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the session persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds the settings needed to build the shared backend client.
type Backend struct {
	// URL is the base endpoint of the hosted backend project.
	// Env: BACKEND_URL
	URL string `env:"URL"`

	// AccessKey is the public (anon) project key sent with every request.
	// It has no default: it must come from the environment, a flag or the
	// JSON file, and is never committed as a literal.
	// Env: BACKEND_ACCESS_KEY
	AccessKey string `env:"ACCESS_KEY"`

	// RequestTimeout bounds every outbound request to the backend.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the session storage backend.
type Storage struct {
	// DB holds the SQLite file settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps
// session state between restarts.
type DB struct {
	// DSN is the SQLite file path or DSN (e.g. "homecare-session.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// OperatorToken guards the session API. When set, /api/auth requests
	// must carry "Authorization: Bearer <OperatorToken>"; when empty, only
	// loopback clients may use the session API.
	// Env: SERVER_OPERATOR_TOKEN
	OperatorToken string `env:"OPERATOR_TOKEN"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the session refresh job checks whether
	// the stored session is about to expire.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation. Validation failures
// are reported as *[ConfigurationError].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Backend: Backend{
			URL:            DefaultEndpointURL,
			RequestTimeout: DefaultBackendRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: DefaultStorageDSN},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultServerRequestTimeout,
		},
		Workers: Workers{
			RefreshInterval: DefaultRefreshInterval,
		},
	}
}
