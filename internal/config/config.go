// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container populated by every
// source before defaults are applied.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Adapter holds the backend address and outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// PublicAPIBase is the backend base URL variable shared with the mobile
	// build of the application. It is used when ADAPTER_ADDRESS is empty.
	// Env: EXPO_PUBLIC_API_BASE
	PublicAPIBase string `env:"EXPO_PUBLIC_API_BASE"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string shown in the about window.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is the path of the JSON log file. The TUI owns the terminal,
	// so logs never go to stdout unless the file cannot be opened.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds configuration of the backend HTTP adapter.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "https://api.example.com").
	// A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RateLimit is the number of requests per second allowed towards the
	// backend.
	// Env: ADAPTER_RATE_LIMIT
	RateLimit float64 `env:"RATE_LIMIT"`

	// RateBurst is the limiter bucket size.
	// Env: ADAPTER_RATE_BURST
	RateBurst int `env:"RATE_BURST"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// Session holds the secure session storage settings.
	Session Session `envPrefix:"SESSION_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "recipe-keeper.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Session holds settings of the sealed session blob.
type Session struct {
	// Key is the secret the sealing key is derived from. Must be kept
	// confidential.
	// Env: STORAGE_SESSION_KEY
	Key string `env:"KEY"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// ReconcileConcurrency bounds the number of concurrent recipe lookups
	// during favorites reconciliation.
	// Env: WORKERS_RECONCILE_CONCURRENCY
	ReconcileConcurrency int `env:"RECONCILE_CONCURRENCY"`

	// CatalogRefreshInterval is the period of the background recipe cache
	// refresh.
	// Env: WORKERS_CATALOG_REFRESH_INTERVAL
	CatalogRefreshInterval time.Duration `env:"CATALOG_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. .env file and environment variables
//  2. Command-line flags (args)
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
