// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied to fields left empty by every source.
const (
	DefaultHTTPAddress          = "https://recetario-app-backend.onrender.com"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultRateLimit            = 5.0
	DefaultRateBurst            = 5
	DefaultDSN                  = "recipe-keeper.db"
	DefaultReconcileConcurrency = 8
	DefaultCatalogRefresh       = 5 * time.Minute
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// Version is the application version.
	Version string
	// LogFile is the path of the JSON log file.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// RateLimit is the allowed number of requests per second.
	RateLimit float64
	// RateBurst is the limiter bucket size.
	RateBurst int
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	// DSN is the SQLite connection string.
	DSN string
}

// ClientStorage groups client storage settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// SessionKey is the secret used to seal the persisted session.
	SessionKey string
}

// ClientWorkers contains background job settings.
type ClientWorkers struct {
	// ReconcileConcurrency bounds concurrent favorites lookups.
	ReconcileConcurrency int
	// CatalogRefreshInterval is the recipe cache refresh period.
	CatalogRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client configuration from the
// process environment and os.Args.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(os.Args[1:])
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RateLimit:      cfg.Adapter.RateLimit,
			RateBurst:      cfg.Adapter.RateBurst,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			SessionKey: cfg.Storage.Session.Key,
		},
		Workers: ClientWorkers{
			ReconcileConcurrency:   cfg.Workers.ReconcileConcurrency,
			CatalogRefreshInterval: cfg.Workers.CatalogRefreshInterval,
		},
	}

	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = cfg.PublicAPIBase
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RateLimit == 0 {
		cfg.Adapter.RateLimit = DefaultRateLimit
	}
	if cfg.Adapter.RateBurst == 0 {
		cfg.Adapter.RateBurst = DefaultRateBurst
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Workers.ReconcileConcurrency == 0 {
		cfg.Workers.ReconcileConcurrency = DefaultReconcileConcurrency
	}
	if cfg.Workers.CatalogRefreshInterval == 0 {
		cfg.Workers.CatalogRefreshInterval = DefaultCatalogRefresh
	}
	if cfg.App.LogFile == "" {
		// log file near the executable
		execPath, _ := os.Executable()
		cfg.App.LogFile = filepath.Join(filepath.Dir(execPath), "logs")
	}
}
