// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION":  "1.2.3",
		"APP_LOG_FILE": "/var/log/recipes.log",

		"ADAPTER_ADDRESS":         "https://api.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "30s",
		"ADAPTER_RATE_LIMIT":      "2.5",
		"ADAPTER_RATE_BURST":      "4",

		// Storage has nested prefixes: STORAGE_ + DB_ / SESSION_
		"STORAGE_DB_DATABASE_URI": "/tmp/recipes.db",
		"STORAGE_SESSION_KEY":     "secret",

		"WORKERS_RECONCILE_CONCURRENCY": "3",

		"EXPO_PUBLIC_API_BASE": "https://public.example.com",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/var/log/recipes.log", cfg.App.LogFile)

	assert.Equal(t, "https://api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.InDelta(t, 2.5, cfg.Adapter.RateLimit, 0.0001)
	assert.Equal(t, 4, cfg.Adapter.RateBurst)

	assert.Equal(t, "/tmp/recipes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "secret", cfg.Storage.Session.Key)
	assert.Equal(t, 3, cfg.Workers.ReconcileConcurrency)
	assert.Equal(t, "https://public.example.com", cfg.PublicAPIBase)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"STORAGE_SESSION_KEY": "secret",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Storage.Session.Key)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	// Act
	err := parseEnv(&StructuredConfig{})

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidNumber(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_RECONCILE_CONCURRENCY": "many",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr bool
		wantKey string
	}{
		{
			name:    "missing file is ignored",
			content: nil,
		},
		{
			name:    "values are exported",
			content: ptr("STORAGE_SESSION_KEY=from-dotenv\n"),
			wantKey: "from-dotenv",
		},
		{
			name:    "malformed file fails",
			content: ptr("STORAGE_SESSION_KEY='unterminated\n"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			path := filepath.Join(t.TempDir(), ".env")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}
			withDotEnvFile(t, path)
			t.Cleanup(func() { _ = os.Unsetenv("STORAGE_SESSION_KEY") })

			err := loadDotEnv()
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, os.Getenv("STORAGE_SESSION_KEY"))
		})
	}
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_SESSION_KEY": "from-env"})
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_SESSION_KEY=from-dotenv\n"), 0o600))
	withDotEnvFile(t, path)

	require.NoError(t, loadDotEnv())
	assert.Equal(t, "from-env", os.Getenv("STORAGE_SESSION_KEY"))
}

func ptr[T any](v T) *T { return &v }

func withDotEnvFile(t *testing.T, path string) {
	t.Helper()
	prev := dotEnvFile
	dotEnvFile = path
	t.Cleanup(func() { dotEnvFile = prev })
}

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
		"EXPO_PUBLIC_API_BASE",

		"APP_VERSION",
		"APP_LOG_FILE",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",
		"ADAPTER_RATE_LIMIT",
		"ADAPTER_RATE_BURST",

		"STORAGE_DB_DATABASE_URI",
		"STORAGE_SESSION_KEY",

		"WORKERS_RECONCILE_CONCURRENCY",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
