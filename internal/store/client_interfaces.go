// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SecureStorageRepository is a key/value table for sealed blobs. Values are
// opaque to the repository.
type SecureStorageRepository interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Put inserts or replaces the value under key.
	Put(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SessionStorage persists the client session sealed at rest.
type SessionStorage interface {
	// Load returns the stored session, nil when nothing is stored, or an
	// error wrapping [ErrCorruptSession] when the blob cannot be opened.
	Load(ctx context.Context) (*models.Session, error)
	// Save stores session; a nil session deletes the stored copy.
	Save(ctx context.Context, session *models.Session) error
	// Clear deletes the stored copy.
	Clear(ctx context.Context) error
}

// RecipeCacheRepository keeps the last successfully fetched recipe list.
type RecipeCacheRepository interface {
	// ReplaceAll atomically replaces the cached list, preserving order.
	ReplaceAll(ctx context.Context, recipes []models.Recipe) error
	// GetAll returns the cached list in its original order and the time it
	// was stored. An empty cache yields an empty list and a zero time.
	GetAll(ctx context.Context) ([]models.Recipe, time.Time, error)
}
