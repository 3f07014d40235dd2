// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

type secureStorageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewSecureStorageRepository(db *DB, logger *logger.Logger) SecureStorageRepository {
	return &secureStorageRepository{
		db:     db,
		logger: logger,
	}
}

func (r *secureStorageRepository) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetSecureValueQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "secureStorageRepository.Get").Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "secureStorageRepository.Get").
			Str("key", key).
			Msg("error reading secure value")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *secureStorageRepository) Put(ctx context.Context, key, value string) error {
	query, args, err := buildPutSecureValueQuery(key, value, time.Now().UnixMilli())
	if err != nil {
		r.logger.Err(err).Str("func", "secureStorageRepository.Put").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "secureStorageRepository.Put").
			Str("key", key).
			Msg("error writing secure value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *secureStorageRepository) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteSecureValueQuery(key)
	if err != nil {
		r.logger.Err(err).Str("func", "secureStorageRepository.Delete").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "secureStorageRepository.Delete").
			Str("key", key).
			Msg("error deleting secure value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
