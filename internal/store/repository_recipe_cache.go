// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// insertChunkSize keeps each INSERT well below SQLite's bound-variable limit.
const insertChunkSize = 200

type recipeCacheRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRecipeCacheRepository(db *DB, logger *logger.Logger) RecipeCacheRepository {
	return &recipeCacheRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recipeCacheRepository) ReplaceAll(ctx context.Context, recipes []models.Recipe) error {
	rows := make([]cachedRecipeRow, 0, len(recipes))
	for i, recipe := range recipes {
		payload, err := json.Marshal(recipe)
		if err != nil {
			return fmt.Errorf("encode recipe %s: %w", recipe.ID, err)
		}
		rows = append(rows, cachedRecipeRow{ID: recipe.ID, Position: i, Payload: string(payload)})
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.logger.Err(err).Str("func", "recipeCacheRepository.ReplaceAll").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildClearRecipeCacheQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "recipeCacheRepository.ReplaceAll").Msg("error clearing recipe cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	fetchedAt := time.Now().UnixMilli()
	for start := 0; start < len(rows); start += insertChunkSize {
		end := min(start+insertChunkSize, len(rows))

		query, args, err = buildInsertRecipeCacheQuery(rows[start:end], fetchedAt)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "recipeCacheRepository.ReplaceAll").
				Int("rows", end-start).
				Msg("error inserting cached recipes")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		r.logger.Err(err).Str("func", "recipeCacheRepository.ReplaceAll").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	r.logger.Debug().
		Str("func", "recipeCacheRepository.ReplaceAll").
		Int("recipes", len(rows)).
		Msg("recipe cache replaced")
	return nil
}

func (r *recipeCacheRepository) GetAll(ctx context.Context) ([]models.Recipe, time.Time, error) {
	query, args, err := buildSelectRecipeCacheQuery()
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "recipeCacheRepository.GetAll").Msg("error querying recipe cache")
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	var fetchedAt int64
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload, &fetchedAt); err != nil {
			return nil, time.Time{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		var recipe models.Recipe
		if err = json.Unmarshal([]byte(payload), &recipe); err != nil {
			r.logger.Warn().Err(err).Str("func", "recipeCacheRepository.GetAll").Msg("skipping unreadable cached recipe")
			continue
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, time.Time{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if fetchedAt == 0 {
		return recipes, time.Time{}, nil
	}
	return recipes, time.UnixMilli(fetchedAt), nil
}
