// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	secureStorageTable = "secure_storage"
	recipeCacheTable   = "recipe_cache"
)

// psql is the statement builder for SQLite ("?" placeholders).
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSecureValueQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(secureStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildPutSecureValueQuery(key, value string, updatedAt int64) (string, []any, error) {
	return psql.
		Insert(secureStorageTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSecureValueQuery(key string) (string, []any, error) {
	return psql.
		Delete(secureStorageTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildClearRecipeCacheQuery() (string, []any, error) {
	return psql.Delete(recipeCacheTable).ToSql()
}

// cachedRecipeRow is one row of the recipe cache.
type cachedRecipeRow struct {
	ID       string
	Position int
	Payload  string
}

func buildInsertRecipeCacheQuery(rows []cachedRecipeRow, fetchedAt int64) (string, []any, error) {
	insert := psql.
		Insert(recipeCacheTable).
		Columns("id", "position", "payload", "fetched_at")
	for _, r := range rows {
		insert = insert.Values(r.ID, r.Position, r.Payload, fetchedAt)
	}
	// duplicated ids from the backend: keep the first occurrence
	return insert.Suffix("ON CONFLICT(id) DO NOTHING").ToSql()
}

func buildSelectRecipeCacheQuery() (string, []any, error) {
	return psql.
		Select("payload", "fetched_at").
		From(recipeCacheTable).
		OrderBy("position ASC").
		ToSql()
}
