// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecipeCacheRepo(t *testing.T) (*recipeCacheRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &recipeCacheRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func mustPayload(t *testing.T, r models.Recipe) string {
	t.Helper()
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return string(b)
}

// ── ReplaceAll ───────────────────────────────────────────────────────────────

func TestRecipeCacheReplaceAll_Success(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	recipes := []models.Recipe{
		{ID: "1", Name: "Tarta"},
		{ID: "2", Name: "Pasta"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM recipe_cache").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("INSERT INTO recipe_cache \\(id,position,payload,fetched_at\\) VALUES \\(\\?,\\?,\\?,\\?\\),\\(\\?,\\?,\\?,\\?\\) ON CONFLICT\\(id\\) DO NOTHING").
		WithArgs("1", 0, mustPayload(t, recipes[0]), sqlmock.AnyArg(), "2", 1, mustPayload(t, recipes[1]), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), recipes)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCacheReplaceAll_EmptyListOnlyClears(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM recipe_cache").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), nil)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCacheReplaceAll_ChunksLargeLists(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	recipes := make([]models.Recipe, insertChunkSize+1)
	for i := range recipes {
		recipes[i] = models.Recipe{ID: string(rune('a' + i%26)), Name: "r"}
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM recipe_cache").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO recipe_cache").WillReturnResult(sqlmock.NewResult(0, insertChunkSize))
	mock.ExpectExec("INSERT INTO recipe_cache").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), recipes)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCacheReplaceAll_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM recipe_cache").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO recipe_cache").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), []models.Recipe{{ID: "1"}})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecipeCacheReplaceAll_BeginError(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("locked"))

	err := repo.ReplaceAll(context.Background(), []models.Recipe{{ID: "1"}})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// ── GetAll ───────────────────────────────────────────────────────────────────

func TestRecipeCacheGetAll_PreservesOrder(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	tarta := models.Recipe{ID: "1", Name: "Tarta", Restrictions: []string{"vegetariano"}}
	pasta := models.Recipe{ID: "2", Name: "Pasta"}
	fetched := time.UnixMilli(1_760_000_000_000)

	mock.ExpectQuery("SELECT payload, fetched_at FROM recipe_cache ORDER BY position ASC").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}).
			AddRow(mustPayload(t, tarta), fetched.UnixMilli()).
			AddRow(mustPayload(t, pasta), fetched.UnixMilli()))

	got, fetchedAt, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.Recipe{tarta, pasta}, got)
	assert.True(t, fetched.Equal(fetchedAt))
}

func TestRecipeCacheGetAll_Empty(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload, fetched_at FROM recipe_cache").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}))

	got, fetchedAt, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.True(t, fetchedAt.IsZero())
}

func TestRecipeCacheGetAll_SkipsUnreadablePayload(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload, fetched_at FROM recipe_cache").
		WillReturnRows(sqlmock.NewRows([]string{"payload", "fetched_at"}).
			AddRow("{not json", int64(1)).
			AddRow(mustPayload(t, models.Recipe{ID: "2"}), int64(1)))

	got, _, err := repo.GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestRecipeCacheGetAll_QueryError(t *testing.T) {
	repo, mock, db := newTestRecipeCacheRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT payload").WillReturnError(errors.New("no such table"))

	_, _, err := repo.GetAll(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
