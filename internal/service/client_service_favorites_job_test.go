// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// spyFavorites считает вызовы Load и запоминает последнюю сессию.
type spyFavorites struct {
	FavoritesService
	calls atomic.Int64
	last  atomic.Pointer[models.Session]
}

func (s *spyFavorites) Load(_ context.Context, session *models.Session) (models.FavoriteSet, error) {
	s.calls.Add(1)
	s.last.Store(session)
	if !session.Valid() {
		return models.NewFavoriteSet(), nil
	}
	return models.NewFavoriteSet("r1"), nil
}

func waitResult(t *testing.T, job *FavoritesReconcileJob) ReconcileResult {
	t.Helper()
	select {
	case r := <-job.Results():
		return r
	case <-time.After(time.Second):
		t.Fatal("no reconciliation result")
		return ReconcileResult{}
	}
}

func TestFavoritesReconcileJob_FollowsIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockStorage := mock.NewMockSessionStorage(ctrl)
	mockAdapter.EXPECT().SetToken(gomock.Any()).AnyTimes()
	mockStorage.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockStorage.EXPECT().Clear(gomock.Any()).Return(nil).AnyTimes()

	sessions := NewSessionService(mockAdapter, mockStorage, logger.Nop())
	spy := &spyFavorites{}
	job := NewFavoritesReconcileJob(sessions, spy, logger.Nop())

	job.Start(context.Background())
	defer job.Stop()

	// initial reconciliation for the anonymous session
	r := waitResult(t, job)
	assert.Nil(t, r.Session)
	assert.Equal(t, 0, r.Favorites.Len())

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.AuthResult{User: models.User{ID: "u1", Role: models.RoleUser}, Token: "t1"}, nil)
	_, err := sessions.Login(context.Background(), "a@b.c", "p")
	require.NoError(t, err)

	r = waitResult(t, job)
	assert.Equal(t, "u1", r.Session.UserID())
	assert.True(t, r.Favorites.Has("r1"))

	// same identity: role change does not trigger a reconciliation
	require.NoError(t, sessions.SetRole(context.Background(), models.RoleAdmin))
	select {
	case <-job.Results():
		t.Fatal("unexpected reconciliation for unchanged identity")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, sessions.Logout(context.Background()))
	r = waitResult(t, job)
	assert.Nil(t, r.Session)
	assert.Equal(t, int64(3), spy.calls.Load())
}

func TestFavoritesReconcileJob_StopIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)
	updates := make(chan *models.Session)
	unsubscribed := false

	sessions.EXPECT().Subscribe().Return((<-chan *models.Session)(updates), func() { unsubscribed = true })
	sessions.EXPECT().Session().Return(nil)

	job := NewFavoritesReconcileJob(sessions, &spyFavorites{}, logger.Nop())
	job.Stop()

	job.Start(context.Background())
	_ = waitResult(t, job)
	job.Stop()
	job.Stop()

	assert.True(t, unsubscribed)
}

func TestFavoritesReconcileJob_ExitsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionService(ctrl)
	updates := make(chan *models.Session)

	sessions.EXPECT().Subscribe().Return((<-chan *models.Session)(updates), func() {})
	sessions.EXPECT().Session().Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	job := NewFavoritesReconcileJob(sessions, &spyFavorites{}, logger.Nop())
	job.Start(ctx)
	_ = waitResult(t, job)

	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked after context cancel")
	}
}
