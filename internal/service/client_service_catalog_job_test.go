// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyRecipeService считает вызовы List.
type spyRecipeService struct {
	RecipeService
	calls atomic.Int64
	err   error
}

func (s *spyRecipeService) List(_ context.Context) ([]models.Recipe, error) {
	s.calls.Add(1)
	return nil, s.err
}

// ── NewCatalogRefreshJob ─────────────────────────────────────────────────────

func TestNewCatalogRefreshJob_DefaultInterval(t *testing.T) {
	job := NewCatalogRefreshJob(&spyRecipeService{}, 0, logger.Nop()).(*catalogRefreshJob)
	require.NotNil(t, job)
	assert.Equal(t, 5*time.Minute, job.interval)
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestCatalogRefreshJob_Start_CallsList(t *testing.T) {
	spy := &spyRecipeService{}
	job := NewCatalogRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	// Интервал 10ms, за 55ms должно быть ~5 тиков
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "List должен быть вызван несколько раз, вызвано: %d", got)
}

func TestCatalogRefreshJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRecipeService{}
	job := NewCatalogRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(25 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load(), "после Stop вызовов быть не должно")
}

func TestCatalogRefreshJob_ErrorsDoNotStopLoop(t *testing.T) {
	spy := &spyRecipeService{err: errors.New("offline")}
	job := NewCatalogRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(45 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2))
}

func TestCatalogRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewCatalogRefreshJob(&spyRecipeService{}, time.Second, logger.Nop())

	assert.NotPanics(t, job.Stop)
}

func TestCatalogRefreshJob_RestartReplacesLoop(t *testing.T) {
	spy := &spyRecipeService{}
	job := NewCatalogRefreshJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Start(context.Background())
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	after := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, spy.calls.Load())
}
