// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
)

type catalogRefreshJob struct {
	recipes  RecipeService
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCatalogRefreshJob creates a job that calls recipes.List on a ticker,
// keeping the offline recipe cache fresh. The job is idle until Start is
// called. A zero or negative interval defaults to 5 minutes.
func NewCatalogRefreshJob(recipes RecipeService, interval time.Duration, logger *logger.Logger) BackgroundJob {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &catalogRefreshJob{
		recipes:  recipes,
		interval: interval,
		logger:   logger,
	}
}

// Start implements BackgroundJob. It stops any previously running job, then
// launches a goroutine that refreshes the catalog every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *catalogRefreshJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.recipes.List(jobCtx); err != nil {
					j.logger.Warn().Err(err).Str("func", "catalogRefreshJob.Start").Msg("catalog refresh failed")
				}
			}
		}
	}()
}

// Stop implements BackgroundJob. Safe to call when the job is not running.
func (j *catalogRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
