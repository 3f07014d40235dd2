// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// ReconcileResult is the outcome of one favorites reconciliation.
type ReconcileResult struct {
	// Session is the session the set was reconciled for; nil if anonymous.
	Session   *models.Session
	Favorites models.FavoriteSet
	Err       error
}

// FavoritesReconcileJob follows the session and reconciles the favorite set
// whenever the (user id, token) identity changes.
type FavoritesReconcileJob struct {
	sessions  SessionService
	favorites FavoritesService
	logger    *logger.Logger

	results chan ReconcileResult

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewFavoritesReconcileJob creates an idle job. Nothing happens until Start
// is called.
func NewFavoritesReconcileJob(sessions SessionService, favorites FavoritesService, logger *logger.Logger) *FavoritesReconcileJob {
	return &FavoritesReconcileJob{
		sessions:  sessions,
		favorites: favorites,
		logger:    logger,
		results:   make(chan ReconcileResult, 1),
	}
}

// Results delivers reconciliation outcomes. Only the latest undelivered
// result is kept.
func (j *FavoritesReconcileJob) Results() <-chan ReconcileResult {
	return j.results
}

// Start stops any previous run, then reconciles for the current session and
// again on every identity change until ctx is cancelled or Stop is called.
func (j *FavoritesReconcileJob) Start(ctx context.Context) {
	j.Stop()

	updates, unsubscribe := j.sessions.Subscribe()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		defer unsubscribe()

		var (
			lastIdentity string
			started      bool
		)
		handle := func(session *models.Session) {
			identity := session.Identity()
			if started && identity == lastIdentity {
				return
			}
			started = true
			lastIdentity = identity

			set, err := j.favorites.Load(jobCtx, session)
			if err != nil {
				j.logger.Err(err).Str("func", "FavoritesReconcileJob.Start").Msg("favorites reconciliation failed")
			}
			j.emit(ReconcileResult{Session: session, Favorites: set, Err: err})
		}

		handle(j.sessions.Session())
		for {
			select {
			case <-jobCtx.Done():
				return
			case session, ok := <-updates:
				if !ok {
					return
				}
				handle(session)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the job is not running.
func (j *FavoritesReconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *FavoritesReconcileJob) emit(result ReconcileResult) {
	select {
	case <-j.results:
	default:
	}
	select {
	case j.results <- result:
	default:
	}
}
