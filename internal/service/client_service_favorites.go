// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const defaultResolveConcurrency = 8

type favoritesService struct {
	adapter     adapter.ServerAdapter
	sessions    SessionService
	concurrency int
	logger      *logger.Logger

	mu          sync.RWMutex
	current     models.FavoriteSet
	speculative map[string]bool
	pending     bool

	// seq numbers reconciliations in start order; committed is the seq of
	// the last one applied.
	seq       uint64
	committed uint64
}

// NewFavoritesService creates the favorites reconciler. concurrency bounds
// the parallel recipe lookups of one reconciliation. Results computed for a
// session other than sessions.Session() are discarded; a nil sessions skips
// that check.
func NewFavoritesService(serverAdapter adapter.ServerAdapter, sessions SessionService, concurrency int, logger *logger.Logger) FavoritesService {
	if concurrency <= 0 {
		concurrency = defaultResolveConcurrency
	}
	return &favoritesService{
		adapter:     serverAdapter,
		sessions:    sessions,
		concurrency: concurrency,
		logger:      logger,
		current:     models.NewFavoriteSet(),
		speculative: make(map[string]bool),
	}
}

func (s *favoritesService) Load(ctx context.Context, session *models.Session) (models.FavoriteSet, error) {
	recipes, err := s.reconcile(ctx, session)
	if err != nil {
		return models.NewFavoriteSet(), err
	}

	set := models.NewFavoriteSet()
	for _, r := range recipes {
		set[r.ID] = struct{}{}
	}
	return set, nil
}

func (s *favoritesService) Recipes(ctx context.Context, session *models.Session) ([]models.Recipe, error) {
	return s.reconcile(ctx, session)
}

// reconcile fetches the links, resolves them and commits the resulting set.
func (s *favoritesService) reconcile(ctx context.Context, session *models.Session) ([]models.Recipe, error) {
	seq := s.begin()

	if !session.Valid() {
		s.commit(seq, session, nil)
		return []models.Recipe{}, nil
	}

	links, err := s.adapter.ListFavorites(ctx, session.UserID())
	if err != nil {
		s.logger.Err(err).
			Str("func", "favoritesService.reconcile").
			Str("user_id", session.UserID()).
			Msg("error fetching favorite links")
		return []models.Recipe{}, &ReconciliationError{Op: "favorites", Err: err}
	}

	recipes := s.resolve(ctx, links)
	if !s.commit(seq, session, recipes) {
		s.logger.Debug().
			Str("func", "favoritesService.reconcile").
			Str("user_id", session.UserID()).
			Msg("discarding stale reconciliation")
		return recipes, nil
	}

	s.logger.Debug().
		Str("func", "favoritesService.reconcile").
		Int("links", len(links)).
		Int("resolved", len(recipes)).
		Msg("favorites reconciled")
	return recipes, nil
}

// resolve looks every link up concurrently and joins on all of them.
// Failed lookups are dropped; order follows links.
func (s *favoritesService) resolve(ctx context.Context, links []models.FavoriteLink) []models.Recipe {
	resolved := make([]*models.Recipe, len(links))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, link := range links {
		g.Go(func() error {
			recipe, err := s.adapter.GetRecipe(ctx, link.RecipeID)
			if err != nil {
				s.logger.Debug().Err(err).
					Str("func", "favoritesService.resolve").
					Str("recipe_id", link.RecipeID).
					Msg("dropping unresolved favorite")
				return nil
			}
			resolved[i] = &recipe
			return nil
		})
	}
	_ = g.Wait()

	recipes := make([]models.Recipe, 0, len(links))
	for _, r := range resolved {
		if r == nil || r.ID == "" {
			continue
		}
		recipes = append(recipes, *r)
	}
	return recipes
}

func (s *favoritesService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return s.seq
}

// commit replaces the authoritative set and clears speculation. It reports
// false without touching state when a newer reconciliation already landed
// or session is no longer the current one.
func (s *favoritesService) commit(seq uint64, session *models.Session, recipes []models.Recipe) bool {
	if s.sessions != nil && s.sessions.Session().Identity() != session.Identity() {
		return false
	}

	set := models.NewFavoriteSet()
	for _, r := range recipes {
		set[r.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq < s.committed {
		return false
	}
	s.committed = seq
	s.current = set
	s.speculative = make(map[string]bool)
	s.pending = false
	return true
}

func (s *favoritesService) Toggle(ctx context.Context, session *models.Session, recipeID string) error {
	add, err := s.Speculate(session, recipeID)
	if err != nil {
		return err
	}
	return s.Commit(ctx, session, recipeID, add)
}

func (s *favoritesService) Speculate(session *models.Session, recipeID string) (bool, error) {
	if !session.Valid() {
		return false, ErrNotAuthenticated
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	add := !s.isFavoriteLocked(recipeID)
	s.speculative[recipeID] = add
	s.pending = true
	return add, nil
}

func (s *favoritesService) Commit(ctx context.Context, session *models.Session, recipeID string, add bool) error {
	if !session.Valid() {
		return ErrNotAuthenticated
	}

	var err error
	if add {
		err = s.adapter.AddFavorite(ctx, session.UserID(), recipeID)
	} else {
		err = s.adapter.RemoveFavorite(ctx, session.UserID(), recipeID)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "favoritesService.Toggle").
			Str("recipe_id", recipeID).
			Bool("add", add).
			Msg("error updating favorite")
		return fmt.Errorf("error updating favorite: %w", err)
	}

	// authoritative state
	if _, err = s.Load(ctx, session); err != nil {
		return err
	}
	return nil
}

func (s *favoritesService) IsFavorite(recipeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isFavoriteLocked(recipeID)
}

func (s *favoritesService) isFavoriteLocked(recipeID string) bool {
	if fav, ok := s.speculative[recipeID]; ok {
		return fav
	}
	return s.current.Has(recipeID)
}

func (s *favoritesService) Pending() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pending
}

func (s *favoritesService) Current() models.FavoriteSet {
	s.mu.RLock()
	defer s.mu.RUnlock()

	set := s.current.Clone()
	for id, fav := range s.speculative {
		if fav {
			set[id] = struct{}{}
		} else {
			delete(set, id)
		}
	}
	return set
}
