// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type sessionService struct {
	adapter   adapter.ServerAdapter
	storage   store.SessionStorage
	validator validators.Validator
	logger    *logger.Logger

	// persistMu serializes storage writes with the publish that follows
	// them, so the stored blob always matches the last published session.
	persistMu sync.Mutex

	mu          sync.RWMutex
	session     *models.Session
	state       models.SessionState
	subscribers map[int]chan *models.Session
	nextSubID   int
}

// NewSessionService creates an uninitialized session owner. Call Load once
// at startup.
func NewSessionService(serverAdapter adapter.ServerAdapter, storage store.SessionStorage, logger *logger.Logger) SessionService {
	return &sessionService{
		adapter:     serverAdapter,
		storage:     storage,
		validator:   validators.NewRecipeValidator(),
		logger:      logger,
		state:       models.SessionUninitialized,
		subscribers: make(map[int]chan *models.Session),
	}
}

func (s *sessionService) Load(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	s.mu.Lock()
	s.state = models.SessionLoading
	s.mu.Unlock()

	stored, err := s.storage.Load(ctx)
	if err != nil {
		// corrupt blob or unreadable storage: start anonymous
		s.logger.Err(err).Str("func", "sessionService.Load").Msg("error restoring session")
		s.publish(nil)
		return nil
	}
	if !stored.Valid() {
		s.publish(nil)
		return nil
	}

	err = s.adapter.Validate(ctx, stored.Token)
	if err == nil {
		s.logger.Info().
			Str("func", "sessionService.Load").
			Str("user_id", stored.UserID()).
			Msg("session restored")
		s.publish(stored)
		return nil
	}

	var reqErr *adapter.RequestError
	if errors.As(err, &reqErr) {
		s.logger.Info().
			Str("func", "sessionService.Load").
			Int("status", reqErr.StatusCode).
			Msg("stored session rejected by backend")
		clearErr := s.storage.Clear(ctx)
		s.publish(nil)
		if clearErr != nil {
			return fmt.Errorf("error discarding rejected session: %w", clearErr)
		}
		return nil
	}

	// backend unreachable: keep the cached session
	s.logger.Warn().Err(err).
		Str("func", "sessionService.Load").
		Str("user_id", stored.UserID()).
		Msg("token validation failed, keeping cached session")
	s.publish(stored)
	return nil
}

func (s *sessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	req := models.LoginRequest{Email: strings.TrimSpace(email), Password: password}
	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, newValidationError(err)
	}

	result, err := s.adapter.Login(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Login").Msg("login failed")
		if errors.Is(err, adapter.ErrUnauthorized) {
			return nil, fmt.Errorf("error logging in: %w: %w", ErrInvalidCredentials, err)
		}
		return nil, fmt.Errorf("error logging in: %w", err)
	}

	session := result.Session()
	s.adopt(ctx, session)
	return session, nil
}

func (s *sessionService) Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Username = strings.TrimSpace(req.Username)
	req.Birthday = nilIfBlank(req.Birthday)
	req.Gender = nilIfBlank(req.Gender)

	if err := s.validator.Validate(ctx, req); err != nil {
		return nil, newValidationError(err)
	}

	result, err := s.adapter.Register(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Register").Msg("registration failed")
		return nil, fmt.Errorf("error registering: %w", err)
	}

	session := result.Session()
	s.adopt(ctx, session)
	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	err := s.storage.Clear(ctx)
	s.publish(nil)
	if err != nil {
		s.logger.Err(err).Str("func", "sessionService.Logout").Msg("error deleting persisted session")
		return fmt.Errorf("error deleting persisted session: %w", err)
	}
	return nil
}

func (s *sessionService) SetRole(ctx context.Context, role models.Role) error {
	current := s.Session()
	if !current.Valid() {
		return ErrNotAuthenticated
	}

	s.adopt(ctx, current.WithRole(role))
	return nil
}

func (s *sessionService) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

func (s *sessionService) State() models.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *sessionService) Role() models.Role {
	return s.Session().Role()
}

func (s *sessionService) Subscribe() (<-chan *models.Session, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan *models.Session, 1)
	s.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// adopt persists session and then publishes it. A persistence failure is
// logged and the session stays usable for this process.
func (s *sessionService) adopt(ctx context.Context, session *models.Session) {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.storage.Save(ctx, session); err != nil {
		s.logger.Err(err).
			Str("func", "sessionService.adopt").
			Str("user_id", session.UserID()).
			Msg("error persisting session")
	}
	s.publish(session)
}

// publish replaces the session, settles the state, syncs the adapter token
// and notifies subscribers.
func (s *sessionService) publish(session *models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session
	if session.Valid() {
		s.state = models.SessionAuthenticated
	} else {
		s.session = nil
		s.state = models.SessionAnonymous
	}
	s.adapter.SetToken(s.session.BearerToken())

	for _, ch := range s.subscribers {
		// keep only the latest value for slow subscribers
		select {
		case <-ch:
		default:
		}
		ch <- s.session
	}
}

func nilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
