// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/crypto"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// SessionStorageKey is the secure storage entry holding the session blob.
const SessionStorageKey = "recetario_session_v1"

// sessionStorage is the default implementation of [SessionStorage]. It
// seals the session with a [crypto.Sealer] before delegating to a
// [SecureStorageRepository].
type sessionStorage struct {
	repository SecureStorageRepository
	sealer     crypto.Sealer
	logger     *logger.Logger
}

func NewSessionStorage(repository SecureStorageRepository, sealer crypto.Sealer, logger *logger.Logger) SessionStorage {
	return &sessionStorage{
		repository: repository,
		sealer:     sealer,
		logger:     logger,
	}
}

func (s *sessionStorage) Load(ctx context.Context) (*models.Session, error) {
	blob, err := s.repository.Get(ctx, SessionStorageKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}

	var session models.Session
	if err = s.sealer.Open(blob, &session); err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionStorage.Load").Msg("stored session can't be opened")
		return nil, fmt.Errorf("%w: %w", ErrCorruptSession, err)
	}

	return &session, nil
}

func (s *sessionStorage) Save(ctx context.Context, session *models.Session) error {
	if session == nil {
		return s.Clear(ctx)
	}

	blob, err := s.sealer.Seal(session)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}

	if err = s.repository.Put(ctx, SessionStorageKey, blob); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *sessionStorage) Clear(ctx context.Context) error {
	if err := s.repository.Delete(ctx, SessionStorageKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
