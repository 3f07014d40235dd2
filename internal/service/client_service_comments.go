// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type commentService struct {
	adapter   adapter.ServerAdapter
	validator validators.Validator
	logger    *logger.Logger
}

func NewCommentService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) CommentService {
	return &commentService{
		adapter:   serverAdapter,
		validator: validators.NewRecipeValidator(),
		logger:    logger,
	}
}

func (s *commentService) List(ctx context.Context, recipeID string) ([]models.Comment, error) {
	comments, err := s.adapter.ListComments(ctx, recipeID)
	if err != nil {
		s.logger.Err(err).Str("func", "commentService.List").Str("recipe_id", recipeID).Msg("error fetching comments")
		return []models.Comment{}, &ReconciliationError{Op: "comments", Err: err}
	}
	return comments, nil
}

func (s *commentService) Add(ctx context.Context, session *models.Session, recipeID, content string) error {
	if !session.Valid() {
		return ErrNotAuthenticated
	}

	comment := models.NewComment{Content: strings.TrimSpace(content), UserID: session.UserID()}
	if err := s.validator.Validate(ctx, comment); err != nil {
		return newValidationError(err)
	}

	if err := s.adapter.AddComment(ctx, recipeID, comment); err != nil {
		s.logger.Err(err).Str("func", "commentService.Add").Str("recipe_id", recipeID).Msg("error posting comment")
		return fmt.Errorf("error posting comment: %w", err)
	}
	return nil
}

func (s *commentService) Delete(ctx context.Context, session *models.Session, comment models.Comment) error {
	if !session.Valid() {
		return ErrNotAuthenticated
	}
	if !comment.OwnedBy(session.UserID()) {
		return ErrNotCommentOwner
	}

	if err := s.adapter.DeleteComment(ctx, comment.ID, session.UserID()); err != nil {
		s.logger.Err(err).Str("func", "commentService.Delete").Str("comment_id", comment.ID).Msg("error deleting comment")
		return fmt.Errorf("error deleting comment: %w", err)
	}
	return nil
}
