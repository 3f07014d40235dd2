// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/validators"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// recipeImageDir is where the backend serves bundled recipe images.
const recipeImageDir = "/assets/images/recipes/"

type recipeService struct {
	adapter   adapter.ServerAdapter
	cache     store.RecipeCacheRepository
	validator validators.Validator
	logger    *logger.Logger
}

// NewRecipeService creates the recipe service. cache may be nil, in which
// case List has no offline fallback.
func NewRecipeService(serverAdapter adapter.ServerAdapter, cache store.RecipeCacheRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		adapter:   serverAdapter,
		cache:     cache,
		validator: validators.NewRecipeValidator(),
		logger:    logger,
	}
}

func (s *recipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.adapter.ListRecipes(ctx)
	if err == nil {
		if s.cache != nil {
			if cacheErr := s.cache.ReplaceAll(ctx, recipes); cacheErr != nil {
				s.logger.Err(cacheErr).Str("func", "recipeService.List").Msg("error refreshing recipe cache")
			}
		}
		return recipes, nil
	}

	s.logger.Err(err).Str("func", "recipeService.List").Msg("error listing recipes")
	if s.cache == nil {
		return []models.Recipe{}, fmt.Errorf("error listing recipes: %w", err)
	}

	cached, fetchedAt, cacheErr := s.cache.GetAll(ctx)
	if cacheErr != nil {
		s.logger.Err(cacheErr).Str("func", "recipeService.List").Msg("error reading recipe cache")
		return []models.Recipe{}, fmt.Errorf("error listing recipes: %w", err)
	}

	if len(cached) > 0 {
		s.logger.Info().
			Str("func", "recipeService.List").
			Int("recipes", len(cached)).
			Time("fetched_at", fetchedAt).
			Msg("serving cached recipes")
	}
	return cached, fmt.Errorf("error listing recipes: %w", err)
}

func (s *recipeService) Get(ctx context.Context, id string) (models.Recipe, error) {
	recipe, err := s.adapter.GetRecipe(ctx, id)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error getting recipe %s: %w", id, err)
	}
	return recipe, nil
}

func (s *recipeService) Create(ctx context.Context, session *models.Session, in models.RecipeInput) (models.Recipe, error) {
	in = prepareRecipeInput(in)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, newValidationError(err)
	}
	if err := requireAdmin(session); err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.adapter.CreateRecipe(ctx, in)
	if err != nil {
		s.logger.Err(err).Str("func", "recipeService.Create").Msg("error creating recipe")
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) Update(ctx context.Context, session *models.Session, id string, in models.RecipeInput) (models.Recipe, error) {
	in = prepareRecipeInput(in)
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Recipe{}, newValidationError(err)
	}
	if err := requireAdmin(session); err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.adapter.UpdateRecipe(ctx, id, in)
	if err != nil {
		s.logger.Err(err).Str("func", "recipeService.Update").Str("recipe_id", id).Msg("error updating recipe")
		return models.Recipe{}, fmt.Errorf("error updating recipe %s: %w", id, err)
	}
	return recipe, nil
}

func (s *recipeService) Delete(ctx context.Context, session *models.Session, id string) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if err := s.adapter.DeleteRecipe(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "recipeService.Delete").Str("recipe_id", id).Msg("error deleting recipe")
		return fmt.Errorf("error deleting recipe %s: %w", id, err)
	}
	return nil
}

func (s *recipeService) DocumentURL(id string) string {
	return s.adapter.RecipeDocumentURL(id)
}

func requireAdmin(session *models.Session) error {
	if !session.Valid() {
		return ErrNotAuthenticated
	}
	if session.Role() != models.RoleAdmin {
		return ErrForbiddenRole
	}
	return nil
}

// prepareRecipeInput trims the form values, drops blank list entries and
// expands a bare image filename.
func prepareRecipeInput(in models.RecipeInput) models.RecipeInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Category = strings.TrimSpace(in.Category)
	in.Difficulty = strings.TrimSpace(in.Difficulty)
	in.Image = ExpandImagePath(in.Image)
	in.Ingredients = compactLines(in.Ingredients, false)
	in.Instructions = compactLines(in.Instructions, false)
	in.Restrictions = compactLines(in.Restrictions, true)
	return in
}

// ExpandImagePath turns a bare filename into the bundled image path.
// URLs and absolute paths are returned trimmed but otherwise unchanged.
func ExpandImagePath(image string) string {
	image = strings.TrimSpace(image)
	if image == "" || strings.HasPrefix(image, "http") || strings.HasPrefix(image, "/") {
		return image
	}
	return recipeImageDir + image
}

func compactLines(lines []string, lower bool) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if lower {
			l = strings.ToLower(l)
		}
		out = append(out, l)
	}
	return out
}
