// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the recipe backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every non-2xx response becomes a [*RequestError]. It matches the sentinel
// values defined in errors.go through [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401), so callers can branch without inspecting status
// codes. Transport failures (DNS, refused connection, timeout) are returned
// wrapped and never match a sentinel.
//
// Recipe records are normalized by mapRecipe on the way in, for single
// records and lists alike.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the recipe
// backend. Implementations are responsible for serialisation, optional
// bearer header management, and mapping non-2xx responses to
// [*RequestError].
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// An empty token removes the header.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// RecipeDocumentURL returns the absolute URL of the RDF document the
	// backend publishes for the recipe.
	RecipeDocumentURL(recipeID string) string

	// ListRecipes fetches GET /api/recipes. A response that is not a JSON
	// array yields an empty list.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe fetches GET /api/recipes/{id}.
	GetRecipe(ctx context.Context, id string) (models.Recipe, error)

	// CreateRecipe posts a new recipe (admin only on the backend) and returns
	// the stored record.
	CreateRecipe(ctx context.Context, in models.RecipeInput) (models.Recipe, error)

	// UpdateRecipe replaces the recipe id and returns the stored record.
	UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (models.Recipe, error)

	// DeleteRecipe deletes the recipe id.
	DeleteRecipe(ctx context.Context, id string) error

	// Login authenticates with e-mail and password. It does not change the
	// adapter token; the session owner does.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResult, error)

	// Register creates an account and returns the signed-in user.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResult, error)

	// Validate checks token against GET /api/validate. A nil error means the
	// backend answered OK; a [*RequestError] means it rejected the token; any
	// other error is a transport failure.
	Validate(ctx context.Context, token string) error

	// ListFavorites fetches the favorite links of userID.
	ListFavorites(ctx context.Context, userID string) ([]models.FavoriteLink, error)

	// AddFavorite links recipeID to userID.
	AddFavorite(ctx context.Context, userID, recipeID string) error

	// RemoveFavorite unlinks recipeID from userID.
	RemoveFavorite(ctx context.Context, userID, recipeID string) error

	// ListComments fetches the comments of recipeID.
	ListComments(ctx context.Context, recipeID string) ([]models.Comment, error)

	// AddComment posts a comment on recipeID.
	AddComment(ctx context.Context, recipeID string, c models.NewComment) error

	// DeleteComment deletes commentID on behalf of userID.
	DeleteComment(ctx context.Context, commentID, userID string) error
}
