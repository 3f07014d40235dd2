// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionService owns the client session. Every change replaces the
// session wholesale and is published to subscribers; the adapter token is
// kept in sync with it.
type SessionService interface {
	// Load restores the persisted session and validates its token against
	// the backend. A rejected token discards the persisted copy; a
	// transport failure keeps it. Persistence is suppressed while loading.
	Load(ctx context.Context) error

	// Login authenticates and persists the new session before returning.
	// On failure the current session is left unchanged.
	Login(ctx context.Context, email, password string) (*models.Session, error)

	// Register creates an account, then behaves like Login.
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)

	// Logout drops the session and deletes the persisted copy.
	Logout(ctx context.Context) error

	// SetRole replaces the session with a copy carrying role.
	SetRole(ctx context.Context, role models.Role) error

	// Session returns the current session or nil.
	Session() *models.Session

	// State returns the lifecycle stage.
	State() models.SessionState

	// Role returns the effective role; [models.RoleGuest] without a session.
	Role() models.Role

	// Subscribe returns a channel receiving every settled session change
	// (nil for anonymous) and a function that cancels the subscription. A
	// slow subscriber only sees the latest value.
	Subscribe() (<-chan *models.Session, func())
}

// FavoritesService reconciles the favorite set of the current user with
// the backend and applies optimistic toggles on top of it.
type FavoritesService interface {
	// Load rebuilds the authoritative set for session. An anonymous session
	// yields an empty set without any request. Links whose recipe can't be
	// resolved are dropped.
	Load(ctx context.Context, session *models.Session) (models.FavoriteSet, error)

	// Recipes reconciles like Load and returns the resolved recipes in link
	// order.
	Recipes(ctx context.Context, session *models.Session) ([]models.Recipe, error)

	// Toggle flips recipeID speculatively, issues the mutation and, on
	// success, reconciles. On failure the speculative flag stays until the
	// next reconciliation.
	Toggle(ctx context.Context, session *models.Session, recipeID string) error

	// Speculate records the flip of recipeID immediately and marks a
	// reconciliation pending. It returns the new state; an anonymous
	// session gets ErrNotAuthenticated.
	Speculate(session *models.Session, recipeID string) (bool, error)

	// Commit issues the mutation for a flip recorded by Speculate and, on
	// success, reconciles.
	Commit(ctx context.Context, session *models.Session, recipeID string, add bool) error

	// IsFavorite reports the effective (speculative or reconciled) state.
	IsFavorite(recipeID string) bool

	// Pending reports whether a reconciliation is outstanding.
	Pending() bool

	// Current returns the effective set.
	Current() models.FavoriteSet
}

// RecipeService lists recipes and performs admin mutations.
type RecipeService interface {
	// List fetches all recipes and refreshes the local cache. On failure it
	// returns the cached snapshot, if any, together with the error.
	List(ctx context.Context) ([]models.Recipe, error)

	// Get fetches one recipe.
	Get(ctx context.Context, id string) (models.Recipe, error)

	// Create validates in, checks the admin role and creates the recipe.
	Create(ctx context.Context, session *models.Session, in models.RecipeInput) (models.Recipe, error)

	// Update validates in, checks the admin role and replaces recipe id.
	Update(ctx context.Context, session *models.Session, id string, in models.RecipeInput) (models.Recipe, error)

	// Delete checks the admin role and deletes recipe id.
	Delete(ctx context.Context, session *models.Session, id string) error

	// DocumentURL returns the RDF download link of recipe id.
	DocumentURL(id string) string
}

// CommentService reads and writes recipe comments.
type CommentService interface {
	// List fetches the comments of recipeID. Failures are
	// [*ReconciliationError].
	List(ctx context.Context, recipeID string) ([]models.Comment, error)

	// Add posts a trimmed, non-empty comment as the session user.
	Add(ctx context.Context, session *models.Session, recipeID, content string) error

	// Delete removes comment; only its author may do so.
	Delete(ctx context.Context, session *models.Session, comment models.Comment) error
}

// BackgroundJob is a restartable background loop.
type BackgroundJob interface {
	// Start launches the loop; a running loop is stopped first.
	Start(ctx context.Context)

	// Stop signals the loop to exit and blocks until it has.
	Stop()
}
