// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

// Page names understood by [NavigateTo].
const (
	pageBrowse     = "browse"
	pageDetail     = "detail"
	pageFavorites  = "favorites"
	pageAccount    = "account"
	pageLogin      = "login"
	pageRegister   = "register"
	pageAdmin      = "admin"
	pageRecipeForm = "recipe_form"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// sessionChangedMsg carries a settled session change; nil is anonymous.
type sessionChangedMsg struct {
	session *models.Session
}

// reconciledMsg carries one favorites reconciliation outcome.
type reconciledMsg struct {
	result service.ReconcileResult
}

type recipesLoadedMsg struct {
	recipes []models.Recipe
	err     error
}

// recipesChangedMsg is broadcast after an admin mutation.
type recipesChangedMsg struct{}

type favoritesLoadedMsg struct {
	recipes []models.Recipe
	err     error
}

type favoriteToggledMsg struct {
	recipeID string
	added    bool
	err      error
}

// openRecipeMsg opens the detail page; back is the page esc returns to.
type openRecipeMsg struct {
	recipe models.Recipe
	back   string
}

// editRecipeMsg opens the admin form; a nil recipe means "create".
type editRecipeMsg struct {
	recipe *models.Recipe
}

type commentsLoadedMsg struct {
	recipeID string
	comments []models.Comment
	err      error
}

type commentPostedMsg struct {
	err error
}

type commentDeletedMsg struct {
	err error
}

// LoginResult is produced by the login and register screens.
type LoginResult struct {
	Err      error
	Username string
	Register bool
}

type loggedOutMsg struct {
	err error
}

type recipeSavedMsg struct {
	recipe  models.Recipe
	created bool
	err     error
}

type recipeDeletedMsg struct {
	recipeID string
	err      error
}

// authNotice is shown once on the account page after login or register.
type authNotice struct {
	text string
}

type copiedMsg struct {
	what string
	err  error
}

type clearStatusMsg struct{}
