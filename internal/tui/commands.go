// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWrite is swapped in tests.
var clipboardWrite = clipboard.WriteAll

// waitForSession blocks on the subscription and turns the next change into
// a message. A closed channel ends the loop.
func waitForSession(updates <-chan *models.Session) tea.Cmd {
	if updates == nil {
		return nil
	}
	return func() tea.Msg {
		session, ok := <-updates
		if !ok {
			return nil
		}
		return sessionChangedMsg{session: session}
	}
}

func waitForReconcile(results <-chan service.ReconcileResult) tea.Cmd {
	if results == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-results
		if !ok {
			return nil
		}
		return reconciledMsg{result: result}
	}
}

func cmdLoadRecipes(ctx context.Context, recipes service.RecipeService) tea.Cmd {
	return func() tea.Msg {
		list, err := recipes.List(ctx)
		return recipesLoadedMsg{recipes: list, err: err}
	}
}

// cmdToggleFavorite flips the star right away, before the returned command
// reaches the backend.
func cmdToggleFavorite(ctx context.Context, favorites service.FavoritesService, session *models.Session, recipeID string) tea.Cmd {
	add, err := favorites.Speculate(session, recipeID)
	if err != nil {
		return func() tea.Msg {
			return favoriteToggledMsg{recipeID: recipeID, err: err}
		}
	}
	return func() tea.Msg {
		err := favorites.Commit(ctx, session, recipeID, add)
		return favoriteToggledMsg{recipeID: recipeID, added: add, err: err}
	}
}

func cmdCopyToClipboard(what, text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboardWrite(text); err != nil {
			return copiedMsg{what: what, err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{what: what}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg {
		return NavigateTo{Page: page, Payload: payload}
	}
}
