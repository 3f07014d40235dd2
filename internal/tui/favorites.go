// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// FavoritesModel lists the resolved favorite recipes of the signed-in user.
// The list is reconciled with the backend every time the page is opened.
type FavoritesModel struct {
	ctx       context.Context
	favorites service.FavoritesService
	sessions  service.SessionService

	recipes []models.Recipe
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewFavoritesModel(ctx context.Context, services *service.ClientServices) *FavoritesModel {
	return &FavoritesModel{
		ctx:       ctx,
		favorites: services.FavoritesService,
		sessions:  services.SessionService,
	}
}

func (m *FavoritesModel) Init() tea.Cmd {
	return m.reload()
}

func (m *FavoritesModel) reload() tea.Cmd {
	session := m.sessions.Session()
	if !session.Valid() {
		m.recipes = nil
		m.loading = false
		return nil
	}

	m.loading = true
	ctx := m.ctx
	svc := m.favorites
	return func() tea.Msg {
		recipes, err := svc.Recipes(ctx, session)
		return favoritesLoadedMsg{recipes: recipes, err: err}
	}
}

func (m *FavoritesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case favoritesLoadedMsg:
		m.loading = false
		m.recipes = msg.recipes
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = app.MsgFavoritesLoadFailed
		}
		m.idx = clampIndex(m.idx, len(m.recipes))
		return m, nil

	case sessionChangedMsg:
		if !msg.session.Valid() {
			m.recipes = nil
			m.idx = 0
			m.errMsg = ""
		}
		return m, nil

	case reconciledMsg:
		if msg.result.Err != nil {
			m.errMsg = app.MsgFavoritesLoadFailed
		}
		return m, nil

	case favoriteToggledMsg:
		m.status, m.errMsg = toggleOutcome(msg)
		return m, tea.Batch(m.reload(), cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.idx > 0 {
				m.idx--
			}
		case key.Matches(msg, keys.down):
			if m.idx < len(m.recipes)-1 {
				m.idx++
			}
		case key.Matches(msg, keys.enter):
			if len(m.recipes) == 0 {
				return m, nil
			}
			return m, navigate(pageDetail, openRecipeMsg{recipe: m.recipes[m.idx], back: pageFavorites})
		case key.Matches(msg, keys.reload):
			return m, m.reload()
		case key.Matches(msg, keys.favorite), key.Matches(msg, keys.delete):
			if len(m.recipes) == 0 {
				return m, nil
			}
			return m, cmdToggleFavorite(m.ctx, m.favorites, m.sessions.Session(), m.recipes[m.idx].ID)
		}
	}

	return m, nil
}

func (m *FavoritesModel) View() string {
	var b strings.Builder

	switch {
	case !m.sessions.Session().Valid():
		b.WriteString(app.MsgLoginRequired)
		b.WriteString("\n\n3: ir a Cuenta\n")
	case m.loading && len(m.recipes) == 0:
		b.WriteString("Cargando favoritos...\n")
	case len(m.recipes) == 0 && m.errMsg == "":
		b.WriteString("Aún no tienes favoritos\n")
	default:
		for i, r := range m.recipes {
			b.WriteString(recipeLine(i == m.idx, m.favorites.IsFavorite(r.ID), r))
			b.WriteString("\n")
		}
	}

	writeMessages(&b, m.status, m.errMsg)
	return renderPage("FAVORITOS", strings.TrimRight(b.String(), "\n"),
		"enter: abrir │ d: quitar │ r: recargar")
}
