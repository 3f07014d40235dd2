// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/filter"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// BrowseModel is the catalog page: a searchable, filterable recipe list.
// Filtering runs through a memoized [filter.View], so redraws that do not
// change the query, the filter state or the list reuse the last result.
type BrowseModel struct {
	ctx       context.Context
	recipes   service.RecipeService
	favorites service.FavoritesService
	sessions  service.SessionService

	view      *filter.View
	search    textinput.Model
	searching bool
	panel     filterPanel
	showPanel bool
	spinner   spinner.Model

	idx     int
	loading bool
	loaded  bool
	offline bool
	status  string
	errMsg  string
}

func NewBrowseModel(ctx context.Context, services *service.ClientServices) *BrowseModel {
	search := textinput.New()
	search.Placeholder = "Buscar recetas..."
	search.CharLimit = 64
	search.Width = 40

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &BrowseModel{
		ctx:       ctx,
		recipes:   services.RecipeService,
		favorites: services.FavoritesService,
		sessions:  services.SessionService,
		view:      filter.NewView(nil),
		search:    search,
		panel:     newFilterPanel(),
		spinner:   s,
	}
}

// Init loads the catalog on first display only.
func (m *BrowseModel) Init() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	return m.reload()
}

func (m *BrowseModel) capturesInput() bool {
	return m.searching
}

func (m *BrowseModel) reload() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, cmdLoadRecipes(m.ctx, m.recipes))
}

func (m *BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recipesLoadedMsg:
		m.loading = false
		m.loaded = true
		m.view.SetRecipes(msg.recipes)
		m.offline = msg.err != nil && len(msg.recipes) > 0
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = app.MsgRecipesLoadFailed + ": " + service.UserMessage(msg.err)
		}
		m.idx = clampIndex(m.idx, len(m.view.Result()))
		return m, nil

	case recipesChangedMsg:
		return m, m.reload()

	case favoriteToggledMsg:
		m.status, m.errMsg = toggleOutcome(msg)
		return m, cmdClearStatus()

	case copiedMsg, clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case m.searching:
			return m.updateSearch(msg)
		case m.showPanel:
			return m.updatePanel(msg)
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

func (m *BrowseModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.view.SetQuery(m.search.Value())
	m.idx = clampIndex(m.idx, len(m.view.Result()))
	return m, cmd
}

func (m *BrowseModel) updatePanel(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.filters):
		m.showPanel = false
	case key.Matches(msg, keys.up):
		m.panel.prev()
	case key.Matches(msg, keys.down):
		m.panel.next()
	case key.Matches(msg, keys.left):
		m.panel.prevSection()
	case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
		m.panel.nextSection()
	case key.Matches(msg, keys.toggle):
		m.view.SetState(m.panel.toggle(m.view.State()))
	case key.Matches(msg, keys.clear):
		m.view.SetState(m.view.State().Clear())
	}
	m.idx = clampIndex(m.idx, len(m.view.Result()))
	return m, nil
}

func (m *BrowseModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.view.Result()

	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(visible)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(visible) == 0 {
			return m, nil
		}
		return m, navigate(pageDetail, openRecipeMsg{recipe: visible[m.idx], back: pageBrowse})
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.filters):
		m.showPanel = true
	case key.Matches(msg, keys.clear):
		m.search.SetValue("")
		m.view.SetQuery("")
		m.view.SetState(m.view.State().Clear())
		m.idx = 0
	case key.Matches(msg, keys.reload):
		if m.loading {
			return m, nil
		}
		return m, m.reload()
	case key.Matches(msg, keys.favorite):
		if len(visible) == 0 {
			return m, nil
		}
		session := m.sessions.Session()
		if !session.Valid() {
			m.errMsg = app.MsgLoginRequired
			return m, nil
		}
		return m, cmdToggleFavorite(m.ctx, m.favorites, session, visible[m.idx].ID)
	}

	return m, nil
}

func (m *BrowseModel) View() string {
	var b strings.Builder

	b.WriteString("Buscar: [")
	b.WriteString(m.search.View())
	b.WriteString("]\n")
	b.WriteString("Filtros: ")
	b.WriteString(summarizeFilters(m.view.State()))
	b.WriteString("\n\n")

	if m.showPanel {
		b.WriteString(m.panel.View(m.view.State()))
		b.WriteString("\n")
		writeMessages(&b, m.status, m.errMsg)
		return renderPage("FILTROS", strings.TrimRight(b.String(), "\n"),
			"↑/↓: opción │ ←/→: sección │ espacio: marcar │ x: limpiar │ esc: cerrar")
	}

	visible := m.view.Result()
	switch {
	case m.loading && !m.loaded:
		b.WriteString(m.spinner.View())
		b.WriteString(" Cargando recetas...\n")
	case m.view.Total() == 0:
		b.WriteString("No hay recetas\n")
	case len(visible) == 0:
		b.WriteString("Ninguna receta coincide con la búsqueda\n")
	default:
		for i, r := range visible {
			b.WriteString(recipeLine(i == m.idx, m.favorites.IsFavorite(r.ID), r))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "\n%d de %d recetas\n", len(visible), m.view.Total())
	}

	if m.offline {
		b.WriteString("\n(")
		b.WriteString(app.MsgOfflineCopy)
		b.WriteString(")\n")
	}
	writeMessages(&b, m.status, m.errMsg)

	title := "RECETAS"
	if m.loading && m.loaded {
		title += " " + m.spinner.View()
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: abrir │ /: buscar │ f: filtros │ x: limpiar │ s: favorito │ r: recargar")
}

// toggleOutcome renders the result of a favorite toggle as a status line or
// an error line.
func toggleOutcome(msg favoriteToggledMsg) (status, errMsg string) {
	if msg.err != nil {
		return "", app.MsgFavoriteUpdateFailed + ": " + service.UserMessage(msg.err)
	}
	if msg.added {
		return app.MsgFavoriteAdded, ""
	}
	return app.MsgFavoriteRemoved, ""
}
