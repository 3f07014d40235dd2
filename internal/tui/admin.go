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

// AdminModel lists every recipe for administrators and starts the create,
// edit and delete flows.
type AdminModel struct {
	ctx      context.Context
	recipes  service.RecipeService
	sessions service.SessionService

	list    []models.Recipe
	idx     int
	loading bool

	showConfirm   bool
	confirm       confirmModel
	pendingDelete string

	status string
	errMsg string
}

func NewAdminModel(ctx context.Context, services *service.ClientServices) *AdminModel {
	return &AdminModel{
		ctx:      ctx,
		recipes:  services.RecipeService,
		sessions: services.SessionService,
	}
}

func (m *AdminModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *AdminModel) capturesInput() bool {
	return m.showConfirm
}

// cmdLoad reuses the catalog listing but keeps the result private so the
// browse page is not disturbed.
func (m *AdminModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	svc := m.recipes
	return func() tea.Msg {
		list, err := svc.List(ctx)
		return adminLoadedMsg{recipes: list, err: err}
	}
}

type adminLoadedMsg struct {
	recipes []models.Recipe
	err     error
}

func (m *AdminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adminLoadedMsg:
		m.loading = false
		m.list = msg.recipes
		m.errMsg = ""
		if msg.err != nil {
			m.errMsg = app.MsgRecipesLoadFailed + ": " + service.UserMessage(msg.err)
		}
		m.idx = clampIndex(m.idx, len(m.list))
		return m, nil

	case recipesChangedMsg:
		return m, m.cmdLoad()

	case recipeSavedMsg:
		if msg.err != nil {
			return m, nil
		}
		if msg.created {
			m.status = app.MsgRecipeCreated
		} else {
			m.status = app.MsgRecipeUpdated
		}
		return m, cmdClearStatus()

	case recipeDeletedMsg:
		m.pendingDelete = ""
		if msg.err != nil {
			m.errMsg = app.MsgRecipeDeleteFailed + ": " + service.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Receta eliminada"
		return m, tea.Batch(func() tea.Msg { return recipesChangedMsg{} }, cmdClearStatus())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *AdminModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		if m.pendingDelete == "" {
			return m, nil
		}
		ctx := m.ctx
		svc := m.recipes
		session := m.sessions.Session()
		id := m.pendingDelete
		return m, func() tea.Msg {
			return recipeDeletedMsg{recipeID: id, err: svc.Delete(ctx, session, id)}
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.pendingDelete = ""
	}
	return m, nil
}

func (m *AdminModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.list)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.esc):
		return m, navigate(pageAccount, nil)
	case key.Matches(msg, keys.reload):
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageRecipeForm, editRecipeMsg{})
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		r, ok := m.current()
		if !ok {
			return m, nil
		}
		return m, navigate(pageRecipeForm, editRecipeMsg{recipe: &r})
	case key.Matches(msg, keys.delete):
		r, ok := m.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = r.Name
		m.pendingDelete = r.ID
	}
	return m, nil
}

func (m *AdminModel) current() (models.Recipe, bool) {
	if len(m.list) == 0 || m.idx < 0 || m.idx >= len(m.list) {
		return models.Recipe{}, false
	}
	return m.list[m.idx], true
}

func (m *AdminModel) View() string {
	var b strings.Builder

	switch {
	case m.loading && len(m.list) == 0:
		b.WriteString("Cargando...\n")
	case len(m.list) == 0:
		b.WriteString("No hay recetas\n")
	default:
		for i, r := range m.list {
			b.WriteString(recipeLine(i == m.idx, false, r))
			b.WriteString("\n")
		}
	}

	if m.showConfirm {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	writeMessages(&b, m.status, m.errMsg)

	return renderPage("ADMINISTRAR RECETAS", strings.TrimRight(b.String(), "\n"),
		"n: nueva │ e: editar │ d: eliminar │ r: recargar │ esc: volver")
}
