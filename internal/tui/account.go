// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AccountModel shows the signed-in user or, for anonymous users, a menu
// leading to the login and register forms.
type AccountModel struct {
	ctx       context.Context
	sessions  service.SessionService
	favorites service.FavoritesService

	items  []string
	idx    int
	status string
	errMsg string
}

func NewAccountModel(ctx context.Context, services *service.ClientServices) *AccountModel {
	return &AccountModel{
		ctx:       ctx,
		sessions:  services.SessionService,
		favorites: services.FavoritesService,
		items:     []string{"Iniciar sesión", "Registrarse"},
	}
}

func (m *AccountModel) Init() tea.Cmd {
	return nil
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authNotice:
		m.status = msg.text
		m.errMsg = ""
		return m, nil

	case loggedOutMsg:
		if msg.err != nil {
			m.errMsg = service.UserMessage(msg.err)
			return m, nil
		}
		m.status = "Sesión cerrada"
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.sessions.Session().Valid() {
			return m.updateSignedIn(msg)
		}
		return m.updateMenu(msg)
	}

	return m, nil
}

func (m *AccountModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		m.status = ""
		if m.idx == 0 {
			return m, navigate(pageLogin, nil)
		}
		return m, navigate(pageRegister, nil)
	case key.Matches(msg, keys.login):
		return m, navigate(pageLogin, nil)
	case key.Matches(msg, keys.register):
		return m, navigate(pageRegister, nil)
	}
	return m, nil
}

func (m *AccountModel) updateSignedIn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.logout):
		ctx := m.ctx
		sessions := m.sessions
		return m, func() tea.Msg {
			return loggedOutMsg{err: sessions.Logout(ctx)}
		}
	case key.Matches(msg, keys.enter):
		if m.sessions.Role() == models.RoleAdmin {
			return m, navigate(pageAdmin, nil)
		}
	}
	return m, nil
}

func (m *AccountModel) View() string {
	session := m.sessions.Session()
	if !session.Valid() {
		return m.viewMenu()
	}

	var b strings.Builder
	u := session.User
	fmt.Fprintf(&b, "Usuario:    %s\n", u.Username)
	fmt.Fprintf(&b, "Email:      %s\n", u.Email)
	fmt.Fprintf(&b, "Rol:        %s\n", session.Role())
	fmt.Fprintf(&b, "Favoritos:  %d\n", m.favorites.Current().Len())
	if exp, ok := session.TokenExpiry(); ok {
		fmt.Fprintf(&b, "Sesión:     válida hasta %s\n", exp.Local().Format(time.DateTime))
	}

	writeMessages(&b, m.status, m.errMsg)

	hotKeys := "o: cerrar sesión"
	if session.Role() == models.RoleAdmin {
		hotKeys = "enter: administrar recetas │ " + hotKeys
	}
	return renderPage("MI CUENTA", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *AccountModel) viewMenu() string {
	var b strings.Builder
	idColWidth := lipgloss.Width("ID")
	itemsCountWidth := lipgloss.Width(fmt.Sprintf("%d", len(m.items)))
	if itemsCountWidth > idColWidth {
		idColWidth = itemsCountWidth
	}
	idColWidth += 2 // selection marker and space

	actionColWidth := lipgloss.Width("Acción")
	for _, item := range m.items {
		if w := lipgloss.Width(item); w > actionColWidth {
			actionColWidth = w
		}
	}

	if m.status != "" {
		b.WriteString("OK: ")
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Acción"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %d", cursor, i+1)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item))
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("BIENVENIDO", strings.TrimRight(b.String(), "\n"), "enter: elegir │ ↑/↓: navegar")
}
