// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel signs an existing user in. The session service publishes the
// new session, the page itself only reports the outcome.
type LoginModel struct {
	authForm

	ctx      context.Context
	sessions service.SessionService
}

func NewLoginModel(ctx context.Context, sessions service.SessionService) *LoginModel {
	return &LoginModel{
		authForm: newAuthForm(
			authField{label: "Correo", placeholder: "Correo electrónico", limit: 254},
			authField{label: "Contraseña", placeholder: "Contraseña", limit: 256, secret: true},
		),
		ctx:      ctx,
		sessions: sessions,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// The form always owns the keyboard.
func (m *LoginModel) capturesInput() bool {
	return true
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		if msg.Register {
			return m, nil
		}
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = app.MsgLoginFailed + ": " + service.UserMessage(msg.Err)
			return m, nil
		}
		m.reset()
		return m, navigate(pageAccount, authNotice{text: "Bienvenido, " + msg.Username})

	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, navigate(pageAccount, nil)
		case "enter":
			return m, m.submit()
		}
	}

	return m, m.updateFocused(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	email, pass := m.value(0), m.raw(1)
	if email == "" || pass == "" {
		m.errMsg = app.MsgFillAllFields
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Login(ctx, email, pass)
		if err != nil {
			return LoginResult{Err: err}
		}
		return LoginResult{Username: session.User.Username}
	}
}

func (m *LoginModel) View() string {
	return renderPage("INICIAR SESIÓN", m.render("Entrar"),
		"esc: volver │ tab: siguiente campo │ enter: entrar")
}
