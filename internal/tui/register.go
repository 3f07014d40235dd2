// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Row indexes of the registration form.
const (
	regEmail = iota
	regPassword
	regUsername
	regBirthday
	regGender
)

// RegisterModel creates an account. Birthday and gender are optional; a
// successful registration leaves the user signed in.
type RegisterModel struct {
	authForm

	ctx      context.Context
	sessions service.SessionService
}

func NewRegisterModel(ctx context.Context, sessions service.SessionService) *RegisterModel {
	return &RegisterModel{
		authForm: newAuthForm(
			authField{label: "Correo", placeholder: "Correo electrónico", limit: 254},
			authField{label: "Contraseña", placeholder: "Contraseña", secret: true},
			authField{label: "Usuario", placeholder: "Nombre de usuario", limit: 40},
			authField{label: "Nacimiento", placeholder: "AAAA-MM-DD (opcional)", limit: 10},
			authField{label: "Género", placeholder: "opcional", limit: 20},
		),
		ctx:      ctx,
		sessions: sessions,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) capturesInput() bool {
	return true
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoginResult:
		if !msg.Register {
			return m, nil
		}
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = app.MsgRegisterFailed + ": " + service.UserMessage(msg.Err)
			return m, nil
		}
		m.reset()
		return m, navigate(pageAccount, authNotice{text: "Cuenta creada. Bienvenido, " + msg.Username})

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

func (m *RegisterModel) request() models.RegisterRequest {
	req := models.RegisterRequest{
		Email:    m.value(regEmail),
		Password: m.raw(regPassword),
		Username: m.value(regUsername),
	}
	if v := m.value(regBirthday); v != "" {
		req.Birthday = &v
	}
	if v := m.value(regGender); v != "" {
		req.Gender = &v
	}
	return req
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	req := m.request()
	if req.Email == "" || req.Password == "" || req.Username == "" {
		m.errMsg = app.MsgFillAllFields
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	sessions := m.sessions
	return func() tea.Msg {
		session, err := sessions.Register(ctx, req)
		if err != nil {
			return LoginResult{Err: err, Register: true}
		}
		return LoginResult{Username: session.User.Username, Register: true}
	}
}

func (m *RegisterModel) View() string {
	return renderPage("CREAR CUENTA", m.render("Registrarse"),
		"esc: volver │ tab: siguiente campo │ enter: registrarse")
}
