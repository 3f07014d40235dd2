// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authField describes one row of a sign-in style form.
type authField struct {
	label       string
	placeholder string
	limit       int
	secret      bool
}

// authForm holds the inputs shared by the login and register pages.
type authForm struct {
	labels     []string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newAuthForm(fields ...authField) authForm {
	f := authForm{
		labels: make([]string, len(fields)),
		inputs: make([]textinput.Model, len(fields)),
	}
	for i, field := range fields {
		in := textinput.New()
		in.Placeholder = field.placeholder
		in.CharLimit = field.limit
		in.Width = 40
		if field.secret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		f.labels[i] = field.label
		f.inputs[i] = in
	}
	if len(f.inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

func (f *authForm) value(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// raw skips trimming; passwords are sent as typed.
func (f *authForm) raw(i int) string {
	return f.inputs[i].Value()
}

// handleKey moves focus between rows. It reports whether the key was used.
func (f *authForm) handleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab", "down":
		f.move(1)
	case "shift+tab", "up":
		f.move(-1)
	default:
		return false
	}
	return true
}

func (f *authForm) move(delta int) {
	n := len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + n) % n
	f.inputs[f.focus].Focus()
}

func (f *authForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.submitting = false
	f.errMsg = ""
	f.inputs[0].Focus()
}

// render draws the two-column field table followed by the submit button
// and the last error.
func (f *authForm) render(button string) string {
	var b strings.Builder
	b.WriteString("Campo       │ Valor\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	for i, label := range f.labels {
		b.WriteString(padRight(label, 12))
		b.WriteString("│ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}

	if f.submitting {
		b.WriteString("\n[Cargando...]\n")
	} else {
		b.WriteString("\n[" + button + "]\n")
	}
	writeMessages(&b, "", f.errMsg)

	return strings.TrimRight(b.String(), "\n")
}

// padRight pads v with spaces to width display cells.
func padRight(v string, width int) string {
	n := len([]rune(v))
	if n >= width {
		return v
	}
	return v + strings.Repeat(" ", width-n)
}
