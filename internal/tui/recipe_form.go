// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-recipe-keeper/internal/app"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Single-line fields of the recipe form, in focus order.
const (
	formName = iota
	formDescription
	formImage
	formCookTime
	formServings
	formDifficulty
	formCategory
	formRestrictions
	formInputCount
)

// Multi-line fields follow the single-line ones in focus order.
const (
	formIngredients  = formInputCount
	formInstructions = formInputCount + 1
	formFieldCount   = formInputCount + 2
)

var formLabels = [formInputCount]string{
	"Nombre",
	"Descripción",
	"Imagen",
	"Tiempo (min)",
	"Porciones",
	"Dificultad",
	"Tipo",
	"Restricciones",
}

// RecipeFormModel is the admin create/edit form. Ingredients and steps are
// entered one per line.
type RecipeFormModel struct {
	ctx      context.Context
	recipes  service.RecipeService
	sessions service.SessionService

	inputs       []textinput.Model
	ingredients  textarea.Model
	instructions textarea.Model
	focus        int

	editingID  string
	submitting bool
	errMsg     string
}

func NewRecipeFormModel(ctx context.Context, services *service.ClientServices) *RecipeFormModel {
	m := &RecipeFormModel{
		ctx:      ctx,
		recipes:  services.RecipeService,
		sessions: services.SessionService,
	}
	m.reset(nil)
	return m
}

func (m *RecipeFormModel) reset(r *models.Recipe) {
	inputs := make([]textinput.Model, formInputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
	}
	inputs[formImage].Placeholder = "archivo.jpg o https://..."
	inputs[formDifficulty].Placeholder = strings.Join(models.Difficulties, " / ")
	inputs[formCategory].Placeholder = "Desayuno, Almuerzo, Cena, Snack"
	inputs[formRestrictions].Placeholder = "separadas por coma"

	ingredients := textarea.New()
	ingredients.Placeholder = "Un ingrediente por línea"
	ingredients.SetWidth(50)
	ingredients.SetHeight(5)

	instructions := textarea.New()
	instructions.Placeholder = "Un paso por línea"
	instructions.SetWidth(50)
	instructions.SetHeight(5)

	m.inputs = inputs
	m.ingredients = ingredients
	m.instructions = instructions
	m.focus = formName
	m.editingID = ""
	m.submitting = false
	m.errMsg = ""

	if r != nil {
		m.editingID = r.ID
		m.inputs[formName].SetValue(r.Name)
		m.inputs[formDescription].SetValue(r.Description)
		m.inputs[formImage].SetValue(r.Image)
		m.inputs[formCookTime].SetValue(formatNumber(r.CookTime))
		m.inputs[formServings].SetValue(formatNumber(r.Servings))
		m.inputs[formDifficulty].SetValue(titleCase(r.Difficulty))
		m.inputs[formCategory].SetValue(r.Category)
		m.inputs[formRestrictions].SetValue(strings.Join(r.Restrictions, ", "))
		m.ingredients.SetValue(strings.Join(r.Ingredients, "\n"))
		m.instructions.SetValue(strings.Join(r.Instructions, "\n"))
	}

	m.inputs[formName].Focus()
}

func (m *RecipeFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RecipeFormModel) capturesInput() bool {
	return true
}

func (m *RecipeFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editRecipeMsg:
		m.reset(msg.recipe)
		return m, textinput.Blink

	case recipeSavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = app.MsgRecipeSaveFailed + ": " + service.UserMessage(msg.err)
			return m, nil
		}
		return m, tea.Batch(
			navigate(pageAdmin, msg),
			func() tea.Msg { return recipesChangedMsg{} },
		)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageAdmin, nil)
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % formFieldCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + formFieldCount) % formFieldCount)
			return m, nil
		case key.Matches(msg, keys.save):
			return m, m.submit()
		case key.Matches(msg, keys.enter) && m.focus < formInputCount:
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	switch {
	case m.focus < formInputCount:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == formIngredients:
		m.ingredients, cmd = m.ingredients.Update(msg)
	case m.focus == formInstructions:
		m.instructions, cmd = m.instructions.Update(msg)
	}
	return m, cmd
}

func (m *RecipeFormModel) setFocus(next int) {
	switch {
	case m.focus < formInputCount:
		m.inputs[m.focus].Blur()
	case m.focus == formIngredients:
		m.ingredients.Blur()
	case m.focus == formInstructions:
		m.instructions.Blur()
	}

	m.focus = next
	switch {
	case m.focus < formInputCount:
		m.inputs[m.focus].Focus()
	case m.focus == formIngredients:
		m.ingredients.Focus()
	case m.focus == formInstructions:
		m.instructions.Focus()
	}
}

func (m *RecipeFormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	m.submitting = true
	m.errMsg = ""

	ctx := m.ctx
	svc := m.recipes
	session := m.sessions.Session()
	id := m.editingID
	in := m.input()
	return func() tea.Msg {
		if id == "" {
			recipe, err := svc.Create(ctx, session, in)
			return recipeSavedMsg{recipe: recipe, created: true, err: err}
		}
		recipe, err := svc.Update(ctx, session, id, in)
		return recipeSavedMsg{recipe: recipe, err: err}
	}
}

// input collects the form values. Normalization and validation happen in
// the service.
func (m *RecipeFormModel) input() models.RecipeInput {
	return models.RecipeInput{
		Name:         m.inputs[formName].Value(),
		Description:  m.inputs[formDescription].Value(),
		Image:        m.inputs[formImage].Value(),
		CookTime:     parseNumber(m.inputs[formCookTime].Value()),
		Servings:     parseNumber(m.inputs[formServings].Value()),
		Difficulty:   m.inputs[formDifficulty].Value(),
		Category:     m.inputs[formCategory].Value(),
		Restrictions: strings.Split(m.inputs[formRestrictions].Value(), ","),
		Ingredients:  strings.Split(m.ingredients.Value(), "\n"),
		Instructions: strings.Split(m.instructions.Value(), "\n"),
	}
}

// parseNumber accepts a decimal comma. Anything unparsable becomes 0, which
// the validator rejects.
func parseNumber(v string) float64 {
	v = strings.ReplaceAll(strings.TrimSpace(v), ",", ".")
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return n
}

func (m *RecipeFormModel) View() string {
	var b strings.Builder
	for i, label := range formLabels {
		b.WriteString(padRight(label, 14))
		b.WriteString("[")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}
	b.WriteString("\nIngredientes\n")
	b.WriteString(m.ingredients.View())
	b.WriteString("\n\nPreparación\n")
	b.WriteString(m.instructions.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Guardando...]\n")
	}
	writeMessages(&b, "", m.errMsg)

	title := "NUEVA RECETA"
	if m.editingID != "" {
		title = "EDITAR: " + strings.ToUpper(m.inputs[formName].Value())
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: siguiente campo │ ctrl+s: guardar │ esc: cancelar")
}
