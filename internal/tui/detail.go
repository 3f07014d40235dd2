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
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailModel shows one recipe with its comments. Comments are refetched
// after every post or delete; the list is never patched locally.
type DetailModel struct {
	ctx       context.Context
	recipes   service.RecipeService
	favorites service.FavoritesService
	comments  service.CommentService
	sessions  service.SessionService

	recipe models.Recipe
	back   string

	commentList     []models.Comment
	commentsLoading bool
	commentsErr     string
	idx             int

	input      textinput.Model
	writing    bool
	submitting bool

	showConfirm bool
	confirm     confirmModel

	status string
	errMsg string
}

func NewDetailModel(ctx context.Context, services *service.ClientServices) *DetailModel {
	input := textinput.New()
	input.Placeholder = "Escribe un comentario..."
	input.CharLimit = 500
	input.Width = 50

	return &DetailModel{
		ctx:       ctx,
		recipes:   services.RecipeService,
		favorites: services.FavoritesService,
		comments:  services.CommentService,
		sessions:  services.SessionService,
		input:     input,
		back:      pageBrowse,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) capturesInput() bool {
	return m.writing || m.showConfirm
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openRecipeMsg:
		m.recipe = msg.recipe
		m.back = msg.back
		if m.back == "" {
			m.back = pageBrowse
		}
		m.commentList = nil
		m.commentsErr = ""
		m.idx = 0
		m.status = ""
		m.errMsg = ""
		m.writing = false
		m.showConfirm = false
		m.input.SetValue("")
		m.input.Blur()
		return m, m.loadComments()

	case commentsLoadedMsg:
		if msg.recipeID != m.recipe.ID {
			return m, nil
		}
		m.commentsLoading = false
		m.commentList = msg.comments
		m.commentsErr = ""
		if msg.err != nil {
			m.commentsErr = app.MsgCommentsLoadFailed
		}
		m.idx = clampIndex(m.idx, len(m.commentList))
		return m, nil

	case commentPostedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = app.MsgCommentPostFailed + " " + service.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.input.SetValue("")
		return m, m.loadComments()

	case commentDeletedMsg:
		if msg.err != nil {
			m.errMsg = app.MsgCommentDeleteFailed + " " + service.UserMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, m.loadComments()

	case favoriteToggledMsg:
		if msg.recipeID != m.recipe.ID {
			return m, nil
		}
		m.status, m.errMsg = toggleOutcome(msg)
		return m, cmdClearStatus()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.status = "Copiado: " + msg.what
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case sessionChangedMsg:
		// ownership marks depend on the session user
		if m.recipe.ID != "" {
			return m, m.loadComments()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.showConfirm:
			return m.updateConfirm(msg)
		case m.writing:
			return m.updateWriting(msg)
		default:
			return m.updateKeys(msg)
		}
	}

	return m, nil
}

func (m *DetailModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		comment, ok := m.selectedComment()
		if !ok {
			return m, nil
		}
		return m, m.cmdDeleteComment(comment)
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
	}
	return m, nil
}

func (m *DetailModel) updateWriting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.writing = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		content := strings.TrimSpace(m.input.Value())
		if content == "" {
			m.errMsg = app.MsgCommentRequired
			return m, nil
		}
		m.writing = false
		m.submitting = true
		m.input.Blur()
		return m, m.cmdPostComment(content)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *DetailModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		return m, navigate(m.back, nil)
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.commentList)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		return m, m.loadComments()
	case key.Matches(msg, keys.favorite):
		session := m.sessions.Session()
		if !session.Valid() {
			m.errMsg = app.MsgLoginRequired
			return m, nil
		}
		return m, cmdToggleFavorite(m.ctx, m.favorites, session, m.recipe.ID)
	case key.Matches(msg, keys.comment):
		if !m.sessions.Session().Valid() {
			m.errMsg = app.MsgLoginRequired
			return m, nil
		}
		m.writing = true
		m.errMsg = ""
		return m, m.input.Focus()
	case key.Matches(msg, keys.delete):
		comment, ok := m.selectedComment()
		if !ok {
			return m, nil
		}
		if !comment.OwnedBy(m.sessions.Session().UserID()) {
			m.errMsg = app.MsgNotCommentOwner
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fitText(comment.Content, 40)
	case key.Matches(msg, keys.copy):
		return m, cmdCopyToClipboard("ingredientes", ingredientsText(m.recipe))
	case key.Matches(msg, keys.copyLink):
		return m, cmdCopyToClipboard("enlace RDF", m.recipes.DocumentURL(m.recipe.ID))
	}

	return m, nil
}

func (m *DetailModel) selectedComment() (models.Comment, bool) {
	if len(m.commentList) == 0 || m.idx < 0 || m.idx >= len(m.commentList) {
		return models.Comment{}, false
	}
	return m.commentList[m.idx], true
}

func (m *DetailModel) loadComments() tea.Cmd {
	m.commentsLoading = true
	ctx := m.ctx
	svc := m.comments
	recipeID := m.recipe.ID
	return func() tea.Msg {
		comments, err := svc.List(ctx, recipeID)
		return commentsLoadedMsg{recipeID: recipeID, comments: comments, err: err}
	}
}

func (m *DetailModel) cmdPostComment(content string) tea.Cmd {
	ctx := m.ctx
	svc := m.comments
	session := m.sessions.Session()
	recipeID := m.recipe.ID
	return func() tea.Msg {
		return commentPostedMsg{err: svc.Add(ctx, session, recipeID, content)}
	}
}

func (m *DetailModel) cmdDeleteComment(comment models.Comment) tea.Cmd {
	ctx := m.ctx
	svc := m.comments
	session := m.sessions.Session()
	return func() tea.Msg {
		return commentDeletedMsg{err: svc.Delete(ctx, session, comment)}
	}
}

func (m *DetailModel) View() string {
	r := m.recipe
	var b strings.Builder

	if m.favorites.IsFavorite(r.ID) {
		b.WriteString(favoriteStyle.Render("★ En favoritos"))
		b.WriteString("\n\n")
	}
	if r.Description != "" {
		b.WriteString(r.Description)
		b.WriteString("\n\n")
	}

	b.WriteString("Tiempo:      " + formatCookTime(r.CookTime) + "\n")
	b.WriteString("Porciones:   " + formatNumber(r.Servings) + "\n")
	b.WriteString("Dificultad:  " + titleCase(r.Difficulty) + "\n")
	b.WriteString("Tipo:        " + r.Category + "\n")
	if len(r.Restrictions) > 0 {
		b.WriteString("Apto para:   " + strings.Join(r.Restrictions, ", ") + "\n")
	}
	if r.Image != "" {
		b.WriteString("Imagen:      " + r.Image + "\n")
	}

	b.WriteString("\nIngredientes\n")
	if len(r.Ingredients) == 0 {
		b.WriteString("-\n")
	} else {
		for _, ing := range r.Ingredients {
			b.WriteString("• " + ing + "\n")
		}
	}

	b.WriteString("\nPreparación\n")
	if len(r.Instructions) == 0 {
		b.WriteString("-\n")
	} else {
		b.WriteString(numberedLines(r.Instructions))
		b.WriteString("\n")
	}

	b.WriteString("\nComentarios\n")
	m.writeComments(&b)

	if m.writing || m.input.Value() != "" {
		b.WriteString("\n> [")
		b.WriteString(m.input.View())
		b.WriteString("]\n")
	}
	if m.submitting {
		b.WriteString("\nPublicando...\n")
	}
	if m.showConfirm {
		b.WriteString("\n")
		b.WriteString(m.confirm.View())
		b.WriteString("\n")
	}
	writeMessages(&b, m.status, m.errMsg)

	hotKeys := "esc: volver │ s: favorito │ a: comentar │ d: borrar comentario │ c: copiar ingredientes │ u: copiar enlace RDF"
	if m.writing {
		hotKeys = "enter: publicar │ esc: cancelar"
	}
	return renderPage(strings.ToUpper(r.Name), strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *DetailModel) writeComments(b *strings.Builder) {
	switch {
	case m.commentsErr != "":
		b.WriteString(m.commentsErr + "\n")
		return
	case m.commentsLoading && len(m.commentList) == 0:
		b.WriteString("Cargando...\n")
		return
	case len(m.commentList) == 0:
		b.WriteString("Todavía no hay comentarios\n")
		return
	}

	userID := m.sessions.Session().UserID()
	for i, c := range m.commentList {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		b.WriteString(cursor)
		b.WriteString(c.AuthorName())
		if c.OwnedBy(userID) {
			b.WriteString(" (tú)")
		}
		if c.CreatedAt != nil {
			b.WriteString(" · " + c.CreatedAt.Local().Format("02/01/2006 15:04"))
		}
		b.WriteString(": ")
		b.WriteString(c.Content)
		b.WriteString("\n")
	}
}

// ingredientsText renders the ingredient list as a shopping list.
func ingredientsText(r models.Recipe) string {
	var b strings.Builder
	b.WriteString(r.Name)
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		b.WriteString("- ")
		b.WriteString(ing)
		b.WriteString("\n")
	}
	return b.String()
}
