// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// inputCapturer is implemented by pages that sometimes own the keyboard
// (a focused text input). While it reports true the global hotkeys are
// disabled.
type inputCapturer interface {
	capturesInput() bool
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global quit, tab and build info hotkeys
// 3) handles NavigateTo messages
// 4) relays session and favorites updates to every page
// 5) delegates all other messages to the active page
type RootModel struct {
	pages    map[string]tea.Model
	current  string
	sessions service.SessionService

	sessionUpdates   <-chan *models.Session
	reconcileResults <-chan service.ReconcileResult

	quitByUser    bool
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

// NewRootModel registers all pages and opens the browse page.
func NewRootModel(
	ctx context.Context,
	services *service.ClientServices,
	sessionUpdates <-chan *models.Session,
	reconcileResults <-chan service.ReconcileResult,
	buildInfo models.AppBuildInfo,
) RootModel {
	pages := map[string]tea.Model{
		pageBrowse:     NewBrowseModel(ctx, services),
		pageDetail:     NewDetailModel(ctx, services),
		pageFavorites:  NewFavoritesModel(ctx, services),
		pageAccount:    NewAccountModel(ctx, services),
		pageLogin:      NewLoginModel(ctx, services.SessionService),
		pageRegister:   NewRegisterModel(ctx, services.SessionService),
		pageAdmin:      NewAdminModel(ctx, services),
		pageRecipeForm: NewRecipeFormModel(ctx, services),
	}

	return RootModel{
		pages:            pages,
		current:          pageBrowse,
		sessions:         services.SessionService,
		sessionUpdates:   sessionUpdates,
		reconcileResults: reconcileResults,
		buildInfo:        buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(
		r.page().Init(),
		waitForSession(r.sessionUpdates),
		waitForReconcile(r.reconcileResults),
	)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			if keyMsg.String() == "esc" || keyMsg.String() == "v" {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if !r.capturing() {
			switch keyMsg.String() {
			case "q":
				return r, tea.Quit
			case "v":
				r.showBuildInfo = true
				return r, nil
			case "1":
				return r.switchTo(pageBrowse, nil)
			case "2":
				return r.switchTo(pageFavorites, nil)
			case "3":
				return r.switchTo(pageAccount, nil)
			case "4":
				if r.sessions.Role() == models.RoleAdmin {
					return r.switchTo(pageAdmin, nil)
				}
				return r, nil
			}
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.switchTo(msg.Page, msg.Payload)

	case sessionChangedMsg:
		cmds := r.broadcast(msg)
		cmds = append(cmds, waitForSession(r.sessionUpdates))
		// admin pages are closed as soon as the role is lost
		if (r.current == pageAdmin || r.current == pageRecipeForm) && msg.session.Role() != models.RoleAdmin {
			r.current = pageBrowse
		}
		return r, tea.Batch(cmds...)

	case reconciledMsg:
		cmds := r.broadcast(msg)
		cmds = append(cmds, waitForReconcile(r.reconcileResults))
		return r, tea.Batch(cmds...)

	case recipesChangedMsg:
		return r, tea.Batch(r.broadcast(msg)...)
	}

	page := r.page()
	if page == nil {
		return r, nil
	}
	updated, cmd := page.Update(msg)
	r.pages[r.current] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	page := r.page()
	if page == nil {
		return renderPage("RECETARIO", "", "")
	}
	return appStyle.Render(renderTabs(r.current, r.sessions.Role()) + "\n\n" + page.View())
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) capturing() bool {
	c, ok := r.page().(inputCapturer)
	return ok && c.capturesInput()
}

func (r RootModel) switchTo(name string, payload any) (tea.Model, tea.Cmd) {
	next, exists := r.pages[name]
	if !exists {
		return r, nil
	}
	if (name == pageAdmin || name == pageRecipeForm) && r.sessions.Role() != models.RoleAdmin {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = name

	if payload != nil {
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) broadcast(msg tea.Msg) []tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name, page := range r.pages {
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
