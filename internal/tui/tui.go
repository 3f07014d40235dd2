// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal screens of the recipe client on top
// of Bubble Tea.
//
// [RootModel] routes between pages, relays session changes and favorites
// reconciliation results to every page, and owns the global hotkeys.
// Pages never talk to the backend directly: every request is a tea.Cmd
// calling into the service layer.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits. It returns [ErrUserQuit] when the
// program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	updates, unsubscribe := t.services.SessionService.Subscribe()
	defer unsubscribe()

	var results <-chan service.ReconcileResult
	if t.services.ReconcileJob != nil {
		results = t.services.ReconcileJob.Results()
	}

	root := NewRootModel(ctx, t.services, updates, results, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("tui program failed")
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
