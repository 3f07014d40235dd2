// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/service"
	"github.com/MKhiriev/go-recipe-keeper/internal/tui"
	"github.com/MKhiriev/go-recipe-keeper/internal/workers"
)

// UI is the interactive front end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client: services and ui are required")
	}

	var jobs []workers.Worker
	if services.ReconcileJob != nil {
		jobs = append(jobs, services.ReconcileJob)
	}
	if services.CatalogRefresh != nil {
		jobs = append(jobs, services.CatalogRefresh)
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(jobs...),
		logger:   logger,
	}, nil
}

// Run restores the session, starts the background jobs and blocks in the
// UI. The jobs are stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := a.services.SessionService.Load(ctx); err != nil {
		// the UI still starts, anonymous
		a.logger.Err(err).Str("func", "App.Run").Msg("error restoring session")
	}
	a.logger.Info().
		Str("func", "App.Run").
		Stringer("session_state", a.services.SessionService.State()).
		Msg("session restored")

	a.workers.Start(ctx)
	defer a.workers.Stop()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
