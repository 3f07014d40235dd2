// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client business logic between the screens and
// the backend adapter: the session owner, favorites reconciliation, recipe
// and comment operations and the background jobs.
package service

import (
	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/config"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
)

type ClientServices struct {
	SessionService   SessionService
	FavoritesService FavoritesService
	RecipeService    RecipeService
	CommentService   CommentService

	ReconcileJob   *FavoritesReconcileJob
	CatalogRefresh BackgroundJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, workersCfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	sessionSvc := NewSessionService(serverAdapter, storages.Session, logger)
	favoritesSvc := NewFavoritesService(serverAdapter, sessionSvc, workersCfg.ReconcileConcurrency, logger)
	recipeSvc := NewRecipeService(serverAdapter, storages.RecipeCache, logger)

	return &ClientServices{
		SessionService:   sessionSvc,
		FavoritesService: favoritesSvc,
		RecipeService:    recipeSvc,
		CommentService:   NewCommentService(serverAdapter, logger),
		ReconcileJob:     NewFavoritesReconcileJob(sessionSvc, favoritesSvc, logger),
		CatalogRefresh:   NewCatalogRefreshJob(recipeSvc, workersCfg.CatalogRefreshInterval, logger),
	}
}
