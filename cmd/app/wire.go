//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/wvwild/adventure-hub/internal/bootstrap"
	"github.com/wvwild/adventure-hub/internal/domain/hub"
	"github.com/wvwild/adventure-hub/internal/infra/config"
	httpiface "github.com/wvwild/adventure-hub/internal/interface/http"
	"github.com/wvwild/adventure-hub/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideHubConfig,
		provideCatalogSource,
		provideCatalog,
		provideSessionStore,
		hub.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
