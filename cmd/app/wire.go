//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/quickshop/assistant/internal/bootstrap"
	"github.com/quickshop/assistant/internal/infra/config"
	httpiface "github.com/quickshop/assistant/internal/interface/http"
	"github.com/quickshop/assistant/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideFAQConfig,
		provideCatalogSource,
		provideTrendStore,
		provideFAQService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
