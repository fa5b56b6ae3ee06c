package main

import (
	"fmt"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/handler"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/server"
	"github.com/bestreads/bestreads/internal/service"
	"github.com/bestreads/bestreads/internal/store"
	"github.com/bestreads/bestreads/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("bestreads-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("bestreads-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages := store.NewStorages(cfg.Catalog, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
