package main

import (
	"fmt"

	"github.com/bestreads/bestreads/internal/adapter"
	"github.com/bestreads/bestreads/internal/client"
	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/tui"
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

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("bestreads-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("bestreads-client", cfg.LogLevel)

	catalogClient, err := adapter.NewCatalogClient(cfg.Adapter, cfg.Catalog, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create catalog client")
	}

	ui, err := tui.New(catalogClient, cfg.Catalog.Collection, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
