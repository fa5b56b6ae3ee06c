package service

import (
	"fmt"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/store"
)

type Services struct {
	CatalogService CatalogService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	logger.Info().Msg("creating new services...")

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CatalogService: NewCatalogService(storages.CatalogRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
