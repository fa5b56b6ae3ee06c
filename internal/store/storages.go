package store

import (
	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/spf13/afero"
)

// Storages groups the repositories used by the service layer.
type Storages struct {
	CatalogRepository CatalogRepository
}

// NewStorages opens the catalog root on the OS filesystem through a
// read-only afero layer, since the service never writes.
func NewStorages(cfg config.Catalog, logger *logger.Logger) *Storages {
	return newStorages(afero.NewReadOnlyFs(afero.NewOsFs()), cfg, logger)
}

func newStorages(fs afero.Fs, cfg config.Catalog, logger *logger.Logger) *Storages {
	logger.Info().Str("root", cfg.Root).Msg("creating catalog storages...")

	if exists, err := afero.DirExists(fs, cfg.Root); err != nil || !exists {
		logger.Warn().Str("root", cfg.Root).Msg("catalog root is not a directory, listing will be empty")
	}

	return &Storages{
		CatalogRepository: NewCatalogFileRepository(fs, cfg.Root, logger),
	}
}
