package http

import (
	"net/http"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/service"
	"github.com/spf13/afero"
)

type Handler struct {
	services *service.Services

	catalog config.Catalog
	server  config.Server

	// public serves the browser front end. Nil when the public directory
	// does not exist.
	public http.FileSystem

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		catalog:  cfg.Catalog,
		server:   cfg.Server,
		public:   publicFileSystem(afero.NewReadOnlyFs(afero.NewOsFs()), cfg.Catalog.PublicDir, logger),
		logger:   logger,
	}

	logger.Info().Str("collection", cfg.Catalog.Collection).Msg("http handler created")
	return h
}

func publicFileSystem(fs afero.Fs, dir string, logger *logger.Logger) http.FileSystem {
	if dir == "" {
		return nil
	}

	if ok, err := afero.DirExists(fs, dir); err != nil || !ok {
		logger.Warn().Str("public_dir", dir).Msg("public directory not found, static files are disabled")
		return nil
	}

	return afero.NewHttpFs(fs).Dir(dir)
}
