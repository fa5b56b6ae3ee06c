package handler

import (
	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/handler/http"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}, nil
}
