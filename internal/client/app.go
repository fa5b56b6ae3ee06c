package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/bestreads/bestreads/internal/logger"
)

var errNoUI = errors.New("no ui to run")

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run blocks until the UI exits or the process receives SIGINT, SIGTERM or
// SIGQUIT.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	a.logger.Info().Msg("client started")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
