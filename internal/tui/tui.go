// Package tui implements the terminal catalog browser: a list of every item
// in the collection and a detail view with description and reviews.
package tui

import (
	"context"
	"errors"

	"github.com/bestreads/bestreads/internal/adapter"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoCatalogClient = errors.New("catalog client is not set")

type TUI struct {
	client     adapter.CatalogClient
	collection string
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

// New returns a browser over client. collection is only used as the list
// title.
func New(client adapter.CatalogClient, collection string, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if client == nil {
		return nil, errNoCatalogClient
	}
	return &TUI{client: client, collection: collection, buildInfo: buildInfo, logger: logger}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	t.logger.Info().Msg("starting catalog browser")

	program := tea.NewProgram(
		newAppModel(ctx, t.client, t.collection, t.buildInfo),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		t.logger.Err(err).Msg("catalog browser stopped with error")
		return err
	}

	t.logger.Info().Msg("catalog browser closed")
	return nil
}
