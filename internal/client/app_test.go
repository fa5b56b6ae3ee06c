package client

import (
	"context"
	"errors"
	"testing"

	"github.com/bestreads/bestreads/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	err    error
	called bool
	ctx    context.Context
}

func (f *fakeUI) Run(ctx context.Context) error {
	f.called = true
	f.ctx = ctx
	return f.err
}

func TestNewApp_RequiresUI(t *testing.T) {
	app, err := NewApp(nil, logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, errNoUI)
}

func TestApp_Run(t *testing.T) {
	ui := &fakeUI{}
	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.run(context.Background()))
	assert.True(t, ui.called)
}

func TestApp_RunWrapsUIError(t *testing.T) {
	uiErr := errors.New("terminal gone")
	app, err := NewApp(&fakeUI{err: uiErr}, logger.Nop())
	require.NoError(t, err)

	err = app.run(context.Background())

	assert.ErrorIs(t, err, uiErr)
	assert.ErrorContains(t, err, "run ui")
}

func TestApp_RunPassesContext(t *testing.T) {
	ui := &fakeUI{}
	app, err := NewApp(ui, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.run(ctx))
	assert.ErrorIs(t, ui.ctx.Err(), context.Canceled)
}
