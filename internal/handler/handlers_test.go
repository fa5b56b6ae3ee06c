package handler

import (
	"testing"

	"github.com/bestreads/bestreads/internal/config"
	"github.com/bestreads/bestreads/internal/logger"
	"github.com/bestreads/bestreads/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := &config.StructuredConfig{
		Server:  config.Server{HTTPAddress: ":5011"},
		Catalog: config.Catalog{Collection: "bobas", IDField: "boba_id"},
	}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, &config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
