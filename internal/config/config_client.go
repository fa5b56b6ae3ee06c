package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the catalog server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCatalog tells the client how the listing payload is keyed.
type ClientCatalog struct {
	Collection string
	IDField    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter  ClientAdapter
	Catalog  ClientCatalog
	LogLevel string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Catalog: ClientCatalog{
			Collection: cfg.Catalog.Collection,
			IDField:    cfg.Catalog.IDField,
		},
		LogLevel: cfg.App.LogLevel,
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}
