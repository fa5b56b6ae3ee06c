// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied by [StructuredConfig.applyDefaults]. They reproduce the
// boba deployment: port 5011, items under ./bobas, listing at /bestreads/bobas.
const (
	DefaultPort             = "5011"
	DefaultCatalogRoot      = "bobas"
	DefaultCollection       = "bobas"
	DefaultIDField          = "boba_id"
	DefaultPublicDir        = "public"
	DefaultVersion          = "dev"
	DefaultLogLevel         = "debug"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultAdapterAddress   = "http://localhost:" + DefaultPort
	DefaultAdapterTimeout   = 15 * time.Second
	defaultDotEnvFile       = ".env"
	defaultAllowedOriginAll = "*"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Catalog describes where items live on disk and how the listing is named.
	Catalog Catalog `envPrefix:"CATALOG_"`

	// Server holds listener and shutdown settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the HTTP client used by the terminal browser.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Port is the conventional PORT variable. It is only used to derive
	// Server.HTTPAddress when no explicit address is configured.
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /bestreads/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Catalog describes one catalog deployment. The book and boba instances of
// the service differ only in these values.
type Catalog struct {
	// Root is the directory holding one subdirectory per item.
	// Env: CATALOG_ROOT
	Root string `env:"ROOT"`

	// Collection names the listing route and the JSON key wrapping it
	// (e.g. "bobas" → GET /bestreads/bobas → {"bobas": [...]}).
	// Env: CATALOG_COLLECTION
	Collection string `env:"COLLECTION"`

	// IDField is the JSON key of the item id inside listing entries
	// (e.g. "boba_id").
	// Env: CATALOG_ID_FIELD
	IDField string `env:"ID_FIELD"`

	// PublicDir is served as static files at "/". Ignored when the
	// directory does not exist.
	// Env: CATALOG_PUBLIC_DIR
	PublicDir string `env:"PUBLIC_DIR"`
}

// Server holds network and lifecycle settings for the inbound transport.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins is the CORS origin allow-list, comma separated in env.
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds settings of the outbound catalog client.
type Adapter struct {
	// HTTPAddress is the base URL of the catalog server
	// (e.g. "http://localhost:5011").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources. Command-line flags are read from os.Args.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills every field left empty by all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}

	if cfg.Catalog.Root == "" {
		cfg.Catalog.Root = DefaultCatalogRoot
	}
	if cfg.Catalog.Collection == "" {
		cfg.Catalog.Collection = DefaultCollection
	}
	if cfg.Catalog.IDField == "" {
		cfg.Catalog.IDField = DefaultIDField
	}
	if cfg.Catalog.PublicDir == "" {
		cfg.Catalog.PublicDir = DefaultPublicDir
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = ":" + cfg.Port
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{defaultAllowedOriginAll}
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
}
