package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid after defaults have been applied.
var (
	// ErrInvalidCatalogConfigs indicates an unusable catalog section, for
	// example a collection name containing "/" or shadowing a fixed route.
	ErrInvalidCatalogConfigs = errors.New("invalid catalog configuration")
	// ErrInvalidServerConfigs indicates invalid server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
