// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// reservedCollections are the fixed path segments under /bestreads that a
// collection name must not shadow.
var reservedCollections = map[string]struct{}{
	"description": {},
	"info":        {},
	"reviews":     {},
	"version":     {},
}

// validate checks the merged [StructuredConfig] after defaults were applied.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.Catalog.validate(); err != nil {
		return err
	}

	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (c Catalog) validate() error {
	if strings.ContainsAny(c.Collection, "/{}*") {
		return fmt.Errorf("%w: collection %q is not a single path segment", ErrInvalidCatalogConfigs, c.Collection)
	}
	if _, ok := reservedCollections[c.Collection]; ok {
		return fmt.Errorf("%w: collection %q shadows a fixed route", ErrInvalidCatalogConfigs, c.Collection)
	}
	if c.IDField == "title" {
		return fmt.Errorf("%w: id field must differ from \"title\"", ErrInvalidCatalogConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !strings.HasPrefix(cfg.Adapter.HTTPAddress, "http://") && !strings.HasPrefix(cfg.Adapter.HTTPAddress, "https://") {
		return fmt.Errorf("%w: server url %q has no http(s) scheme", ErrInvalidAdapterConfigs, cfg.Adapter.HTTPAddress)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}
