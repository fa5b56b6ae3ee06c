// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the catalog's read API.
//
// The primary abstraction is [CatalogClient], which decouples the terminal
// browser from the underlying protocol. The package ships an HTTP
// implementation built on resty ([NewCatalogClient]).
//
// Status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers use [errors.Is] instead of inspecting responses
// (e.g. [ErrNotFound] for 400, [ErrInternalServerError] for 500).
package adapter

import (
	"context"

	"github.com/bestreads/bestreads/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/catalog_client_mock.go -package=mock

// CatalogClient mirrors the four read operations of the catalog server.
type CatalogClient interface {
	// ListCatalog returns every item of the configured collection in server
	// order. An empty catalog yields an empty, non-nil slice.
	ListCatalog(ctx context.Context) ([]models.CatalogEntry, error)

	// GetDescription returns the raw description text of itemID.
	GetDescription(ctx context.Context, itemID string) (string, error)

	// GetInfo returns the title and optional author of itemID.
	GetInfo(ctx context.Context, itemID string) (models.Info, error)

	// GetReviews returns the reviews of itemID. The server reports an item
	// without reviews exactly like a missing item, so both yield
	// [ErrNotFound].
	GetReviews(ctx context.Context, itemID string) ([]models.Review, error)
}
