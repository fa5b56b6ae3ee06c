// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by [CatalogRepository] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrItemNotFound is returned when a path pattern resolves to zero files:
	// the item directory, its info.txt or description.txt is missing, or it
	// has no review*.txt files.
	ErrItemNotFound = errors.New("item not found")

	// ErrReadingFile is returned when a resolved file cannot be read.
	ErrReadingFile = errors.New("error reading catalog file")

	// ErrResolvingPaths is returned when the glob lookup itself fails.
	ErrResolvingPaths = errors.New("error resolving catalog paths")

	// ErrListingCatalog wraps any failure that aborts the catalog listing.
	ErrListingCatalog = errors.New("error listing catalog")
)
