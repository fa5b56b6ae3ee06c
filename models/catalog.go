// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the catalog records shared by the store, service,
// transport and client layers.
package models

// Info is the title/author pair stored in an item's info.txt.
//
// Author is nil when the file has no second line; the "author" key is then
// omitted from the JSON payload.
type Info struct {
	Title  string  `json:"title"`
	Author *string `json:"author,omitempty"`
}

// Review is a single review*.txt file: reviewer name, rating and body, one
// per line. Rating is kept as the raw string found in the file.
type Review struct {
	Name   string  `json:"name"`
	Rating *string `json:"rating,omitempty"`
	Text   *string `json:"text,omitempty"`
}

// CatalogEntry is one element of the catalog listing.
//
// The JSON key of ItemID depends on the deployment ("boba_id", "book_id"),
// so entries are serialised by the HTTP layer rather than through struct tags.
type CatalogEntry struct {
	ItemID string
	Title  string
}

// ItemDetail aggregates everything known about an item. It is assembled by
// the client, which fetches each part through a separate route.
type ItemDetail struct {
	ItemID      string
	Info        Info
	Description string
	Reviews     []Review
}
