// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "fmt"

// Response bodies written by the catalog handlers. Server faults never leak
// internal details to the caller.
const (
	msgInternalServerError = "Something went wrong on the server, try again later."
	msgNoResultsFormat     = "No results found for %s."
)

func noResultsMessage(itemID string) string {
	return fmt.Sprintf(msgNoResultsFormat, itemID)
}
