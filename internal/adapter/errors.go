package adapter

import "errors"

var (
	// ErrNotFound is returned for 400 responses: the server found no results
	// for the requested item.
	ErrNotFound = errors.New("no results found")

	// ErrInternalServerError is returned for 500 responses.
	ErrInternalServerError = errors.New("catalog server error")

	// ErrUnexpectedResponse is returned when a 2xx body cannot be decoded or
	// lacks the configured collection key.
	ErrUnexpectedResponse = errors.New("unexpected catalog response")

	// ErrInvalidAddress is returned by NewCatalogClient for an unusable base URL.
	ErrInvalidAddress = errors.New("invalid catalog server address")
)
