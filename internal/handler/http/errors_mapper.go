package http

import (
	"errors"
	"net/http"

	"github.com/bestreads/bestreads/internal/store"
)

// errorStatuses is checked in order: server faults come first, so an error
// wrapping both a fault and a client-facing sentinel is reported as a fault.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrResolvingPaths, http.StatusInternalServerError},
	{store.ErrListingCatalog, http.StatusInternalServerError},

	{store.ErrItemNotFound, http.StatusBadRequest},
	{store.ErrReadingFile, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
