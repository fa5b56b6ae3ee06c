// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/bestreads/bestreads/internal/adapter"
)

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound):
		return "Nothing found for this item"
	case errors.Is(err, adapter.ErrInternalServerError):
		return "The catalog server failed, try again later"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the catalog server is unavailable"
	}

	return err.Error()
}
