// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 instead of chi's default 405, so a catalog route called with
// a write method looks like any unknown path.
//
// A request whose method is registered for a route pattern equal to the
// request path is forwarded to router. Parameterised patterns are never
// expanded, so every other request gets 404.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		w.WriteHeader(http.StatusNotFound)
	}
}
