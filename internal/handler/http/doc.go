// Package http implements the read-only HTTP API of the catalog.
//
// It exposes route wiring, request handlers, and middleware. Request
// tracing, access logging, panic recovery, response compression, and CORS
// are applied in this package before requests reach the service layer.
// Static assets of the browser front end are served from the configured
// public directory.
package http
