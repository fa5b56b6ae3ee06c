// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the catalog
// server and the terminal client.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Request-scoped loggers are obtained via FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label (e.g. "server")
// writing JSON to os.Stdout.
//
// Every entry carries a "role" field, a timestamp and a "func" caller field
// holding the fully-qualified function name. level is parsed with
// zerolog.ParseLevel; an empty or unknown level falls back to debug.
func NewLogger(role string, level ...string) *Logger {
	return newLogger(os.Stdout, role, level...)
}

// NewClientLogger is like NewLogger but writes to a "logs" file next to the
// executable, so that log output does not tear the terminal UI. It falls back
// to os.Stdout if the file cannot be opened.
func NewClientLogger(role string, level ...string) *Logger {
	var out io.Writer = os.Stdout

	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "logs")
		if logFile, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); openErr == nil {
			out = logFile
		}
	}

	return newLogger(out, role, level...)
}

func newLogger(out io.Writer, role string, level ...string) *Logger {
	zerolog.SetGlobalLevel(parseLevel(level...))
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

func parseLevel(level ...string) zerolog.Level {
	if len(level) == 0 || level[0] == "" {
		return zerolog.DebugLevel
	}

	parsed, err := zerolog.ParseLevel(level[0])
	if err != nil || parsed == zerolog.NoLevel {
		return zerolog.DebugLevel
	}
	return parsed
}

// Nop returns a *Logger that discards all log output. Intended for tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver and can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request's context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger stored in ctx by zerolog's WithContext.
// If none has been attached, zerolog's default context logger is returned,
// so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
