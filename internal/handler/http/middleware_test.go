package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bestreads/bestreads/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name         string
		incoming     string
		wantIncoming bool
	}{
		{name: "reuses incoming id", incoming: "my-custom-trace-id", wantIncoming: true},
		{name: "reuses incoming uuid", incoming: "550e8400-e29b-41d4-a716-446655440000", wantIncoming: true},
		{name: "generates id when missing", incoming: ""},
		{name: "replaces id with spaces", incoming: "trace id"},
		{name: "replaces oversized id", incoming: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/bestreads/books", nil)
			if tt.incoming != "" {
				req.Header.Set(traceIDHeader, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rec, req)

			got := rec.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			assert.Equal(t, http.StatusNoContent, rec.Code)

			if tt.wantIncoming {
				assert.Equal(t, tt.incoming, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			}
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
		})
	}
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newBufferedHandler(&bytes.Buffer{})
	mw := h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	seen := make(map[string]bool)
	for range 20 {
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		id := rec.Header().Get(traceIDHeader)
		assert.False(t, seen[id], "duplicate trace id %s", id)
		seen[id] = true
	}
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		wantLevel    string
		wantContains []string
	}{
		{
			name:      "ok response",
			status:    http.StatusOK,
			body:      "OK",
			wantLevel: `"level":"info"`,
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/bestreads/info/42"`,
				`"status":200`,
				`"size":2`,
				`"route":"/bestreads/info/{item_id}"`,
			},
		},
		{
			name:         "client error",
			status:       http.StatusBadRequest,
			body:         "No results found for 42.",
			wantLevel:    `"level":"info"`,
			wantContains: []string{`"status":400`, `"size":24`},
		},
		{
			name:         "server fault",
			status:       http.StatusInternalServerError,
			body:         msgInternalServerError,
			wantLevel:    `"level":"warn"`,
			wantContains: []string{`"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			router := chi.NewRouter()
			router.Use(h.withTraceID, h.withLogging)
			router.Get("/bestreads/info/{item_id}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bestreads/info/42", nil))

			logged := buf.String()
			assert.Contains(t, logged, tt.wantLevel)
			assert.Contains(t, logged, `"duration":`)
			assert.Contains(t, logged, `"trace_id":`)
			for _, want := range tt.wantContains {
				assert.Contains(t, logged, want)
			}
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	mw := h.withTraceID(h.withLogging(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})))
	mw.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"size":0`)
}

// ---- responseWriter ----

func TestResponseWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusBadRequest)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusBadRequest, w.status)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResponseWriter_WriteAccumulatesSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	_, err := w.Write([]byte("first"))
	require.NoError(t, err)
	_, err = w.Write([]byte("second"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, len("firstsecond"), w.size)
	assert.Equal(t, "firstsecond", rec.Body.String())
	assert.Equal(t, rec, w.Unwrap())
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("OK")) })
	router.Get("/bestreads/info/{item_id}", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("info")) })
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"registered method", http.MethodGet, "/health", http.StatusOK, "OK"},
		{"wrong method on static route", http.MethodPost, "/health", http.StatusNotFound, ""},
		{"wrong method on param route", http.MethodDelete, "/bestreads/info/42", http.StatusNotFound, ""},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, "404 page not found\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}
