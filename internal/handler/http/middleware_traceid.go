package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader = "X-Trace-ID"

	maxTraceIDLength = 128
)

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context and echoes the id in the response header. An incoming
// X-Trace-ID is reused when it is short printable ASCII; otherwise a new
// UUID is generated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !isValidTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func isValidTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return false
	}
	for i := 0; i < len(traceID); i++ {
		if traceID[i] < 0x21 || traceID[i] > 0x7e {
			return false
		}
	}
	return true
}
