package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
)

// withLogging writes one access log entry per inspection request. It runs
// after withTraceID so the entry carries the trace_id field.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		event := logger.FromRequest(r).Info()
		if rw.status >= http.StatusInternalServerError {
			event = logger.FromRequest(r).Warn()
		}

		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", rw.status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Msg("request served")
	})
}
