package http

import (
	"net/http"

	"github.com/MKhiriev/go-web-api-sdk/internal/adapter"
	"github.com/MKhiriev/go-web-api-sdk/internal/utils"
	"github.com/rs/zerolog"
)

// withTraceID reuses the caller's X-Trace-ID or generates one, echoes it in
// the response and stores it in the request context for the logger and for
// outgoing API client requests.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(adapter.TraceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		ctx = utils.WithTraceID(l.WithContext(ctx), traceID)
		r = r.WithContext(ctx)

		w.Header().Set(adapter.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
