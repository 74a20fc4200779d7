package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hcorbage/corb3d/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors log at
// error level and client errors at warn level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		uri := r.RequestURI

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		var event *zerolog.Event
		log := logger.FromRequest(r)
		switch status := lw.Status(); {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				event = event.Str("route", pattern)
			}
		}

		event.
			Str("uri", uri).
			Str("method", r.Method).
			Int("status", lw.Status()).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
