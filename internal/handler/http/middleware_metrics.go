package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/finance-flow/internal/metrics"
)

// withMetrics records one observation per request. The route label is the
// pipeline pattern, or the chi pattern for operational endpoints, so the
// label set stays bounded.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		mw := &responseWriter{ResponseWriter: w}
		r = r.WithContext(metrics.WithRouteHolder(r.Context()))

		next.ServeHTTP(mw, r)

		route := metrics.RouteFromContext(r.Context())
		if route == metrics.UnmatchedRoute {
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" && !strings.HasSuffix(pattern, "*") {
					route = pattern
				}
			}
		}

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}
		h.metrics.RecordRequest(r.Method, route, status, time.Since(start))
	})
}
