package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the outer mux. Operational endpoints live on chi; every other
// path, with or without the /api prefix, goes through the pipeline.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.metrics != nil {
		router.Use(h.withMetrics)
	}
	router.Use(h.withCORS)
	router.Use(withGZip)
	router.Use(middleware.Timeout(h.requestTimeout))

	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)
	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	pipeline := http.HandlerFunc(h.dispatch)
	router.Handle("/api/*", http.StripPrefix("/api", pipeline))
	router.NotFound(pipeline)
	router.MethodNotAllowed(pipeline)

	return router
}
