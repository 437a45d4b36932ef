package http

import (
	"context"
	"time"

	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/metrics"
	"github.com/MKhiriev/finance-flow/internal/router"
	"github.com/MKhiriev/finance-flow/internal/service"
)

const (
	defaultCORSOrigin     = "http://localhost:5173"
	defaultRequestTimeout = 30 * time.Second
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services

	logger  *logger.Logger
	metrics *metrics.Metrics
	pinger  Pinger

	corsOrigin     string
	requestTimeout time.Duration

	endpoints *router.Router[*endpoint]
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithMetrics enables request instrumentation and the /metrics endpoint.
func WithMetrics(m *metrics.Metrics) Option {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithPinger makes /health check the storage backend.
func WithPinger(p Pinger) Option {
	return func(h *Handler) {
		h.pinger = p
	}
}

// WithCORSOrigin sets the Access-Control-Allow-Origin value.
func WithCORSOrigin(origin string) Option {
	return func(h *Handler) {
		if origin != "" {
			h.corsOrigin = origin
		}
	}
}

// WithRequestTimeout bounds the lifetime of a request context.
func WithRequestTimeout(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services:       services,
		logger:         logger,
		corsOrigin:     defaultCORSOrigin,
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.endpoints = h.newEndpoints()

	logger.Info().Int("routes", len(h.endpoints.Routes())).Msg("http handler created")
	return h
}
