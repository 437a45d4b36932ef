// Package handler assembles the transport handlers of the server from the
// service layer and the configuration.
package handler

import (
	"github.com/MKhiriev/finance-flow/internal/config"
	"github.com/MKhiriev/finance-flow/internal/handler/http"
	"github.com/MKhiriev/finance-flow/internal/logger"
	"github.com/MKhiriev/finance-flow/internal/metrics"
	"github.com/MKhiriev/finance-flow/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the HTTP handler. m and pinger are optional: a nil
// value disables the /metrics endpoint or the storage check of /health.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, m *metrics.Metrics, pinger http.Pinger, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	opts := []http.Option{
		http.WithCORSOrigin(cfg.CORS.Origin),
		http.WithRequestTimeout(cfg.Server.RequestTimeout),
	}
	if m != nil {
		opts = append(opts, http.WithMetrics(m))
	}
	if pinger != nil {
		opts = append(opts, http.WithPinger(pinger))
	}

	return &Handlers{HTTP: http.NewHandler(services, logger, opts...)}, nil
}
