package handler

import (
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/handler/grpc"
	"github.com/MKhiriev/go-story-nook/internal/handler/http"
	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// Observability is what the HTTP handler reports to and exposes.
type Observability struct {
	Recorder metrics.Recorder
	Gatherer prometheus.Gatherer
}

func NewHandlers(services *service.Services, limiters *limiter.Limiters, obs Observability,
	cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, limiters, obs.Recorder, obs.Gatherer, cfg.Server, logger)
		handlers.HTTP.SetCoverLimit(cfg.Storage.Covers.MaxSize)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
