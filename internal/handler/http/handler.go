package http

import (
	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/metrics"
	"github.com/MKhiriev/go-story-nook/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

// maxJSONBody caps every JSON request body.
const maxJSONBody = 1 << 20

type Handler struct {
	services *service.Services

	// limiters is nil when rate limiting is off.
	limiters *limiter.Limiters
	metrics  metrics.Recorder

	// gatherer backs GET /metrics; the route is not registered when nil.
	gatherer prometheus.Gatherer

	cfg config.Server

	// coverLimit bounds how much of an uploaded cover is read.
	coverLimit int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, limiters *limiter.Limiters, recorder metrics.Recorder,
	gatherer prometheus.Gatherer, cfg config.Server, logger *logger.Logger) *Handler {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		limiters:   limiters,
		metrics:    recorder,
		gatherer:   gatherer,
		cfg:        cfg,
		coverLimit: service.MaxCoverSize,
		logger:     logger,
	}
}

// SetCoverLimit changes the cover read limit; non-positive values are ignored.
func (h *Handler) SetCoverLimit(limit int64) {
	if limit > 0 {
		h.coverLimit = limit
	}
}
