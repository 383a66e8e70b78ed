package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

// DefaultCleanupInterval is used when the limiter window is not positive.
const DefaultCleanupInterval = 15 * time.Minute

// LimiterCleanup prunes a limiter once per window.
type LimiterCleanup struct {
	name     string
	pruner   Pruner
	interval time.Duration
	clock    utils.Clock

	logger *logger.Logger
}

func NewLimiterCleanup(name string, pruner Pruner, interval time.Duration, clock utils.Clock, logger *logger.Logger) *LimiterCleanup {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}

	return &LimiterCleanup{
		name:     name,
		pruner:   pruner,
		interval: interval,
		clock:    clock,
		logger:   logger,
	}
}

func (l *LimiterCleanup) Run(ctx context.Context) {
	l.logger.Debug().Str("limiter", l.name).Dur("interval", l.interval).Msg("limiter cleanup started")
	limiter.RunCleanup(ctx, l.pruner, l.interval, l.clock.Now)
}
