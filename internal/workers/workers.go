package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

// NewWorkers builds the reset-token sweeper and one cleanup worker per
// limiter. A non-positive sweep interval disables the sweeper.
func NewWorkers(cfg config.Workers, sweeper TokenSweeper, limiters *limiter.Limiters, rateCfg config.RateLimit,
	clock utils.Clock, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	if cfg.ResetSweepInterval > 0 {
		w.workers = append(w.workers, NewResetTokenSweeper(sweeper, cfg.ResetSweepInterval, logger.Component("reset_sweeper")))
	}

	if limiters != nil {
		w.workers = append(w.workers,
			NewLimiterCleanup("reset", limiters.Reset, rateCfg.ResetWindow, clock, logger.Component("limiter_cleanup")),
			NewLimiterCleanup("global", limiters.Global, rateCfg.GlobalWindow, clock, logger.Component("limiter_cleanup")),
		)
	}

	return w
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()

	if w.logger != nil {
		w.logger.Info().Int("workers", len(w.workers)).Msg("workers stopped")
	}
}
