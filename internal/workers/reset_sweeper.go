package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/logger"
)

// ResetTokenSweeper clears expired reset tokens once at start and then every
// interval.
type ResetTokenSweeper struct {
	sweeper  TokenSweeper
	interval time.Duration

	logger *logger.Logger
}

func NewResetTokenSweeper(sweeper TokenSweeper, interval time.Duration, logger *logger.Logger) *ResetTokenSweeper {
	return &ResetTokenSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (r *ResetTokenSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

func (r *ResetTokenSweeper) sweep(ctx context.Context) {
	cleared, err := r.sweeper.SweepExpiredTokens(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Err(err).Str("func", "*ResetTokenSweeper.sweep").Msg("error sweeping expired reset tokens")
		}
		return
	}

	r.logger.Info().Int64("cleared", cleared).Msg("expired reset tokens swept")
}
