// Package workers runs the periodic background jobs of the server.
//
// Every Worker blocks in Run until its context is cancelled; Workers starts
// them together and waits for all of them to return.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// TokenSweeper clears reset tokens that are past their expiry.
type TokenSweeper interface {
	SweepExpiredTokens(ctx context.Context) (int64, error)
}

// Pruner drops per-client limiter state that no longer matters.
type Pruner interface {
	Cleanup(now time.Time) int
}
