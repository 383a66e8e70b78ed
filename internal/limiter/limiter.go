// Package limiter holds the per-client request limiters used by the HTTP
// middleware: a strict fixed window for the password-reset endpoints and a
// token bucket for all traffic.
package limiter

import (
	"context"
	"time"
)

// Limiter decides whether the client identified by key may proceed. When it
// may not, retryAfter tells how long until it may.
type Limiter interface {
	Allow(key string) (allowed bool, retryAfter time.Duration)
}

// cleaner is implemented by limiters that keep per-key state.
type cleaner interface {
	Cleanup(now time.Time) int
}

// RunCleanup prunes l every interval until ctx is cancelled.
func RunCleanup(ctx context.Context, l cleaner, interval time.Duration, now func() time.Time) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup(now())
		}
	}
}
