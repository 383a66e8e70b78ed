package limiter

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/utils"
	"golang.org/x/time/rate"
)

type bucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// TokenBucket gives every key a bucket of max tokens refilled evenly over
// period, so max requests may burst and the long-run rate is max per period.
type TokenBucket struct {
	limit rate.Limit
	burst int
	idle  time.Duration
	clock utils.Clock

	mu      sync.Mutex
	buckets map[string]*bucket
}

// A non-positive max disables limiting.
func NewTokenBucket(max int, period time.Duration, clock utils.Clock) *TokenBucket {
	limit := rate.Inf
	if max > 0 {
		limit = rate.Every(period / time.Duration(max))
	}

	return &TokenBucket{
		limit:   limit,
		burst:   max,
		idle:    period,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

func (t *TokenBucket) Allow(key string) (bool, time.Duration) {
	now := t.clock.Now()

	t.mu.Lock()
	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.buckets[key] = b
	}
	b.lastAccess = now
	t.mu.Unlock()

	r := b.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, 0
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}

	return true, 0
}

// Cleanup drops buckets idle for a whole period; such a bucket is full again
// and indistinguishable from a fresh one.
func (t *TokenBucket) Cleanup(now time.Time) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	dropped := 0
	for key, b := range t.buckets {
		if now.Sub(b.lastAccess) >= t.idle {
			delete(t.buckets, key)
			dropped++
		}
	}
	return dropped
}

func (t *TokenBucket) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.buckets)
}
