package limiter

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/utils"
)

type window struct {
	start time.Time
	count int
}

// FixedWindow allows at most max requests per key in each window. A window
// opens at the first request of a key and resets once it has fully elapsed.
type FixedWindow struct {
	max    int
	period time.Duration
	clock  utils.Clock

	mu      sync.Mutex
	windows map[string]*window
}

func NewFixedWindow(max int, period time.Duration, clock utils.Clock) *FixedWindow {
	return &FixedWindow{
		max:     max,
		period:  period,
		clock:   clock,
		windows: make(map[string]*window),
	}
}

func (f *FixedWindow) Allow(key string) (bool, time.Duration) {
	now := f.clock.Now()

	f.mu.Lock()
	defer f.mu.Unlock()

	w, ok := f.windows[key]
	if !ok || now.Sub(w.start) >= f.period {
		f.windows[key] = &window{start: now, count: 1}
		return true, 0
	}

	if w.count >= f.max {
		return false, w.start.Add(f.period).Sub(now)
	}

	w.count++
	return true, 0
}

// Cleanup drops windows that have elapsed at now and returns how many were
// dropped.
func (f *FixedWindow) Cleanup(now time.Time) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	dropped := 0
	for key, w := range f.windows {
		if now.Sub(w.start) >= f.period {
			delete(f.windows, key)
			dropped++
		}
	}
	return dropped
}

// Len returns the number of tracked keys.
func (f *FixedWindow) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.windows)
}
