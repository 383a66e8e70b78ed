// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/limiter"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingWorker counts starts and blocks until ctx is cancelled.
type blockingWorker struct {
	started atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
}

// countingSweeper signals every call on calls.
type countingSweeper struct {
	calls chan struct{}
	err   error
}

func (c *countingSweeper) SweepExpiredTokens(ctx context.Context) (int64, error) {
	select {
	case c.calls <- struct{}{}:
	default:
	}
	return 2, c.err
}

// countingPruner records the times it was asked to prune at.
type countingPruner struct {
	mu    sync.Mutex
	times []time.Time
}

func (c *countingPruner) Cleanup(now time.Time) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.times = append(c.times, now)
	return 0
}

func (c *countingPruner) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.times)
}

func TestWorkers_Run_AllWorkersStartAndStopWithContext(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2, w3}, logger: logger.Nop()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// returns at once with nothing to wait for
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	limiters := limiter.NewLimiters(config.RateLimit{ResetMax: 5, ResetWindow: time.Minute, GlobalMax: 100, GlobalWindow: time.Minute},
		utils.SystemClock{})

	tests := []struct {
		name     string
		cfg      config.Workers
		limiters *limiter.Limiters
		want     int
	}{
		{name: "all", cfg: config.Workers{ResetSweepInterval: time.Hour}, limiters: limiters, want: 3},
		{name: "sweeper disabled", cfg: config.Workers{}, limiters: limiters, want: 2},
		{name: "no limiters", cfg: config.Workers{ResetSweepInterval: time.Hour}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ws := NewWorkers(tt.cfg, &countingSweeper{}, tt.limiters, config.RateLimit{}, utils.SystemClock{}, logger.Nop())
			assert.Len(t, ws.workers, tt.want)
		})
	}
}

func TestResetTokenSweeper_SweepsAtStartAndOnTick(t *testing.T) {
	sweeper := &countingSweeper{calls: make(chan struct{}, 10)}
	w := NewResetTokenSweeper(sweeper, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for i := range 3 {
		select {
		case <-sweeper.calls:
		case <-time.After(time.Second):
			t.Fatalf("sweep %d did not happen", i)
		}
	}
}

func TestResetTokenSweeper_ErrorDoesNotStopWorker(t *testing.T) {
	sweeper := &countingSweeper{calls: make(chan struct{}, 10), err: errors.New("db down")}
	w := NewResetTokenSweeper(sweeper, 10*time.Millisecond, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	for range 2 {
		select {
		case <-sweeper.calls:
		case <-time.After(time.Second):
			t.Fatal("sweeper stopped after an error")
		}
	}
}

func TestLimiterCleanup_PrunesWithClockTime(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	pruner := &countingPruner{}
	w := NewLimiterCleanup("test", pruner, 10*time.Millisecond, utils.FixedClock{T: now}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return pruner.count() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	pruner.mu.Lock()
	defer pruner.mu.Unlock()
	for _, got := range pruner.times {
		assert.Equal(t, now, got)
	}
}

func TestNewLimiterCleanup_DefaultInterval(t *testing.T) {
	w := NewLimiterCleanup("test", &countingPruner{}, 0, utils.SystemClock{}, logger.Nop())

	assert.Equal(t, DefaultCleanupInterval, w.interval)
}
