package limiter

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-story-nook/internal/utils"
	"github.com/stretchr/testify/assert"
)

// stepClock is a settable clock for limiter tests.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *stepClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

var _ utils.Clock = (*stepClock)(nil)

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func TestFixedWindow_AllowsUpToMax(t *testing.T) {
	clock := newStepClock()
	fw := NewFixedWindow(5, 15*time.Minute, clock)

	for i := 0; i < 5; i++ {
		ok, _ := fw.Allow("10.0.0.1")
		assert.True(t, ok, "request %d", i+1)
	}

	clock.Advance(time.Minute)
	ok, retry := fw.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, 14*time.Minute, retry)
}

func TestFixedWindow_KeysAreIndependent(t *testing.T) {
	fw := NewFixedWindow(1, time.Minute, newStepClock())

	ok, _ := fw.Allow("a")
	assert.True(t, ok)
	ok, _ = fw.Allow("a")
	assert.False(t, ok)

	ok, _ = fw.Allow("b")
	assert.True(t, ok)
}

func TestFixedWindow_ResetsAfterPeriod(t *testing.T) {
	clock := newStepClock()
	fw := NewFixedWindow(2, 15*time.Minute, clock)

	fw.Allow("a")
	fw.Allow("a")
	ok, _ := fw.Allow("a")
	assert.False(t, ok)

	clock.Advance(15 * time.Minute)
	ok, _ = fw.Allow("a")
	assert.True(t, ok)
}

func TestFixedWindow_Cleanup(t *testing.T) {
	clock := newStepClock()
	fw := NewFixedWindow(5, time.Minute, clock)

	fw.Allow("old")
	clock.Advance(30 * time.Second)
	fw.Allow("new")

	assert.Equal(t, 1, fw.Cleanup(clock.Now().Add(30*time.Second)))
	assert.Equal(t, 1, fw.Len())
}

func TestFixedWindow_Concurrent(t *testing.T) {
	fw := NewFixedWindow(50, time.Hour, newStepClock())

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if ok, _ := fw.Allow(fmt.Sprintf("k%d", i%2)); ok {
				allowed.Add(1)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(100), allowed.Load())
}
