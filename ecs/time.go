package ecs

import (
	"sync"
	"time"
)

// TimeSource yields monotonic instants for timers and the race clock.
type TimeSource interface {
	Now() time.Time
}

// WallClock reads the real monotonic clock.
type WallClock struct{}

func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. The race session advances it by the
// fixed tick so timers follow simulated time; tests drive it directly.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Advance moves the clock forward. Negative durations are ignored so the
// clock can never run backward.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
