package engine

import (
	"sync"
	"time"
)

// Clock measures simulation time, frozen while paused
type Clock struct {
	mu sync.Mutex

	now         func() time.Time
	start       time.Time
	pausedAt    time.Time // zero when running
	pausedTotal time.Duration
}

// NewClock creates a running clock; a nil now uses time.Now
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Elapsed returns running time since creation excluding pauses
func (c *Clock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	end := c.now()
	if !c.pausedAt.IsZero() {
		end = c.pausedAt
	}
	return end.Sub(c.start) - c.pausedTotal
}

// Pause freezes the clock; repeated calls are no-ops
func (c *Clock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pausedAt.IsZero() {
		c.pausedAt = c.now()
	}
}

// Resume continues the clock, accounting the pause duration
func (c *Clock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.pausedAt.IsZero() {
		c.pausedTotal += c.now().Sub(c.pausedAt)
		c.pausedAt = time.Time{}
	}
}
