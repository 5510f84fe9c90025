package control

import (
	"time"

	"github.com/lixenwraith/fireworks/engine"
)

// Gate is a Pauser for frontends whose toolkit owns the frame loop
// The zero Gate works but reports no elapsed time
type Gate struct {
	paused bool
	step   bool
	clock  *engine.Clock
}

// NewGate creates a running gate; a nil now uses time.Now
func NewGate(now func() time.Time) *Gate {
	return &Gate{clock: engine.NewClock(now)}
}

func (g *Gate) Toggle() bool {
	g.paused = !g.paused
	g.step = false
	switch {
	case g.clock == nil:
	case g.paused:
		g.clock.Pause()
	default:
		g.clock.Resume()
	}
	return g.paused
}

// Step allows one tick while paused
func (g *Gate) Step() {
	if g.paused {
		g.step = true
	}
}

func (g *Gate) IsPaused() bool { return g.paused }

// Elapsed returns running time excluding pauses
func (g *Gate) Elapsed() time.Duration {
	if g.clock == nil {
		return 0
	}
	return g.clock.Elapsed()
}

// Allow reports whether the simulation may tick this frame, consuming a pending step
func (g *Gate) Allow() bool {
	if !g.paused {
		return true
	}
	if g.step {
		g.step = false
		return true
	}
	return false
}
