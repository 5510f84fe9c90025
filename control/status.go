package control

import (
	"fmt"
	"time"

	"github.com/lixenwraith/fireworks/firework"
)

// Status is the HUD content
type Status struct {
	Stats      firework.Stats
	Live       int // live particles
	Shells     int // live projectiles
	Paused     bool
	Elapsed    time.Duration // run time excluding pauses
	Muted      bool
	AutoLaunch bool
	Override   string // empty when all patterns are drawn
}

// String formats the status line
func (s Status) String() string {
	out := fmt.Sprintf(" particles %d  shells %d  launched %d  tick %d  time %s",
		s.Live, s.Shells, s.Stats.Launched, s.Stats.Ticks, s.Elapsed.Truncate(time.Second))
	if s.Override != "" {
		out += "  pattern " + s.Override
	}
	if !s.AutoLaunch {
		out += "  manual"
	}
	if s.Muted {
		out += "  muted"
	}
	if s.Paused {
		out += "  PAUSED"
	}
	return out + " "
}
