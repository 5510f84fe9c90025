// Package control maps user input to field actions shared by every frontend
package control

import (
	"time"

	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/vmath"
)

// Pauser gates simulation steps and reports pause-excluded run time
// Implemented by engine.Loop and Gate
type Pauser interface {
	Toggle() bool
	Step()
	IsPaused() bool
	Elapsed() time.Duration
}

// Muter toggles sound output; implemented by audio.SoundManager
type Muter interface {
	ToggleMute() bool
}

// Controller applies key and pointer input to a field
// Not safe for concurrent use; call it from the goroutine that ticks the field
type Controller struct {
	field  *firework.Field
	pauser Pauser
	muter  Muter
	quit   func()

	showHUD  bool
	muted    bool
	override string
}

// New creates a controller; muter and quit may be nil
func New(field *firework.Field, pauser Pauser, muter Muter, quit func()) *Controller {
	c := &Controller{
		field:   field,
		pauser:  pauser,
		muter:   muter,
		quit:    quit,
		showHUD: true,
	}
	if ps := field.Config().Patterns; len(ps) == 1 {
		c.override = ps[0].String()
	}
	return c
}

// Click launches a projectile toward target
func (c *Controller) Click(target vmath.Vec2) *firework.Projectile {
	return c.field.Launch(target)
}

// Quit invokes the quit callback
func (c *Controller) Quit() {
	if c.quit != nil {
		c.quit()
	}
}

// Rune applies the binding for r and reports whether r is bound
//
//	q quit, space pause, . step, c clear, a auto-launch, h HUD, m mute,
//	0 all patterns, 1-5 restrict to one pattern
func (c *Controller) Rune(r rune) bool {
	switch r {
	case 'q':
		c.Quit()
	case ' ':
		c.pauser.Toggle()
	case '.':
		c.pauser.Step()
	case 'c':
		c.field.Clear()
	case 'a':
		c.field.SetAutoLaunch(!c.field.Config().AutoLaunch)
	case 'h':
		c.showHUD = !c.showHUD
	case 'm':
		if c.muter != nil {
			c.muted = c.muter.ToggleMute()
		}
	case '0':
		c.field.SetPatterns()
		c.override = ""
	case '1', '2', '3', '4', '5':
		p := firework.Patterns()[r-'1']
		c.field.SetPatterns(p)
		c.override = p.String()
	default:
		return false
	}
	return true
}

func (c *Controller) ShowHUD() bool { return c.showHUD }

// Status snapshots the HUD state
func (c *Controller) Status() Status {
	return Status{
		Stats:      c.field.Stats(),
		Live:       len(c.field.Particles()),
		Shells:     len(c.field.Projectiles()),
		Paused:     c.pauser.IsPaused(),
		Elapsed:    c.pauser.Elapsed(),
		Muted:      c.muted,
		AutoLaunch: c.field.Config().AutoLaunch,
		Override:   c.override,
	}
}
