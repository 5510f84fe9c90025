package firework

import (
	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Flash is the render-only burst of light at a detonation point
// It is not a simulation entity and never interacts with particles
type Flash struct {
	At        vmath.Vec2
	Radius    float64
	Alpha     float64
	frames    int
	remaining int
}

func NewFlash(at vmath.Vec2) Flash {
	return Flash{
		At:        at,
		Radius:    parameter.FlashRadius,
		Alpha:     parameter.FlashAlpha,
		frames:    parameter.FlashFrames,
		remaining: parameter.FlashFrames,
	}
}

// Intensity is the current alpha, fading linearly over the flash lifetime
func (f Flash) Intensity() float64 {
	if f.frames <= 0 || f.remaining <= 0 {
		return 0
	}
	return f.Alpha * float64(f.remaining) / float64(f.frames)
}

// Expired reports whether the flash has no frames left
func (f Flash) Expired() bool {
	return f.remaining <= 0
}

func (f *Flash) age() {
	f.remaining--
}

func (f Flash) Render(s render.Surface) {
	if a := f.Intensity(); a > 0 {
		s.FillGlow(f.At, f.Radius, render.White.WithAlpha(a))
	}
}
