package render

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// Surface is the drawing collaborator the simulation renders onto
// Implementations own their pixels; callers never retain a Surface between frames
type Surface interface {
	// FillCircle fills a disc
	FillCircle(center vmath.Vec2, radius float64, c Color)

	// FillGlow fills a radial gradient: c at stops 0 and GlowCoreStop, transparent at radius
	FillGlow(center vmath.Vec2, radius float64, c Color)

	// FillPath fills a closed outline with the even-odd rule
	FillPath(p *vmath.Path, c Color)
}

// Fader is optionally implemented by surfaces that keep the previous frame
// FadeFrame darkens existing pixels by amount in [0,1] instead of clearing them
type Fader interface {
	FadeFrame(amount float64)
}

// BeginFrame fades the surface when supported, leaving motion blur behind moving entities
func BeginFrame(s Surface, amount float64) {
	if f, ok := s.(Fader); ok {
		f.FadeFrame(amount)
	}
}
