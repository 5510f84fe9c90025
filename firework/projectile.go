package firework

import (
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Projectile is a shell flying in a straight line from Origin toward Target
// It detonates at most once; the field removes it in the same tick
type Projectile struct {
	ID      uuid.UUID
	Origin  vmath.Vec2
	Target  vmath.Vec2
	Pos     vmath.Vec2
	Vel     vmath.Vec2
	Color   colorful.Color
	Pattern Pattern
	Trail   Trail

	detonated bool
}

// NewProjectile aims a projectile at target with constant launch speed
// Non-finite coordinates collapse onto the origin so flight always terminates
func NewProjectile(origin, target vmath.Vec2, c colorful.Color, pattern Pattern) *Projectile {
	if !vmath.V2Finite(origin) {
		origin = vmath.Vec2{}
	}
	if !vmath.V2Finite(target) {
		target = origin
	}
	bearing := math.Atan2(target.Y-origin.Y, target.X-origin.X)
	return &Projectile{
		ID:      uuid.New(),
		Origin:  origin,
		Target:  target,
		Pos:     origin,
		Vel:     vmath.V2FromAngle(bearing, parameter.ProjectileSpeed),
		Color:   c,
		Pattern: pattern,
		Trail:   NewTrail(parameter.ProjectileTrailLength),
	}
}

// Advance records the current position and moves one tick along the bearing
func (p *Projectile) Advance() {
	p.Trail.Push(p.Pos)
	p.Pos = vmath.V2Add(p.Pos, p.Vel)
}

// HasArrived reports whether the projectile is within the arrival threshold,
// or has flown past the target along its bearing
func (p *Projectile) HasArrived() bool {
	if vmath.V2Dist(p.Pos, p.Target) < parameter.ArrivalThreshold {
		return true
	}
	return vmath.V2Dot(vmath.V2Sub(p.Target, p.Pos), p.Vel) < 0
}

func (p *Projectile) Detonated() bool {
	return p.detonated
}

// Detonate marks the projectile spent and builds its particle batch
// Returns nil when already detonated; the flag is set before any strategy runs
// A composite-random pattern is rewritten in place to the concrete pattern used
func (p *Projectile) Detonate(rng *rand.Rand) *Burst {
	if p.detonated {
		return nil
	}
	p.detonated = true

	p.Pattern = resolvePattern(rng, p.Pattern)
	shape := randomShape(rng)

	return &Burst{
		Pattern:   p.Pattern,
		At:        p.Pos,
		Color:     p.Color,
		Shape:     shape,
		Particles: explode(rng, p.Pattern, p.Pos, p.Color, shape),
		Frequency: p.Pattern.Frequency(),
	}
}

// Render draws glow, fading trail and head
func (p *Projectile) Render(s render.Surface) {
	base := render.Opaque(p.Color)
	s.FillGlow(p.Pos, parameter.ProjectileGlowRadius, base.WithAlpha(parameter.ProjectileGlowAlpha))

	n := p.Trail.Len()
	for i := 1; i < n; i++ {
		a := float64(i) / float64(n) * parameter.ProjectileTrailAlpha
		s.FillCircle(p.Trail.At(i), parameter.ProjectileTrailRadius, base.WithAlpha(a))
	}

	s.FillCircle(p.Pos, parameter.ProjectileHeadRadius, base)
}
