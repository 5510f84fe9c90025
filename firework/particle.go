package firework

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Particle is a single decaying element of an explosion
// Lifetime is its alpha: once alpha reaches zero it is dead and reaped
type Particle struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Color  colorful.Color
	Shape  Shape
	Motion Motion
	Trail  Trail

	// Spiral state, used only by MotionSpiral
	spiralRadius float64
	spiralAngle  float64
	spiralSpeed  float64

	alpha float64
	decay float64

	angle float64 // star/heart orientation
	spin  float64

	size float64
	glow float64
}

// NewParticle creates a ballistic particle at pos with randomized velocity, decay, size and spin
func NewParticle(rng *rand.Rand, pos vmath.Vec2, c colorful.Color, shape Shape) *Particle {
	size := randRange(rng, parameter.ParticleSizeMin, parameter.ParticleSizeMax)
	return &Particle{
		Pos:    pos,
		Vel:    randomSpread(rng),
		Color:  c,
		Shape:  shape,
		Motion: MotionBallistic,
		Trail:  NewTrail(parameter.ParticleTrailLength),
		alpha:  1,
		decay:  randRange(rng, parameter.ParticleDecayMin, parameter.ParticleDecayMax),
		angle:  rng.Float64() * 2 * math.Pi,
		spin:   randRange(rng, -parameter.ParticleSpinMax, parameter.ParticleSpinMax),
		size:   size,
		glow:   size * parameter.ParticleGlowFactor,
	}
}

// Advance moves the particle one tick and fades it by its decay rate
func (p *Particle) Advance() {
	p.angle += p.spin
	p.Trail.Push(p.Pos)

	switch p.Motion {
	case MotionBallistic:
		p.Vel.Y += parameter.Gravity
		p.Pos = vmath.V2Add(p.Pos, p.Vel)
	case MotionRingDamped:
		p.Vel.Y += parameter.Gravity
		p.Pos = vmath.V2Add(p.Pos, p.Vel)
		p.Vel = vmath.V2Scale(p.Vel, parameter.RingDrag)
	case MotionSpiral:
		p.Pos = vmath.V2Add(p.Pos, vmath.V2FromAngle(p.spiralAngle, p.spiralRadius*parameter.SpiralStepScale))
		p.spiralAngle += p.spiralSpeed
		p.spiralRadius *= parameter.SpiralShrink
	case MotionStatic:
	}

	p.alpha -= p.decay
	if p.alpha < 0 {
		p.alpha = 0
	}
}

// IsAlive reports whether the particle still has lifetime left
func (p *Particle) IsAlive() bool {
	return p.alpha > 0
}

func (p *Particle) Alpha() float64      { return p.alpha }
func (p *Particle) Decay() float64      { return p.decay }
func (p *Particle) Size() float64       { return p.size }
func (p *Particle) GlowRadius() float64 { return p.glow }
func (p *Particle) Angle() float64      { return p.angle }

// Spiral returns radius, angle and angular speed of the spiral state
func (p *Particle) Spiral() (radius, angle, speed float64) {
	return p.spiralRadius, p.spiralAngle, p.spiralSpeed
}

// Render draws glow, fading trail and the current shape; dead particles draw nothing
func (p *Particle) Render(s render.Surface) {
	if !p.IsAlive() {
		return
	}
	base := render.Opaque(p.Color)
	s.FillGlow(p.Pos, p.glow, base.WithAlpha(p.alpha*parameter.GlowAlpha))

	n := p.Trail.Len()
	for i := 1; i < n; i++ {
		a := p.alpha * float64(i) / float64(n) * parameter.ParticleTrailAlpha
		p.renderShape(s, p.Trail.At(i), base.WithAlpha(a))
	}

	p.renderShape(s, p.Pos, base.WithAlpha(p.alpha))
}

func (p *Particle) renderShape(s render.Surface, at vmath.Vec2, c render.Color) {
	switch p.Shape {
	case ShapeStar:
		s.FillPath(vmath.Star(at, p.size*parameter.ParticleShapeScale, p.angle), c)
	case ShapeHeart:
		s.FillPath(vmath.Heart(at, p.size*parameter.ParticleShapeScale, p.angle), c)
	default:
		s.FillCircle(at, p.size, c)
	}
}

// randomSpread returns a velocity with each axis uniform in [-spread/2, spread/2)
func randomSpread(rng *rand.Rand) vmath.Vec2 {
	return vmath.Vec2{
		X: (rng.Float64() - 0.5) * parameter.ParticleSpread,
		Y: (rng.Float64() - 0.5) * parameter.ParticleSpread,
	}
}

func randRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
