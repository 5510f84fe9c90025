package firework

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/vmath"
)

// Burst is the outcome of one detonation
type Burst struct {
	Pattern   Pattern // resolved, never PatternRandom
	At        vmath.Vec2
	Color     colorful.Color
	Shape     Shape
	Particles []*Particle
	Frequency float64
}

// explodeFunc populates a particle batch for one concrete pattern
type explodeFunc func(rng *rand.Rand, at vmath.Vec2, c colorful.Color, shape Shape) []*Particle

var explosions = [PatternRandom]explodeFunc{
	PatternDefault: explodeDefault,
	PatternRing:    explodeRing,
	PatternSpiral:  explodeSpiral,
	PatternDouble:  explodeDouble,
}

// explode dispatches to the strategy for a concrete pattern
func explode(rng *rand.Rand, p Pattern, at vmath.Vec2, c colorful.Color, shape Shape) []*Particle {
	if !p.Concrete() {
		p = resolvePattern(rng, p)
	}
	return explosions[p](rng, at, c, shape)
}

// explodeDefault scatters 100-149 particles with isotropic random velocity
func explodeDefault(rng *rand.Rand, at vmath.Vec2, c colorful.Color, shape Shape) []*Particle {
	n := parameter.DefaultBurstMin + rng.IntN(parameter.DefaultBurstMax-parameter.DefaultBurstMin)
	out := make([]*Particle, n)
	for i := range out {
		out[i] = NewParticle(rng, at, c, shape)
	}
	return out
}

// explodeRing places particles at evenly spaced angles with identical speed and drag
func explodeRing(rng *rand.Rand, at vmath.Vec2, c colorful.Color, shape Shape) []*Particle {
	out := make([]*Particle, parameter.RingBurstCount)
	step := 2 * math.Pi / parameter.RingBurstCount
	for i := range out {
		p := NewParticle(rng, at, c, shape)
		p.Vel = vmath.V2FromAngle(float64(i)*step, parameter.RingBurstSpeed)
		p.Motion = MotionRingDamped
		out[i] = p
	}
	return out
}

// explodeSpiral emits disc particles whose motion is driven by spiral state alone
func explodeSpiral(rng *rand.Rand, at vmath.Vec2, c colorful.Color, _ Shape) []*Particle {
	out := make([]*Particle, parameter.SpiralBurstCount)
	step := 2 * math.Pi / parameter.SpiralBurstCount
	for i := range out {
		p := NewParticle(rng, at, c, ShapeDisc)
		p.Vel = vmath.Vec2{}
		p.Motion = MotionSpiral
		p.spiralAngle = float64(i) * step
		p.spiralRadius = randRange(rng, parameter.SpiralRadiusMin, parameter.SpiralRadiusMax)
		p.spiralSpeed = randRange(rng, parameter.SpiralSpeedMin, parameter.SpiralSpeedMax)
		out[i] = p
	}
	return out
}

// explodeDouble emits a slow inner population followed by a full-speed outer one
func explodeDouble(rng *rand.Rand, at vmath.Vec2, c colorful.Color, shape Shape) []*Particle {
	out := make([]*Particle, 0, parameter.DoubleInnerCount+parameter.DoubleOuterCount)
	for range parameter.DoubleInnerCount {
		p := NewParticle(rng, at, c, shape)
		p.Vel = vmath.V2Scale(p.Vel, parameter.DoubleInnerScale)
		out = append(out, p)
	}
	for range parameter.DoubleOuterCount {
		out = append(out, NewParticle(rng, at, c, shape))
	}
	return out
}
