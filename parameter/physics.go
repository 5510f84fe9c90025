package parameter

// Per-tick physics. All values are in world units (pixels) per tick; the
// simulation has no delta time, one tick is one rendered frame.
const (
	// Gravity is the downward acceleration added to particle velocity each tick
	Gravity = 0.05

	// RingDrag is the velocity multiplier applied each tick to ring-damped particles
	RingDrag = 0.98

	// SpiralStepScale converts spiral radius to per-tick displacement
	SpiralStepScale = 0.1

	// SpiralShrink is the per-tick spiral radius multiplier (logarithmic inward spiral)
	SpiralShrink = 0.99

	// ProjectileSpeed is the constant launch speed along the origin→target bearing
	ProjectileSpeed = 8.0

	// ArrivalThreshold is the distance to target under which a projectile detonates
	ArrivalThreshold = 15.0
)
