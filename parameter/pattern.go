package parameter

// Explosion pattern sizes
const (
	// DefaultBurstMin/Max bound the default pattern particle count, max exclusive
	DefaultBurstMin = 100
	DefaultBurstMax = 150

	// RingBurstCount particles spaced evenly around the ring
	RingBurstCount = 180
	// RingBurstSpeed is the exact initial speed of every ring particle
	RingBurstSpeed = 8.0

	// SpiralBurstCount particles, one per arm angle
	SpiralBurstCount = 100
	// SpiralRadiusMin/Max bound the initial spiral radius
	SpiralRadiusMin = 30.0
	SpiralRadiusMax = 60.0
	// SpiralSpeedMin/Max bound the per-tick spiral angle increment
	SpiralSpeedMin = 0.08
	SpiralSpeedMax = 0.12

	// DoubleInnerCount and DoubleOuterCount make up the double pattern
	DoubleInnerCount = 50
	DoubleOuterCount = 100
	// DoubleInnerScale shrinks the inner population's velocity
	DoubleInnerScale = 0.5

	// MaxPatternRerolls caps how often a composite-random draw may land on itself
	// before falling back to a concrete-only draw
	MaxPatternRerolls = 2
)

// Spawn policy
const (
	// SpawnChance is the per-tick probability of an automatic launch
	SpawnChance = 0.05

	// TargetBandTop and TargetBandSpan place automatic targets in [0.2h, 0.7h]
	TargetBandTop  = 0.2
	TargetBandSpan = 0.5

	// MaxParticles caps the live particle population, 0 disables the cap
	MaxParticles = 8000
)

// Explosion sound pitch
const (
	ExplosionFrequency       = 150.0
	ExplosionFrequencyDouble = 200.0
)

// Flash is the render-only burst of light at each detonation
const (
	FlashRadius = 80.0
	FlashAlpha  = 0.8
	FlashFrames = 6
)
