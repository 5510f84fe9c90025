package parameter

// Particle spawn ranges, drawn once per particle at creation
const (
	// ParticleSpread is the per-axis initial velocity range, centered on zero
	ParticleSpread = 8.0

	// ParticleDecayMin/Max bound the per-tick alpha decrement
	ParticleDecayMin = 0.008
	ParticleDecayMax = 0.016

	// ParticleSizeMin/Max bound the particle radius
	ParticleSizeMin = 2.0
	ParticleSizeMax = 6.0

	// ParticleGlowFactor scales size into glow radius
	ParticleGlowFactor = 6.0

	// ParticleSpinMax is the absolute bound of per-tick rotation for star/heart shapes
	ParticleSpinMax = 0.1

	// ParticleShapeScale scales size into star/heart outline size
	ParticleShapeScale = 2.0
)

// Trail capacities
const (
	ParticleTrailLength   = 5
	ProjectileTrailLength = 15
)
