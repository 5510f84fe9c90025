// Package firework is the fireworks simulation core: projectiles, particles,
// explosion patterns and the field that owns and advances them.
package firework

import (
	"log/slog"
	"math/rand/v2"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Config holds the field's spawn and population policy
type Config struct {
	// SpawnChance is the per-tick probability of an automatic launch
	SpawnChance float64
	// MaxParticles caps live particles; surplus from a burst is dropped, 0 disables
	MaxParticles int
	// AutoLaunch enables the probabilistic spawn policy
	AutoLaunch bool
	// Patterns restricts launches to the listed patterns, nil draws from all
	Patterns []Pattern
}

func DefaultConfig() Config {
	return Config{
		SpawnChance:  parameter.SpawnChance,
		MaxParticles: parameter.MaxParticles,
		AutoLaunch:   true,
	}
}

// Stats are cumulative counters since creation or the last Clear
type Stats struct {
	Ticks            uint64
	Launched         uint64
	Detonated        uint64
	ParticlesSpawned uint64
	ParticlesReaped  uint64
	ParticlesDropped uint64
	AudioFailures    uint64
}

// Field owns the live projectiles and particles and advances them once per tick
// Not safe for concurrent use: exactly one goroutine drives a Field
type Field struct {
	cfg      Config
	viewport Viewport
	audio    Audio
	rng      *rand.Rand
	log      *slog.Logger

	projectiles []*Projectile
	particles   []*Particle
	flashes     []Flash

	stats Stats
}

// Option configures a Field
type Option func(*Field)

func WithConfig(cfg Config) Option {
	return func(f *Field) { f.cfg = cfg }
}

// WithAudio sets the detonation sound player, nil disables sound
func WithAudio(a Audio) Option {
	return func(f *Field) { f.audio = a }
}

// WithRand replaces the randomness source
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) {
		if rng != nil {
			f.rng = rng
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(f *Field) {
		if l != nil {
			f.log = l
		}
	}
}

// NewField creates an empty field reading dimensions from viewport
func NewField(viewport Viewport, opts ...Option) *Field {
	f := &Field{
		cfg:      DefaultConfig(),
		viewport: viewport,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Tick advances the simulation by one frame
func (f *Field) Tick() {
	f.stats.Ticks++

	if f.cfg.AutoLaunch && f.rng.Float64() < f.cfg.SpawnChance {
		f.launchRandom()
	}

	for i := len(f.projectiles) - 1; i >= 0; i-- {
		p := f.projectiles[i]
		if p.Detonated() {
			f.removeProjectile(i)
			continue
		}
		p.Advance()
		if p.HasArrived() {
			f.detonate(p)
			f.removeProjectile(i)
		}
	}

	for i := len(f.particles) - 1; i >= 0; i-- {
		p := f.particles[i]
		p.Advance()
		if !p.IsAlive() {
			f.removeParticle(i)
			f.stats.ParticlesReaped++
		}
	}

	for i := len(f.flashes) - 1; i >= 0; i-- {
		f.flashes[i].age()
		if f.flashes[i].Expired() {
			last := len(f.flashes) - 1
			f.flashes[i] = f.flashes[last]
			f.flashes = f.flashes[:last]
		}
	}
}

// Launch enqueues a projectile from a random point on the bottom edge toward target
func (f *Field) Launch(target vmath.Vec2) *Projectile {
	w, h := f.viewport.Size()
	origin := vmath.V2(f.rng.Float64()*w, h)
	p := NewProjectile(origin, target, RandomColor(f.rng), f.pickPattern())
	f.Spawn(p)
	return p
}

// Spawn enqueues an explicitly built projectile
func (f *Field) Spawn(p *Projectile) {
	if p == nil {
		return
	}
	f.projectiles = append(f.projectiles, p)
	f.stats.Launched++
	f.log.Debug("launch",
		"id", p.ID,
		"pattern", p.Pattern.String(),
		"target_x", p.Target.X,
		"target_y", p.Target.Y,
	)
}

// launchRandom applies the automatic spawn policy: bottom-edge origin, target in the upper-middle band
func (f *Field) launchRandom() {
	w, h := f.viewport.Size()
	target := vmath.V2(
		f.rng.Float64()*w,
		h*parameter.TargetBandTop+f.rng.Float64()*h*parameter.TargetBandSpan,
	)
	f.Launch(target)
}

func (f *Field) pickPattern() Pattern {
	if n := len(f.cfg.Patterns); n > 0 {
		return f.cfg.Patterns[f.rng.IntN(n)]
	}
	return randomPattern(f.rng)
}

// detonate runs the single detonation path: sound, flash, particle batch
func (f *Field) detonate(p *Projectile) {
	b := p.Detonate(f.rng)
	if b == nil {
		return
	}
	f.stats.Detonated++

	if f.audio != nil {
		if err := f.audio.PlayExplosion(b.Frequency); err != nil {
			f.stats.AudioFailures++
			f.log.Debug("explosion sound failed", "id", p.ID, "error", err)
		}
	}

	f.flashes = append(f.flashes, NewFlash(b.At))
	added := f.addParticles(b.Particles)

	f.log.Debug("detonate",
		"id", p.ID,
		"pattern", b.Pattern.String(),
		"shape", b.Shape.String(),
		"particles", added,
		"live", len(f.particles),
	)
}

// addParticles appends a batch, truncating at MaxParticles
func (f *Field) addParticles(batch []*Particle) int {
	if limit := f.cfg.MaxParticles; limit > 0 {
		room := limit - len(f.particles)
		if room < 0 {
			room = 0
		}
		if len(batch) > room {
			f.stats.ParticlesDropped += uint64(len(batch) - room)
			batch = batch[:room]
		}
	}
	f.particles = append(f.particles, batch...)
	f.stats.ParticlesSpawned += uint64(len(batch))
	return len(batch)
}

func (f *Field) removeProjectile(i int) {
	last := len(f.projectiles) - 1
	f.projectiles[i] = f.projectiles[last]
	f.projectiles[last] = nil
	f.projectiles = f.projectiles[:last]
}

func (f *Field) removeParticle(i int) {
	last := len(f.particles) - 1
	f.particles[i] = f.particles[last]
	f.particles[last] = nil
	f.particles = f.particles[:last]
}

// Clear drops every live entity and resets stats
func (f *Field) Clear() {
	clear(f.projectiles)
	clear(f.particles)
	f.projectiles = f.projectiles[:0]
	f.particles = f.particles[:0]
	f.flashes = f.flashes[:0]
	f.stats = Stats{}
}

// SetPatterns restricts future launches, no arguments restores the full draw
func (f *Field) SetPatterns(ps ...Pattern) {
	f.cfg.Patterns = append([]Pattern(nil), ps...)
}

func (f *Field) SetAutoLaunch(on bool) {
	f.cfg.AutoLaunch = on
}

func (f *Field) Config() Config {
	return f.cfg
}

// Projectiles returns the live projectiles; valid until the next Tick, Launch or Clear
func (f *Field) Projectiles() []*Projectile {
	return f.projectiles
}

// Particles returns the live particles; valid until the next Tick or Clear
func (f *Field) Particles() []*Particle {
	return f.particles
}

// Flashes returns active detonation flashes
func (f *Field) Flashes() []Flash {
	return f.flashes
}

func (f *Field) Stats() Stats {
	return f.stats
}

// Render draws flashes, projectiles, then particles
func (f *Field) Render(s render.Surface) {
	for _, fl := range f.flashes {
		fl.Render(s)
	}
	for _, p := range f.projectiles {
		p.Render(s)
	}
	for _, p := range f.particles {
		p.Render(s)
	}
}
