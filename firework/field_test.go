package firework_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/firework/mocks"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

var shellColor = colorful.Color{R: 0.2, G: 0.8, B: 1}

func quietConfig() firework.Config {
	cfg := firework.DefaultConfig()
	cfg.AutoLaunch = false
	cfg.MaxParticles = 0
	return cfg
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// TestFieldEndToEndDefault verifies a default shell from (0,600) to (0,0) yields one batch
func TestFieldEndToEndDefault(t *testing.T) {
	for seed := range uint64(20) {
		f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
			firework.WithConfig(quietConfig()), firework.WithRand(seeded(seed)))

		p := firework.NewProjectile(vmath.V2(0, 600), vmath.V2(0, 0), shellColor, firework.PatternDefault)
		f.Spawn(p)

		ticks := 0
		for len(f.Projectiles()) > 0 {
			f.Tick()
			ticks++
			if ticks > 100 {
				t.Fatal("Expected arrival within 100 ticks")
			}
		}

		if d := vmath.V2Dist(p.Pos, p.Target); d >= 15 {
			t.Errorf("Expected detonation within 15 units, got %v", d)
		}
		if n := len(f.Particles()); n < 100 || n > 149 {
			t.Errorf("seed %d: expected 100..149 particles, got %d", seed, n)
		}
		if !p.Detonated() {
			t.Error("Expected projectile detonated")
		}
		st := f.Stats()
		if st.Launched != 1 || st.Detonated != 1 {
			t.Errorf("Expected 1 launch and 1 detonation, got %+v", st)
		}
	}
}

// TestFieldDetonatesOnce verifies arrival on many ticks still yields one batch
func TestFieldDetonatesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudio(ctrl)
	audio.EXPECT().PlayExplosion(200.0).Return(nil).Times(1)

	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(quietConfig()), firework.WithRand(seeded(3)), firework.WithAudio(audio))

	// target equals origin: arrived on every evaluation
	p := firework.NewProjectile(vmath.V2(100, 100), vmath.V2(100, 100), shellColor, firework.PatternDouble)
	f.Spawn(p)
	f.Tick()

	if got := len(f.Particles()); got != 150 {
		t.Fatalf("Expected 150 particles after detonation, got %d", got)
	}

	// re-spawning a spent projectile must not produce another batch
	f.Spawn(p)
	for range 3 {
		f.Tick()
	}
	if got := f.Stats().ParticlesSpawned; got != 150 {
		t.Errorf("Expected 150 particles spawned in total, got %d", got)
	}
	if len(f.Projectiles()) != 0 {
		t.Errorf("Expected spent projectile removed, got %d live", len(f.Projectiles()))
	}
}

// TestFieldAudioFailureIgnored verifies audio errors do not change simulation state
func TestFieldAudioFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudio(ctrl)
	audio.EXPECT().PlayExplosion(gomock.Any()).Return(errors.New("device busy")).AnyTimes()

	run := func(opts ...firework.Option) firework.Stats {
		base := []firework.Option{firework.WithConfig(quietConfig()), firework.WithRand(seeded(42))}
		f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600}, append(base, opts...)...)
		f.Spawn(firework.NewProjectile(vmath.V2(0, 0), vmath.V2(0, 0), shellColor, firework.PatternRing))
		f.Tick()
		return f.Stats()
	}

	withFailure := run(firework.WithAudio(audio))
	silent := run()

	if withFailure.ParticlesSpawned != silent.ParticlesSpawned {
		t.Errorf("Expected identical particle count, got %d vs %d", withFailure.ParticlesSpawned, silent.ParticlesSpawned)
	}
	if withFailure.AudioFailures != 1 {
		t.Errorf("Expected 1 audio failure counted, got %d", withFailure.AudioFailures)
	}
}

// TestFieldReapsDeadParticles verifies removal within one tick of alpha reaching zero
func TestFieldReapsDeadParticles(t *testing.T) {
	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(quietConfig()), firework.WithRand(seeded(6)))
	f.Spawn(firework.NewProjectile(vmath.V2(0, 0), vmath.V2(0, 0), shellColor, firework.PatternSpiral))
	f.Tick()

	prev := make(map[*firework.Particle]float64)
	for tick := 0; len(f.Particles()) > 0; tick++ {
		if tick > 500 {
			t.Fatal("Expected all particles reaped within 500 ticks")
		}
		for _, p := range f.Particles() {
			if !p.IsAlive() {
				t.Fatalf("Expected no dead particle in live set, alpha %v", p.Alpha())
			}
			if a, ok := prev[p]; ok && p.Alpha() > a {
				t.Fatalf("Expected non-increasing alpha, %v -> %v", a, p.Alpha())
			}
			prev[p] = p.Alpha()
		}
		f.Tick()
	}

	st := f.Stats()
	if st.ParticlesReaped != st.ParticlesSpawned {
		t.Errorf("Expected reaped %d == spawned %d", st.ParticlesReaped, st.ParticlesSpawned)
	}
}

// TestFieldAutoLaunchBand verifies spawned shells start on the bottom edge aiming into the band
func TestFieldAutoLaunchBand(t *testing.T) {
	cfg := quietConfig()
	cfg.AutoLaunch = true
	cfg.SpawnChance = 1

	ctrl := gomock.NewController(t)
	vp := mocks.NewMockViewport(ctrl)
	vp.EXPECT().Size().Return(1000.0, 500.0).AnyTimes()

	f := firework.NewField(vp, firework.WithConfig(cfg), firework.WithRand(seeded(10)))
	for range 30 {
		f.Tick()
		ps := f.Projectiles()
		if len(ps) == 0 {
			continue
		}
		p := ps[len(ps)-1]
		if p.Origin.Y != 500 || p.Origin.X < 0 || p.Origin.X >= 1000 {
			t.Errorf("Expected origin on bottom edge, got %v", p.Origin)
		}
		if p.Target.Y < 100 || p.Target.Y >= 350 {
			t.Errorf("Expected target y in [100,350), got %v", p.Target.Y)
		}
	}
	if f.Stats().Launched != 30 {
		t.Errorf("Expected 30 launches at spawn chance 1, got %d", f.Stats().Launched)
	}
}

// TestFieldViewportReadOnResize verifies dimensions are not cached between launches
func TestFieldViewportReadOnResize(t *testing.T) {
	ctrl := gomock.NewController(t)
	vp := mocks.NewMockViewport(ctrl)
	gomock.InOrder(
		vp.EXPECT().Size().Return(100.0, 100.0),
		vp.EXPECT().Size().Return(2000.0, 900.0),
	)

	f := firework.NewField(vp, firework.WithConfig(quietConfig()), firework.WithRand(seeded(2)))
	f.Launch(vmath.V2(10, 10))
	p := f.Launch(vmath.V2(10, 10))

	if p.Origin.Y != 900 {
		t.Errorf("Expected origin y from resized viewport 900, got %v", p.Origin.Y)
	}
}

// TestFieldLaunchUsesOverride verifies the pattern override restricts launches
func TestFieldLaunchUsesOverride(t *testing.T) {
	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(quietConfig()), firework.WithRand(seeded(12)))
	f.SetPatterns(firework.PatternSpiral)

	for range 20 {
		p := f.Launch(vmath.V2(400, 200))
		if p.Pattern != firework.PatternSpiral {
			t.Fatalf("Expected spiral override, got %s", p.Pattern)
		}
		if p.Target != vmath.V2(400, 200) {
			t.Fatalf("Expected explicit target kept, got %v", p.Target)
		}
	}

	f.SetPatterns()
	seen := make(map[firework.Pattern]bool)
	for range 200 {
		seen[f.Launch(vmath.V2(1, 1)).Pattern] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected all 5 patterns drawn without override, got %d", len(seen))
	}
}

// TestFieldParticleCap verifies surplus particles are dropped and counted
func TestFieldParticleCap(t *testing.T) {
	cfg := quietConfig()
	cfg.MaxParticles = 200

	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(cfg), firework.WithRand(seeded(1)))
	for range 2 {
		f.Spawn(firework.NewProjectile(vmath.V2(0, 0), vmath.V2(0, 0), shellColor, firework.PatternRing))
	}
	f.Tick()

	if got := len(f.Particles()); got != 200 {
		t.Errorf("Expected particle count capped at 200, got %d", got)
	}
	if got := f.Stats().ParticlesDropped; got != 160 {
		t.Errorf("Expected 160 dropped, got %d", got)
	}
}

// TestFieldClear verifies Clear drops all entities and counters
func TestFieldClear(t *testing.T) {
	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(quietConfig()), firework.WithRand(seeded(1)))
	f.Spawn(firework.NewProjectile(vmath.V2(0, 0), vmath.V2(0, 0), shellColor, firework.PatternDefault))
	f.Launch(vmath.V2(0, 0))
	f.Tick()

	f.Clear()

	if len(f.Projectiles())+len(f.Particles())+len(f.Flashes()) != 0 {
		t.Error("Expected empty field after Clear")
	}
	if f.Stats() != (firework.Stats{}) {
		t.Errorf("Expected zero stats, got %+v", f.Stats())
	}
}

// TestFieldFlashLifecycle verifies a flash per detonation that expires
func TestFieldFlashLifecycle(t *testing.T) {
	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(quietConfig()), firework.WithRand(seeded(1)))
	f.Spawn(firework.NewProjectile(vmath.V2(0, 0), vmath.V2(0, 0), shellColor, firework.PatternRing))
	f.Tick()

	if len(f.Flashes()) != 1 {
		t.Fatalf("Expected 1 flash, got %d", len(f.Flashes()))
	}
	for range 10 {
		f.Tick()
	}
	if len(f.Flashes()) != 0 {
		t.Errorf("Expected flash expired, got %d", len(f.Flashes()))
	}
}

// TestFieldRenderOrder verifies flashes render before projectiles and particles
func TestFieldRenderOrder(t *testing.T) {
	f := firework.NewField(firework.FixedViewport{Width: 800, Height: 600},
		firework.WithConfig(quietConfig()), firework.WithRand(seeded(1)))
	f.Spawn(firework.NewProjectile(vmath.V2(0, 0), vmath.V2(0, 0), shellColor, firework.PatternRing))
	f.Tick()
	f.Launch(vmath.V2(0, 0))

	rec := render.NewRecorder()
	f.Render(rec)

	if len(rec.Ops) == 0 {
		t.Fatal("Expected draw calls")
	}
	first := rec.Ops[0]
	if first.Kind != render.OpGlow || first.Color.RGB != render.White.RGB {
		t.Errorf("Expected white flash glow first, got %+v", first)
	}

	empty := firework.NewField(firework.FixedViewport{Width: 800, Height: 600}, firework.WithConfig(quietConfig()))
	rec.Reset()
	empty.Render(rec)
	if len(rec.Ops) != 0 {
		t.Errorf("Expected empty field to draw nothing, got %d ops", len(rec.Ops))
	}
}
