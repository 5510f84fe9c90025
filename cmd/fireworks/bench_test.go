package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lixenwraith/fireworks/config"
)

// TestRunBenchDeterministic verifies a seeded run reproduces its counts
func TestRunBenchDeterministic(t *testing.T) {
	c := config.Default()
	c.SpawnChance = 0.5
	opts := benchOptions{Ticks: 300, Seed: 7, Cols: 80, Rows: 24}

	a := runBench(c, opts)
	b := runBench(c, opts)

	if a.Stats != b.Stats {
		t.Errorf("Expected identical stats for the same seed, got %+v and %+v", a.Stats, b.Stats)
	}
	if a.Stats.Ticks != 300 {
		t.Errorf("Expected 300 ticks, got %d", a.Stats.Ticks)
	}
	if a.Stats.Launched == 0 {
		t.Error("Expected launches at spawn chance 0.5")
	}
	if a.PeakParticles > c.MaxParticles {
		t.Errorf("Expected peak at most %d, got %d", c.MaxParticles, a.PeakParticles)
	}
}

// TestRunBenchRender verifies rasterizing does not change the simulation
func TestRunBenchRender(t *testing.T) {
	c := config.Default()
	c.SpawnChance = 0.3
	opts := benchOptions{Ticks: 200, Seed: 3, Cols: 40, Rows: 12}

	plain := runBench(c, opts)
	opts.Render = true
	drawn := runBench(c, opts)

	if plain.Stats != drawn.Stats {
		t.Errorf("Expected rendering to leave stats unchanged, got %+v and %+v", plain.Stats, drawn.Stats)
	}
}

// TestRunBenchNoAutoLaunch verifies a zero spawn chance leaves the field empty
func TestRunBenchNoAutoLaunch(t *testing.T) {
	c := config.Default()
	c.SpawnChance = 0

	res := runBench(c, benchOptions{Ticks: 100, Seed: 1, Cols: 10, Rows: 10})
	if res.Stats.Launched != 0 || res.PeakParticles != 0 {
		t.Errorf("Expected no activity, got %d launched, %d peak", res.Stats.Launched, res.PeakParticles)
	}
}

// TestWriteBench verifies the report lists every counter
func TestWriteBench(t *testing.T) {
	var buf bytes.Buffer
	writeBench(&buf, benchResult{})

	out := buf.String()
	for _, key := range []string{"ticks:", "elapsed:", "launched:", "detonated:", "spawned:", "reaped:", "dropped:", "peak:"} {
		if !strings.Contains(out, key) {
			t.Errorf("Expected %q in report, got:\n%s", key, out)
		}
	}
}
