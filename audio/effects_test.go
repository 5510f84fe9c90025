package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/fireworks/parameter"
)

// drain streams s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// TestSweepOscillatorLength verifies the stream ends after its duration
func TestSweepOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewSweepOscillator(440, 1, 100*time.Millisecond, rate)

	samples := drain(osc)

	if len(samples) != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or not mono: %v", i, s)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestSweepOscillatorFalls verifies zero crossings thin out as pitch drops
func TestSweepOscillatorFalls(t *testing.T) {
	rate := beep.SampleRate(44100)
	samples := drain(NewSweepOscillator(2000, 20, time.Second, rate))

	crossings := func(part [][2]float64) int {
		n := 0
		for i := 1; i < len(part); i++ {
			if (part[i-1][0] < 0) != (part[i][0] < 0) {
				n++
			}
		}
		return n
	}

	q := len(samples) / 4
	first, last := crossings(samples[:q]), crossings(samples[3*q:])
	if last >= first {
		t.Errorf("Expected fewer crossings at the end, got first=%d last=%d", first, last)
	}
}

// TestSweepOscillatorInvalid verifies non-positive frequencies produce silence
func TestSweepOscillatorInvalid(t *testing.T) {
	samples := drain(NewSweepOscillator(0, 1, 10*time.Millisecond, beep.SampleRate(8000)))
	for _, s := range samples {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}

// TestExpEnvelopeRamp verifies gain starts at start and decays toward end
func TestExpEnvelopeRamp(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewExpEnvelope(constant(rate.N(time.Second)), 0.1, 0.01, time.Second, rate)

	samples := drain(env)

	if len(samples) != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", len(samples))
	}
	if math.Abs(samples[0][0]-0.1) > 1e-12 {
		t.Errorf("Expected initial gain 0.1, got %v", samples[0][0])
	}
	if mid := samples[500][0]; math.Abs(mid-math.Sqrt(0.1*0.01)) > 1e-9 {
		t.Errorf("Expected geometric midpoint gain, got %v", mid)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] > samples[i-1][0] {
			t.Fatalf("Expected non-increasing gain at %d", i)
		}
	}
}

// TestExplosionSound verifies the voice lasts the configured duration and respects master volume
func TestExplosionSound(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = 8000
	cfg.MasterVolume = 1

	samples := drain(NewExplosionSound(cfg, 150))

	want := beep.SampleRate(cfg.SampleRate).N(parameter.ExplosionSoundDuration)
	if len(samples) != want {
		t.Errorf("Expected %d samples, got %d", want, len(samples))
	}
	for i, s := range samples {
		if math.Abs(s[0]) > parameter.ExplosionGainStart+1e-9 {
			t.Fatalf("Sample %d exceeds start gain: %v", i, s[0])
		}
	}

	cfg.MasterVolume = 0
	for _, s := range drain(NewExplosionSound(cfg, 150)) {
		if s[0] != 0 {
			t.Fatalf("Expected silence at zero master volume, got %v", s[0])
		}
	}
}

// constantStreamer emits 1.0 for a fixed number of samples
type constantStreamer struct{ left int }

func constant(n int) beep.Streamer { return &constantStreamer{left: n} }

func (c *constantStreamer) Stream(samples [][2]float64) (int, bool) {
	if c.left <= 0 {
		return 0, false
	}
	n := min(len(samples), c.left)
	for i := 0; i < n; i++ {
		samples[i] = [2]float64{1, 1}
	}
	c.left -= n
	return n, true
}

func (c *constantStreamer) Err() error { return nil }
