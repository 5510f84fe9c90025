package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/fireworks/parameter"
)

// sweepOscillator is a sine whose frequency ramps exponentially from start to end
type sweepOscillator struct {
	start    float64
	ratio    float64 // end/start
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// NewSweepOscillator creates a sine wave sweeping exponentially from start to end Hz
// Non-positive frequencies are not representable on an exponential ramp and yield silence
func NewSweepOscillator(start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	if start <= 0 || end <= 0 {
		return beep.Silence(samples)
	}
	return &sweepOscillator{
		start:    start,
		ratio:    end / start,
		duration: samples,
		rate:     rate,
	}
}

func (o *sweepOscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.start * math.Pow(o.ratio, progress)
		o.phase += freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *sweepOscillator) Err() error { return nil }

// expEnvelope scales a stream by a gain ramping exponentially from start to end
type expEnvelope struct {
	streamer beep.Streamer
	start    float64
	ratio    float64
	position int
	total    int
}

// NewExpEnvelope applies an exponential gain ramp over duration; both gains must be positive
func NewExpEnvelope(s beep.Streamer, start, end float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	if start <= 0 || end <= 0 {
		return newVolume(s, 0)
	}
	return &expEnvelope{
		streamer: s,
		start:    start,
		ratio:    end / start,
		total:    rate.N(duration),
	}
}

func (e *expEnvelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		gain := e.start * math.Pow(e.ratio, float64(e.position)/float64(e.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}

	return n, ok
}

func (e *expEnvelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// NewExplosionSound builds the detonation voice: a falling sine sweep under a decaying gain
func NewExplosionSound(cfg *AudioConfig, freq float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := parameter.ExplosionSoundDuration

	osc := NewSweepOscillator(freq, parameter.ExplosionSweepFloor, d, rate)
	shaped := NewExpEnvelope(osc, parameter.ExplosionGainStart, parameter.ExplosionGainEnd, d, rate)

	return newVolume(shaped, cfg.MasterVolume)
}
