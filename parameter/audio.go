package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoices caps concurrently mixed explosions, extra requests are dropped
	AudioMaxVoices = 24
)

// Explosion Sound
const (
	// ExplosionSoundDuration is the length of the pitch and gain ramps
	ExplosionSoundDuration = 500 * time.Millisecond

	// ExplosionSweepFloor is the frequency the pitch ramps down to
	ExplosionSweepFloor = 0.01

	// ExplosionGainStart and ExplosionGainEnd shape the exponential gain ramp
	ExplosionGainStart = 0.1
	ExplosionGainEnd   = 0.01
)
