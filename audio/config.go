package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/fireworks/parameter"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "FIREWORKS_AUDIO_ENABLED"
	EnvMasterVolume = "FIREWORKS_MASTER_VOLUME"
	EnvSampleRate   = "FIREWORKS_SAMPLE_RATE"
	EnvAudioVoices  = "FIREWORKS_AUDIO_VOICES"
)

// AudioConfig holds audio system configuration
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
	MaxVoices    int // concurrent explosions in the mixer
}

// DefaultAudioConfig returns the configuration used when no environment overrides exist
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
		MaxVoices:    parameter.AudioMaxVoices,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
// Malformed values are ignored and the default kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if voices := os.Getenv(EnvAudioVoices); voices != "" {
		if val, err := strconv.Atoi(voices); err == nil && val > 0 {
			cfg.MaxVoices = val
		}
	}

	return cfg
}
