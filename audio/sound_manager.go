package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fireworks/parameter"
)

// SoundManager mixes explosion voices onto the speaker
// Safe for concurrent use; playback never blocks the caller beyond the speaker lock
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool

	// speaker lock, replaced in tests that run without a device
	lock   func()
	unlock func()
}

// NewSoundManager creates a sound manager; a nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Initialize sets up the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all voices and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	sm.mixer.Clear()
	sm.unlock()

	speaker.Close()
	sm.initialized = false
}

// ToggleMute flips the mute state and returns the new value
// Muting drops voices already in the mixer
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.muted && sm.initialized {
		sm.lock()
		sm.mixer.Clear()
		sm.unlock()
	}
	return sm.muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Voices returns the number of explosions currently mixing
func (sm *SoundManager) Voices() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return 0
	}
	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}

// PlayExplosion queues one explosion voice at freqHz
// Muted playback succeeds silently; a full mixer reports ErrVoiceLimit
func (sm *SoundManager) PlayExplosion(freqHz float64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrAudioUnavailable
	}
	if sm.muted || sm.cfg.MasterVolume <= 0 {
		return nil
	}

	sm.lock()
	defer sm.unlock()

	if sm.cfg.MaxVoices > 0 && sm.mixer.Len() >= sm.cfg.MaxVoices {
		return ErrVoiceLimit
	}
	sm.mixer.Add(NewExplosionSound(sm.cfg, freqHz))
	return nil
}
