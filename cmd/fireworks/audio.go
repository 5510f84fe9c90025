package main

import (
	"log/slog"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/control"
	"github.com/lixenwraith/fireworks/firework"
)

// sound holds the speaker when it started; a nil manager runs silent
type sound struct {
	sm *audio.SoundManager
}

// startAudio initializes the speaker; failure is logged and the run continues silent
func startAudio(c *audio.AudioConfig, log *slog.Logger) sound {
	sm := audio.NewSoundManager(c)
	if err := sm.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without audio", "error", err)
		return sound{}
	}
	log.Info("audio started", "sample_rate", c.SampleRate, "volume", c.MasterVolume)
	return sound{sm: sm}
}

// audio returns nil rather than a typed nil so the field skips playback entirely
func (s sound) audio() firework.Audio {
	if s.sm == nil {
		return nil
	}
	return s.sm
}

func (s sound) muter() control.Muter {
	if s.sm == nil {
		return nil
	}
	return s.sm
}

func (s sound) stop() {
	if s.sm != nil {
		s.sm.Cleanup()
	}
}
