package audio

import (
	"errors"
)

// Sentinel errors
var (
	ErrAudioUnavailable = errors.New("audio not initialized")
	ErrAudioDisabled    = errors.New("audio disabled by configuration")
	ErrVoiceLimit       = errors.New("explosion voice limit reached")
)
