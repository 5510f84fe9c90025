// Package config assembles application settings from defaults, environment and flags
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/fireworks/audio"
	"github.com/lixenwraith/fireworks/firework"
	"github.com/lixenwraith/fireworks/parameter"
)

// Environment variables read by LoadEnv
const (
	EnvFPS          = "FIREWORKS_FPS"
	EnvSpawnChance  = "FIREWORKS_SPAWN_CHANCE"
	EnvMaxParticles = "FIREWORKS_MAX_PARTICLES"
	EnvPattern      = "FIREWORKS_PATTERN"
	EnvScale        = "FIREWORKS_SCALE"
	EnvColor        = "FIREWORKS_COLOR"
	EnvDebug        = "FIREWORKS_DEBUG"
)

// Sentinel errors
var (
	ErrInvalidFPS         = errors.New("fps out of range")
	ErrInvalidSpawnChance = errors.New("spawn chance must be within [0,1]")
	ErrInvalidMaxParticle = errors.New("max particles must not be negative")
	ErrInvalidScale       = errors.New("world scale out of range")
	ErrInvalidColorMode   = errors.New("unknown color mode")
)

// ColorMode selects terminal color depth
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	ColorTrueColor ColorMode = "truecolor"
	Color256       ColorMode = "256"
)

// Config is the complete application configuration
type Config struct {
	FPS          int
	SpawnChance  float64
	MaxParticles int
	// Pattern restricts launches to one pattern; PatternRandom keeps the full draw
	Pattern    firework.Pattern
	WorldScale float64 // world units per terminal pixel
	ColorMode  ColorMode
	Debug      bool
	Audio      *audio.AudioConfig
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		FPS:          parameter.DefaultFPS,
		SpawnChance:  parameter.SpawnChance,
		MaxParticles: parameter.MaxParticles,
		Pattern:      firework.PatternRandom,
		WorldScale:   parameter.DefaultWorldScale,
		ColorMode:    ColorAuto,
		Audio:        audio.DefaultAudioConfig(),
	}
}

// LoadEnv returns defaults overridden by FIREWORKS_* environment variables
// Unparseable values are reported, not silently ignored
func LoadEnv() (*Config, error) {
	cfg := Default()
	cfg.Audio = audio.LoadAudioConfig()

	var errs []error
	if v := os.Getenv(EnvFPS); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvFPS, err))
		} else {
			cfg.FPS = n
		}
	}
	if v := os.Getenv(EnvSpawnChance); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvSpawnChance, err))
		} else {
			cfg.SpawnChance = f
		}
	}
	if v := os.Getenv(EnvMaxParticles); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvMaxParticles, err))
		} else {
			cfg.MaxParticles = n
		}
	}
	if v := os.Getenv(EnvPattern); v != "" {
		p, err := firework.ParsePattern(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvPattern, err))
		} else {
			cfg.Pattern = p
		}
	}
	if v := os.Getenv(EnvScale); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvScale, err))
		} else {
			cfg.WorldScale = f
		}
	}
	if v := os.Getenv(EnvColor); v != "" {
		cfg.ColorMode = ColorMode(strings.ToLower(strings.TrimSpace(v)))
	}
	if v := os.Getenv(EnvDebug); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", EnvDebug, err))
		} else {
			cfg.Debug = b
		}
	}

	if err := errors.Join(errs...); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate checks ranges
func (c *Config) Validate() error {
	if c.FPS < parameter.MinFPS || c.FPS > parameter.MaxFPS {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidFPS, c.FPS, parameter.MinFPS, parameter.MaxFPS)
	}
	if c.SpawnChance < 0 || c.SpawnChance > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidSpawnChance, c.SpawnChance)
	}
	if c.MaxParticles < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxParticle, c.MaxParticles)
	}
	if c.WorldScale < parameter.MinWorldScale || c.WorldScale > parameter.MaxWorldScale {
		return fmt.Errorf("%w: %v not in [%v,%v]", ErrInvalidScale, c.WorldScale, parameter.MinWorldScale, parameter.MaxWorldScale)
	}
	if !c.Pattern.Valid() {
		return fmt.Errorf("%w: %s", firework.ErrUnknownPattern, c.Pattern)
	}
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidColorMode, c.ColorMode)
	}
	return nil
}

// FieldConfig derives the simulation policy
func (c *Config) FieldConfig() firework.Config {
	fc := firework.DefaultConfig()
	fc.SpawnChance = c.SpawnChance
	fc.MaxParticles = c.MaxParticles
	if c.Pattern.Concrete() {
		fc.Patterns = []firework.Pattern{c.Pattern}
	}
	return fc
}
