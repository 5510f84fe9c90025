package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/firework"
)

// flags holds values that need parsing before they reach the config
type flags struct {
	pattern string
	color   string
	mute    bool
	hideHUD bool
}

// bind registers persistent flags; current config values become the defaults
func (f *flags) bind(cmd *cobra.Command, c *config.Config) {
	pf := cmd.PersistentFlags()
	pf.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	pf.Float64Var(&c.SpawnChance, "spawn-chance", c.SpawnChance, "probability of an automatic launch per tick")
	pf.IntVar(&c.MaxParticles, "max-particles", c.MaxParticles, "live particle cap, 0 for unlimited")
	pf.Float64Var(&c.WorldScale, "scale", c.WorldScale, "world units per terminal pixel")
	pf.BoolVar(&c.Debug, "debug", c.Debug, "write logs/fireworks.log")
	pf.StringVar(&f.pattern, "pattern", c.Pattern.String(), "explosion pattern: "+strings.Join(patternNames(), ", "))
	pf.StringVar(&f.color, "color", string(c.ColorMode), "terminal color mode: auto, truecolor, 256")
	pf.BoolVar(&f.mute, "mute", false, "disable audio")
	pf.BoolVar(&f.hideHUD, "no-hud", false, "start with the status line hidden")
}

// apply copies parsed flag values into c
func (f *flags) apply(c *config.Config) error {
	p, err := firework.ParsePattern(f.pattern)
	if err != nil {
		return fmt.Errorf("--pattern: %w", err)
	}
	c.Pattern = p
	c.ColorMode = config.ColorMode(strings.ToLower(f.color))
	if f.mute {
		c.Audio.Enabled = false
	}
	return nil
}

func patternNames() []string {
	var names []string
	for _, p := range firework.Patterns() {
		names = append(names, p.String())
	}
	return names
}
