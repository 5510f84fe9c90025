package main

import (
	"errors"
	"testing"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fireworks/config"
	"github.com/lixenwraith/fireworks/firework"
)

// TestFlagsOverrideConfig verifies parsed flags land in the config
func TestFlagsOverrideConfig(t *testing.T) {
	c := config.Default()
	var f flags
	cmd := &cobra.Command{Use: "test"}
	f.bind(cmd, c)

	err := cmd.PersistentFlags().Parse([]string{
		"--fps", "30", "--spawn-chance", "0.2", "--pattern", "ring", "--color", "256", "--mute", "--max-particles", "100",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if err := f.apply(c); err != nil {
		t.Fatalf("apply failed: %v", err)
	}

	if c.FPS != 30 {
		t.Errorf("Expected fps 30, got %d", c.FPS)
	}
	if c.SpawnChance != 0.2 {
		t.Errorf("Expected spawn chance 0.2, got %v", c.SpawnChance)
	}
	if c.MaxParticles != 100 {
		t.Errorf("Expected max particles 100, got %d", c.MaxParticles)
	}
	if c.Pattern != firework.PatternRing {
		t.Errorf("Expected ring, got %s", c.Pattern)
	}
	if c.ColorMode != config.Color256 {
		t.Errorf("Expected color 256, got %s", c.ColorMode)
	}
	if c.Audio.Enabled {
		t.Error("Expected --mute to disable audio")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

// TestFlagsDefaultsKeepConfig verifies unparsed flags leave the config intact
func TestFlagsDefaultsKeepConfig(t *testing.T) {
	c := config.Default()
	want := *c
	var f flags
	f.bind(&cobra.Command{Use: "test"}, c)

	if err := f.apply(c); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if c.FPS != want.FPS || c.Pattern != want.Pattern || c.ColorMode != want.ColorMode {
		t.Errorf("Expected defaults preserved, got fps=%d pattern=%s color=%s", c.FPS, c.Pattern, c.ColorMode)
	}
	if !c.Audio.Enabled {
		t.Error("Expected audio enabled by default")
	}
}

// TestFlagsRejectUnknownPattern verifies a bad pattern name surfaces the sentinel
func TestFlagsRejectUnknownPattern(t *testing.T) {
	c := config.Default()
	f := flags{pattern: "willow"}

	err := f.apply(c)
	if !errors.Is(err, firework.ErrUnknownPattern) {
		t.Errorf("Expected ErrUnknownPattern, got %v", err)
	}
}
