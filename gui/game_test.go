package gui

import (
	"testing"

	"github.com/lixenwraith/fireworks/firework"
)

// TestGameViewportFollowsLayout verifies the field sees the window size
func TestGameViewportFollowsLayout(t *testing.T) {
	g := NewGame(Options{Width: 640, Height: 480, Field: firework.DefaultConfig()})

	if w, h := g.Size(); w != 640 || h != 480 {
		t.Errorf("Expected 640x480, got %vx%v", w, h)
	}

	w, h := g.Layout(1280, 720)
	if w != 1280 || h != 720 {
		t.Errorf("Expected layout 1280x720, got %dx%d", w, h)
	}
	if w, h := g.Size(); w != 1280 || h != 720 {
		t.Errorf("Expected viewport 1280x720 after layout, got %vx%v", w, h)
	}

	if w, h := g.Layout(0, 0); w != 1 || h != 1 {
		t.Errorf("Expected minimum 1x1 layout, got %dx%d", w, h)
	}
}

// TestGlowPixels verifies the sprite is opaque at the core and clear at the corners
func TestGlowPixels(t *testing.T) {
	const size = 32
	pix := glowPixels(size)

	center := (size/2*size + size/2) * 4
	if pix[center+3] != 255 {
		t.Errorf("Expected opaque core, got alpha %d", pix[center+3])
	}
	if pix[3] != 0 {
		t.Errorf("Expected transparent corner, got alpha %d", pix[3])
	}

	// premultiplied white: color channels equal alpha
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+3] {
			t.Fatalf("Expected premultiplied white at %d, got %v", i/4, pix[i:i+4])
		}
	}
}
