package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/vmath"
)

// Color is an RGB color with straight (non-premultiplied) alpha
// Alpha carries the scoped opacity of a draw call
type Color struct {
	RGB   colorful.Color
	Alpha float64
}

// Opaque wraps an RGB color at full alpha
func Opaque(c colorful.Color) Color {
	return Color{RGB: c, Alpha: 1}
}

// ParseHex parses "#rrggbb" into an opaque color
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Opaque(c), nil
}

// MustParseHex is ParseHex for package-level palettes
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with alpha multiplied by a, clamped to [0,1]
func (c Color) WithAlpha(a float64) Color {
	c.Alpha = vmath.Clamp01(c.Alpha * a)
	return c
}

// Visible reports whether drawing c changes any pixel
func (c Color) Visible() bool {
	return c.Alpha > 0
}

// Over composites c onto dst with source-over blending
func (c Color) Over(dst colorful.Color) colorful.Color {
	a := vmath.Clamp01(c.Alpha)
	if a == 0 {
		return dst
	}
	return dst.BlendRgb(c.RGB.Clamped(), a)
}

// NRGBA converts to the image/color representation used by GPU frontends
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.RGB.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(vmath.Clamp01(c.Alpha)*255 + 0.5)}
}

// White is the flash color
var White = Color{RGB: colorful.Color{R: 1, G: 1, B: 1}, Alpha: 1}
