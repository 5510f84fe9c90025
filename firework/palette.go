package firework

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
)

// palette is parameter.Palette parsed once
var palette = func() []colorful.Color {
	out := make([]colorful.Color, len(parameter.Palette))
	for i, hex := range parameter.Palette {
		out[i] = render.MustParseHex(hex).RGB
	}
	return out
}()

// RandomColor picks a palette color uniformly
func RandomColor(rng *rand.Rand) colorful.Color {
	return palette[rng.IntN(len(palette))]
}

// Palette returns a copy of the launch colors
func Palette() []colorful.Color {
	return append([]colorful.Color(nil), palette...)
}
