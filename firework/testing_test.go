package firework

import (
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// newTestRand returns a deterministic source so assertions are stable
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

var testColor = colorful.Color{R: 1, G: 0.4, B: 0.2}

func approx(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
