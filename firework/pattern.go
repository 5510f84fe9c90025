package firework

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/lixenwraith/fireworks/parameter"
)

// Pattern is the explosion geometry assigned to a projectile
// PatternRandom is symbolic and resolves to a concrete pattern at detonation
type Pattern uint8

const (
	PatternDefault Pattern = iota
	PatternRing
	PatternSpiral
	PatternDouble
	PatternRandom
	patternCount
)

// ErrUnknownPattern is returned by ParsePattern for unrecognized names
var ErrUnknownPattern = errors.New("unknown pattern")

var patternNames = [patternCount]string{
	PatternDefault: "default",
	PatternRing:    "ring",
	PatternSpiral:  "spiral",
	PatternDouble:  "double",
	PatternRandom:  "random",
}

func (p Pattern) String() string {
	if p < patternCount {
		return patternNames[p]
	}
	return fmt.Sprintf("pattern(%d)", uint8(p))
}

// Valid reports whether p is a member of the enumeration
func (p Pattern) Valid() bool {
	return p < patternCount
}

// Concrete reports whether p produces particles without resolution
func (p Pattern) Concrete() bool {
	return p < PatternRandom
}

// Frequency returns the explosion sound pitch for the pattern
func (p Pattern) Frequency() float64 {
	if p == PatternDouble {
		return parameter.ExplosionFrequencyDouble
	}
	return parameter.ExplosionFrequency
}

// ParsePattern maps a case-insensitive name to a Pattern
func ParsePattern(s string) (Pattern, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range patternNames {
		if n == name {
			return Pattern(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, s)
}

// Patterns lists every pattern in enumeration order
func Patterns() []Pattern {
	out := make([]Pattern, patternCount)
	for i := range out {
		out[i] = Pattern(i)
	}
	return out
}

// randomPattern draws uniformly from the whole enumeration, PatternRandom included
func randomPattern(rng *rand.Rand) Pattern {
	return Pattern(rng.IntN(int(patternCount)))
}

// resolvePattern turns p into a concrete pattern
// A RANDOM draw is re-rolled at most MaxPatternRerolls times, after which the
// draw is restricted to concrete patterns, so resolution always terminates
func resolvePattern(rng *rand.Rand, p Pattern) Pattern {
	if p.Concrete() {
		return p
	}
	if p != PatternRandom {
		return PatternDefault
	}
	for range parameter.MaxPatternRerolls + 1 {
		if pick := randomPattern(rng); pick.Concrete() {
			return pick
		}
	}
	return Pattern(rng.IntN(int(PatternRandom)))
}
