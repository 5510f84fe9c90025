package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// ParseColorMode maps "truecolor", "256" or "auto" to a mode; auto detects from the environment
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(s) {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	default:
		return DetectColorMode()
	}
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, k := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if os.Getenv(k) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube values for 6x6x6 palette (indices 16-231)
var cubeValues = [6]int{0, 95, 135, 175, 215, 255}

// cubeIndex maps 0-255 to nearest cube level 0-5
var cubeIndex [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		best := 0
		bestDist := abs(i - cubeValues[0])
		for j := 1; j < 6; j++ {
			if d := abs(i - cubeValues[j]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		cubeIndex[i] = uint8(best)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// RGBTo256 finds the nearest xterm-256 palette index
// Near-gray colors prefer the 24-step grayscale ramp when it is closer than the cube
func RGBTo256(r, g, b uint8) uint8 {
	ri, gi, bi := cubeIndex[r], cubeIndex[g], cubeIndex[b]
	cube := 16 + 36*ri + 6*gi + bi

	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	step := min((gray-8)/10, 23)
	if step < 0 {
		step = 0
	}
	level := 8 + step*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	cubeDist := abs(int(r)-cubeValues[ri]) + abs(int(g)-cubeValues[gi]) + abs(int(b)-cubeValues[bi])
	if grayDist < cubeDist {
		return uint8(232 + step)
	}
	return cube
}

// toTcell converts c to a tcell color for the mode
func toTcell(c colorful.Color, mode ColorMode) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(RGBTo256(r, g, b)))
}
