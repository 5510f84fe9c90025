package parameter

// Palette is the set of firework colors, one picked uniformly per launch
var Palette = []string{
	"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff", "#00ffff",
	"#ff8800", "#ff0088", "#88ff00", "#00ff88", "#0088ff", "#8800ff",
	"#ffffff", "#ffd700", "#ff1493", "#00fa9a", "#ff69b4", "#4169e1",
}

// Render Styling
const (
	// FadeAmount darkens the previous frame instead of clearing it, leaving motion blur
	FadeAmount = 0.15

	// GlowAlpha scales particle alpha for the glow halo
	GlowAlpha = 0.5
	// GlowCoreStop is the gradient stop up to which glow stays at full color
	GlowCoreStop = 0.1

	// ParticleTrailAlpha scales the newest particle trail sample
	ParticleTrailAlpha = 0.3

	// ProjectileGlowRadius, ProjectileGlowAlpha, ProjectileHeadRadius, ProjectileTrailRadius
	// shape the rising shell
	ProjectileGlowRadius  = 8.0
	ProjectileGlowAlpha   = 0.5
	ProjectileHeadRadius  = 3.0
	ProjectileTrailRadius = 2.0
	ProjectileTrailAlpha  = 0.4
)

// Terminal Raster
const (
	// DefaultWorldScale is world units per raster pixel; a cell is one pixel wide, two tall
	DefaultWorldScale = 6.0

	// MinWorldScale and MaxWorldScale bound the configurable scale
	MinWorldScale = 1.0
	MaxWorldScale = 32.0

	// HalfBlock draws the upper pixel as foreground and the lower as background
	HalfBlock = '▀'
)
