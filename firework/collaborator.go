package firework

//go:generate go tool mockgen -destination=./mocks/collaborator_mock.go -package=mocks . Audio,Viewport

// Audio plays detonation sounds
// Errors are reported for logging only; they never alter simulation state
type Audio interface {
	PlayExplosion(freqHz float64) error
}

// Viewport supplies the current drawable area in world units
// Read every time a random coordinate is needed, never cached across a resize
type Viewport interface {
	Size() (width, height float64)
}

// FixedViewport is a Viewport with constant dimensions, used by headless runs
type FixedViewport struct {
	Width, Height float64
}

func (v FixedViewport) Size() (float64, float64) {
	return v.Width, v.Height
}
