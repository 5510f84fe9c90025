package firework

import "math/rand/v2"

// Shape selects the outline drawn for a particle
type Shape uint8

const (
	ShapeDisc Shape = iota
	ShapeStar
	ShapeHeart
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeDisc:
		return "disc"
	case ShapeStar:
		return "star"
	case ShapeHeart:
		return "heart"
	default:
		return "unknown"
	}
}

// randomShape draws uniformly from all shapes
func randomShape(rng *rand.Rand) Shape {
	return Shape(rng.IntN(int(shapeCount)))
}

// Motion selects how a particle advances each tick
type Motion uint8

const (
	MotionBallistic  Motion = iota // gravity only
	MotionRingDamped               // gravity plus per-tick drag
	MotionSpiral                   // logarithmic inward spiral, ignores velocity and gravity
	MotionStatic                   // does not move, only fades
)

func (m Motion) String() string {
	switch m {
	case MotionBallistic:
		return "ballistic"
	case MotionRingDamped:
		return "ring-damped"
	case MotionSpiral:
		return "spiral"
	case MotionStatic:
		return "static"
	default:
		return "unknown"
	}
}
