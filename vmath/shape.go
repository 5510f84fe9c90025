package vmath

import "math"

// StarSpikes is the number of outer points on a star outline
const StarSpikes = 5

// Star builds a closed star outline centered at c
// Outer vertices sit at size, inner vertices at size/2, first outer vertex at rotation
func Star(c Vec2, size, rotation float64) *Path {
	p := NewPath()
	if size <= 0 {
		return p
	}
	step := math.Pi / StarSpikes
	for i := 0; i < StarSpikes*2; i++ {
		r := size
		if i%2 == 1 {
			r = size / 2
		}
		v := V2Add(c, V2FromAngle(float64(i)*step+rotation, r))
		if i == 0 {
			p.MoveTo(v)
		} else {
			p.LineTo(v)
		}
	}
	p.Close()
	return p
}

// Heart builds a closed heart outline anchored at c and rotated about it
// Lobes sit around c, the point hangs size below c before rotation
func Heart(c Vec2, size, rotation float64) *Path {
	p := NewPath()
	if size <= 0 {
		return p
	}
	x, y := c.X, c.Y
	top := size * 0.3
	mid := y + (size+top)/2

	p.MoveTo(V2(x, y+top))
	// left lobe
	p.CubicTo(V2(x, y), V2(x-size, y), V2(x-size, y+top))
	// left flank
	p.CubicTo(V2(x-size, mid), V2(x, y+size), V2(x, y+size))
	// right flank
	p.CubicTo(V2(x, y+size), V2(x+size, mid), V2(x+size, y+top))
	// right lobe
	p.CubicTo(V2(x+size, y), V2(x, y), V2(x, y+top))
	p.Close()

	if rotation == 0 {
		return p
	}
	return p.Transform(func(v Vec2) Vec2 { return V2Rotate(v, c, rotation) })
}
