package render

import (
	"github.com/lixenwraith/fireworks/vmath"
)

// OpKind identifies a recorded draw call
type OpKind uint8

const (
	OpCircle OpKind = iota
	OpGlow
	OpPath
	OpFade
)

// Op is one recorded draw call
type Op struct {
	Kind   OpKind
	Center vmath.Vec2
	Radius float64
	Color  Color
	Path   *vmath.Path
	Amount float64
}

// Recorder is a Surface that stores calls instead of drawing
// Used by tests and headless runs to inspect render output
type Recorder struct {
	Ops []Op
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) FillCircle(center vmath.Vec2, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) FillGlow(center vmath.Vec2, radius float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpGlow, Center: center, Radius: radius, Color: c})
}

func (r *Recorder) FillPath(p *vmath.Path, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpPath, Path: p, Color: c})
}

func (r *Recorder) FadeFrame(amount float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFade, Amount: amount})
}

// Count returns the number of recorded ops of the given kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops recorded ops, keeping capacity
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
