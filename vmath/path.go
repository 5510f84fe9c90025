package vmath

// SegmentKind identifies a path command
type SegmentKind uint8

const (
	SegmentMove SegmentKind = iota
	SegmentLine
	SegmentCubic
	SegmentClose
)

// CubicSteps is the number of line pieces a cubic bezier flattens into
const CubicSteps = 12

// Segment is one path command; Pts[0..2] are c1, c2, end for cubics, Pts[0] otherwise
type Segment struct {
	Kind SegmentKind
	Pts  [3]Vec2
}

// Path is an outline built from move/line/cubic/close commands
// Mirrors the subset of canvas path API that shape builders need
type Path struct {
	segs []Segment
}

func NewPath() *Path {
	return &Path{segs: make([]Segment, 0, 16)}
}

func (p *Path) MoveTo(pt Vec2) {
	p.segs = append(p.segs, Segment{Kind: SegmentMove, Pts: [3]Vec2{pt}})
}

func (p *Path) LineTo(pt Vec2) {
	p.segs = append(p.segs, Segment{Kind: SegmentLine, Pts: [3]Vec2{pt}})
}

func (p *Path) CubicTo(c1, c2, end Vec2) {
	p.segs = append(p.segs, Segment{Kind: SegmentCubic, Pts: [3]Vec2{c1, c2, end}})
}

func (p *Path) Close() {
	p.segs = append(p.segs, Segment{Kind: SegmentClose})
}

// Segments returns the command list, shared with the path
func (p *Path) Segments() []Segment {
	if p == nil {
		return nil
	}
	return p.segs
}

// Empty reports whether the path has no drawable commands
func (p *Path) Empty() bool {
	return p == nil || len(p.segs) == 0
}

// Transform returns a new path with fn applied to every point
// Exact for affine fn since bezier control points transform with the curve
func (p *Path) Transform(fn func(Vec2) Vec2) *Path {
	out := &Path{segs: make([]Segment, len(p.Segments()))}
	for i, s := range p.Segments() {
		out.segs[i] = s
		n := 1
		if s.Kind == SegmentCubic {
			n = 3
		} else if s.Kind == SegmentClose {
			n = 0
		}
		for j := 0; j < n; j++ {
			out.segs[i].Pts[j] = fn(s.Pts[j])
		}
	}
	return out
}

// Flatten converts the path into closed polygons, one per subpath
// Subpaths with fewer than 3 vertices are dropped
func (p *Path) Flatten() [][]Vec2 {
	var polys [][]Vec2
	var cur []Vec2

	flush := func() {
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, s := range p.Segments() {
		switch s.Kind {
		case SegmentMove:
			flush()
			cur = append(cur, s.Pts[0])
		case SegmentLine:
			cur = append(cur, s.Pts[0])
		case SegmentCubic:
			if len(cur) == 0 {
				cur = append(cur, s.Pts[0])
			}
			p0 := cur[len(cur)-1]
			for i := 1; i <= CubicSteps; i++ {
				cur = append(cur, CubicPoint(p0, s.Pts[0], s.Pts[1], s.Pts[2], float64(i)/CubicSteps))
			}
		case SegmentClose:
			flush()
		}
	}
	flush()
	return polys
}

// Bounds returns the axis-aligned box of all flattened vertices
func Bounds(polys [][]Vec2) (min, max Vec2, ok bool) {
	for _, poly := range polys {
		for _, v := range poly {
			if !ok {
				min, max, ok = v, v, true
				continue
			}
			if v.X < min.X {
				min.X = v.X
			}
			if v.Y < min.Y {
				min.Y = v.Y
			}
			if v.X > max.X {
				max.X = v.X
			}
			if v.Y > max.Y {
				max.Y = v.Y
			}
		}
	}
	return min, max, ok
}

// ContainsEvenOdd tests pt against polygons with the even-odd fill rule
func ContainsEvenOdd(polys [][]Vec2, pt Vec2) bool {
	inside := false
	for _, poly := range polys {
		n := len(poly)
		j := n - 1
		for i := 0; i < n; i++ {
			a, b := poly[i], poly[j]
			if (a.Y > pt.Y) != (b.Y > pt.Y) {
				x := a.X + (pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
				if pt.X < x {
					inside = !inside
				}
			}
			j = i
		}
	}
	return inside
}

// CubicPoint evaluates a cubic bezier at t
func CubicPoint(p0, c1, c2, p1 Vec2, t float64) Vec2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Vec2{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}
