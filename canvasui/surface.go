// Package canvasui runs the fireworks field in an SDL window through an HTML5-style canvas
package canvasui

import (
	"image/color"
	"math"

	"github.com/tfriedel6/canvas"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Surface adapts a canvas to render.Surface; the canvas keeps its pixels between frames
type Surface struct {
	cv *canvas.Canvas
}

func NewSurface(cv *canvas.Canvas) *Surface {
	return &Surface{cv: cv}
}

// Size reports the canvas size, satisfying firework.Viewport
func (s *Surface) Size() (width, height float64) {
	return float64(s.cv.Width()), float64(s.cv.Height())
}

func (s *Surface) FadeFrame(amount float64) {
	s.cv.SetFillStyle(color.NRGBA{A: uint8(vmath.Clamp01(amount)*255 + 0.5)})
	s.cv.FillRect(0, 0, float64(s.cv.Width()), float64(s.cv.Height()))
}

func (s *Surface) FillCircle(center vmath.Vec2, radius float64, c render.Color) {
	if radius <= 0 || !c.Visible() {
		return
	}
	s.cv.SetFillStyle(c.NRGBA())
	s.cv.BeginPath()
	s.cv.Arc(center.X, center.Y, radius, 0, 2*math.Pi, false)
	s.cv.Fill()
}

func (s *Surface) FillGlow(center vmath.Vec2, radius float64, c render.Color) {
	if radius <= 0 || !c.Visible() {
		return
	}
	g := s.cv.CreateRadialGradient(center.X, center.Y, 0, center.X, center.Y, radius)
	g.AddColorStop(0, c.NRGBA())
	g.AddColorStop(parameter.GlowCoreStop, c.NRGBA())
	g.AddColorStop(1, c.WithAlpha(0).NRGBA())
	s.cv.SetFillStyle(g)
	s.cv.BeginPath()
	s.cv.Arc(center.X, center.Y, radius, 0, 2*math.Pi, false)
	s.cv.Fill()
}

func (s *Surface) FillPath(p *vmath.Path, c render.Color) {
	if p.Empty() || !c.Visible() {
		return
	}
	s.cv.SetFillStyle(c.NRGBA())
	s.cv.BeginPath()
	for _, seg := range p.Segments() {
		switch seg.Kind {
		case vmath.SegmentMove:
			s.cv.MoveTo(seg.Pts[0].X, seg.Pts[0].Y)
		case vmath.SegmentLine:
			s.cv.LineTo(seg.Pts[0].X, seg.Pts[0].Y)
		case vmath.SegmentCubic:
			s.cv.BezierCurveTo(seg.Pts[0].X, seg.Pts[0].Y, seg.Pts[1].X, seg.Pts[1].Y, seg.Pts[2].X, seg.Pts[2].Y)
		case vmath.SegmentClose:
			s.cv.ClosePath()
		}
	}
	s.cv.Fill()
}
