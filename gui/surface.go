package gui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// glowSize is the edge length of the pre-rendered glow sprite
const glowSize = 128

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	glowImage     = ebiten.NewImage(glowSize, glowSize)
)

func init() {
	whiteImage.Fill(color.White)
	glowImage.WritePixels(glowPixels(glowSize))
}

// glowPixels renders a white radial gradient, opaque to the core stop and transparent at the edge
// Pixels are premultiplied RGBA as WritePixels expects
func glowPixels(size int) []byte {
	pix := make([]byte, size*size*4)
	half := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := vmath.V2Dist(vmath.V2(float64(x)+0.5, float64(y)+0.5), vmath.V2(half, half)) / half
			a := 0.0
			switch {
			case d <= parameter.GlowCoreStop:
				a = 1
			case d < 1:
				a = 1 - (d-parameter.GlowCoreStop)/(1-parameter.GlowCoreStop)
			}
			v := byte(a*255 + 0.5)
			i := (y*size + x) * 4
			pix[i], pix[i+1], pix[i+2], pix[i+3] = v, v, v, v
		}
	}
	return pix
}

// Surface draws onto an ebiten image; the target persists across frames for motion blur
type Surface struct {
	dst  *ebiten.Image
	path vector.Path
	vs   []ebiten.Vertex
	is   []uint16
}

func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst}
}

// Target swaps the destination image, used after a resize
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// FadeFrame darkens the previous frame with a translucent black fill
func (s *Surface) FadeFrame(amount float64) {
	b := s.dst.Bounds()
	a := uint8(vmath.Clamp01(amount)*255 + 0.5)
	vector.DrawFilledRect(s.dst, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), color.NRGBA{A: a}, false)
}

func (s *Surface) FillCircle(center vmath.Vec2, radius float64, c render.Color) {
	if radius <= 0 || !c.Visible() {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(center.X), float32(center.Y), float32(radius), c.NRGBA(), true)
}

func (s *Surface) FillGlow(center vmath.Vec2, radius float64, c render.Color) {
	if radius <= 0 || !c.Visible() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	k := 2 * radius / glowSize
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(center.X-radius, center.Y-radius)
	op.ColorScale.ScaleWithColor(c.NRGBA())
	op.Filter = ebiten.FilterLinear
	s.dst.DrawImage(glowImage, op)
}

// FillPath fills the outline with the even-odd rule
func (s *Surface) FillPath(p *vmath.Path, c render.Color) {
	if p.Empty() || !c.Visible() {
		return
	}

	s.path = vector.Path{}
	for _, seg := range p.Segments() {
		switch seg.Kind {
		case vmath.SegmentMove:
			s.path.MoveTo(float32(seg.Pts[0].X), float32(seg.Pts[0].Y))
		case vmath.SegmentLine:
			s.path.LineTo(float32(seg.Pts[0].X), float32(seg.Pts[0].Y))
		case vmath.SegmentCubic:
			s.path.CubicTo(
				float32(seg.Pts[0].X), float32(seg.Pts[0].Y),
				float32(seg.Pts[1].X), float32(seg.Pts[1].Y),
				float32(seg.Pts[2].X), float32(seg.Pts[2].Y),
			)
		case vmath.SegmentClose:
			s.path.Close()
		}
	}

	s.vs, s.is = s.path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	rgb := c.RGB.Clamped()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(rgb.R)
		s.vs[i].ColorG = float32(rgb.G)
		s.vs[i].ColorB = float32(rgb.B)
		s.vs[i].ColorA = float32(c.Alpha)
	}

	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.EvenOdd,
		AntiAlias: true,
	}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}
