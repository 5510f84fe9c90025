package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/fireworks/parameter"
	"github.com/lixenwraith/fireworks/render"
	"github.com/lixenwraith/fireworks/vmath"
)

// Raster is a render.Surface over a pixel grid two pixels tall per terminal cell
// World coordinates are divided by scale to get pixel coordinates
type Raster struct {
	cols, rows int // terminal cells
	w, h       int // pixels
	scale      float64
	mode       ColorMode
	pix        []colorful.Color
}

// NewRaster creates a raster for a cols x rows cell grid
func NewRaster(cols, rows int, scale float64, mode ColorMode) *Raster {
	if scale <= 0 {
		scale = parameter.DefaultWorldScale
	}
	r := &Raster{scale: scale, mode: mode}
	r.Resize(cols, rows)
	return r
}

// Resize reallocates the pixel grid; content is discarded
func (r *Raster) Resize(cols, rows int) {
	r.cols, r.rows = max(cols, 0), max(rows, 0)
	r.w, r.h = r.cols, r.rows*2
	r.pix = make([]colorful.Color, r.w*r.h)
}

// Size reports the drawable area in world units, satisfying firework.Viewport
func (r *Raster) Size() (width, height float64) {
	return float64(r.w) * r.scale, float64(r.h) * r.scale
}

// Cells returns the terminal grid dimensions
func (r *Raster) Cells() (cols, rows int) {
	return r.cols, r.rows
}

func (r *Raster) Scale() float64 { return r.scale }

// CellToWorld maps a terminal cell to the world point at its center
// The center lies on the boundary between the cell's upper and lower pixel
func (r *Raster) CellToWorld(x, y int) vmath.Vec2 {
	return vmath.V2((float64(x)+0.5)*r.scale, float64(2*y+1)*r.scale)
}

// Pixel returns the color at pixel (x, y); out of range is black
func (r *Raster) Pixel(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return colorful.Color{}
	}
	return r.pix[y*r.w+x]
}

// Clear sets every pixel to black
func (r *Raster) Clear() {
	clear(r.pix)
}

// FadeFrame darkens the previous frame toward black by amount
func (r *Raster) FadeFrame(amount float64) {
	k := 1 - vmath.Clamp01(amount)
	for i := range r.pix {
		p := &r.pix[i]
		p.R *= k
		p.G *= k
		p.B *= k
	}
}

func (r *Raster) blend(x, y int, c render.Color) {
	if x < 0 || y < 0 || x >= r.w || y >= r.h {
		return
	}
	i := y*r.w + x
	r.pix[i] = c.Over(r.pix[i])
}

// pixelSpace converts a world point and radius to pixel units
func (r *Raster) pixelSpace(center vmath.Vec2, radius float64) (cx, cy, rad float64) {
	return center.X / r.scale, center.Y / r.scale, radius / r.scale
}

// FillCircle fills a disc; sub-pixel discs still light the pixel they sit in
func (r *Raster) FillCircle(center vmath.Vec2, radius float64, c render.Color) {
	if radius <= 0 || !c.Visible() || !vmath.V2Finite(center) {
		return
	}
	cx, cy, rad := r.pixelSpace(center, radius)
	rad = math.Max(rad, 0.5)

	x0, x1 := int(math.Floor(cx-rad)), int(math.Ceil(cx+rad))
	y0, y1 := int(math.Floor(cy-rad)), int(math.Ceil(cy+rad))
	r2 := rad * rad
	for y := max(y0, 0); y <= min(y1, r.h-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.w-1); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r2 {
				r.blend(x, y, c)
			}
		}
	}
}

// FillGlow fills a radial gradient: full color out to the core stop, transparent at radius
func (r *Raster) FillGlow(center vmath.Vec2, radius float64, c render.Color) {
	if radius <= 0 || !c.Visible() || !vmath.V2Finite(center) {
		return
	}
	cx, cy, rad := r.pixelSpace(center, radius)
	if rad < 0.5 {
		return
	}

	x0, x1 := int(math.Floor(cx-rad)), int(math.Ceil(cx+rad))
	y0, y1 := int(math.Floor(cy-rad)), int(math.Ceil(cy+rad))
	for y := max(y0, 0); y <= min(y1, r.h-1); y++ {
		for x := max(x0, 0); x <= min(x1, r.w-1); x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) / rad
			if d >= 1 {
				continue
			}
			a := 1.0
			if d > parameter.GlowCoreStop {
				a = 1 - (d-parameter.GlowCoreStop)/(1-parameter.GlowCoreStop)
			}
			r.blend(x, y, c.WithAlpha(a))
		}
	}
}

// FillPath fills the path with the even-odd rule
// A shape smaller than a pixel lights the pixel under its bounding-box center
func (r *Raster) FillPath(p *vmath.Path, c render.Color) {
	if p.Empty() || !c.Visible() {
		return
	}
	polys := p.Transform(func(v vmath.Vec2) vmath.Vec2 {
		return vmath.V2Scale(v, 1/r.scale)
	}).Flatten()

	lo, hi, ok := vmath.Bounds(polys)
	if !ok || !vmath.V2Finite(lo) || !vmath.V2Finite(hi) {
		return
	}

	hit := false
	for y := max(int(math.Floor(lo.Y)), 0); y <= min(int(math.Ceil(hi.Y)), r.h-1); y++ {
		for x := max(int(math.Floor(lo.X)), 0); x <= min(int(math.Ceil(hi.X)), r.w-1); x++ {
			if vmath.ContainsEvenOdd(polys, vmath.V2(float64(x)+0.5, float64(y)+0.5)) {
				r.blend(x, y, c)
				hit = true
			}
		}
	}
	if !hit {
		mid := vmath.V2Scale(vmath.V2Add(lo, hi), 0.5)
		r.blend(int(math.Floor(mid.X)), int(math.Floor(mid.Y)), c)
	}
}

// Flush writes the raster into screen as half-block cells
// The caller is responsible for screen.Show
func (r *Raster) Flush(screen tcell.Screen) {
	for y := 0; y < r.rows; y++ {
		top := r.pix[2*y*r.w : 2*y*r.w+r.w]
		bottom := r.pix[(2*y+1)*r.w : (2*y+1)*r.w+r.w]
		for x := 0; x < r.cols; x++ {
			style := tcell.StyleDefault.
				Foreground(toTcell(top[x], r.mode)).
				Background(toTcell(bottom[x], r.mode))
			screen.SetContent(x, y, parameter.HalfBlock, nil, style)
		}
	}
}
