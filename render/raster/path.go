package raster

import (
	"math"

	"github.com/lixenwraith/constellation/vmath"
)

// kappa places cubic control points for a quarter circle
const kappa = 0.5522847498

// minDeviceStroke is the thinnest stroke rasterised; thinner strokes trade width for alpha
const minDeviceStroke = 1.0

// circle appends a closed circle; reverse flips the winding to cut holes
func (c *Canvas) circle(cx, cy, r float64, reverse bool) {
	k := r * kappa
	// Quarter arcs: right, bottom, left, top
	type quarter struct{ c1, c2, end vmath.Vec2 }
	start := vmath.Vec2{X: cx + r, Y: cy}
	qs := []quarter{
		{vmath.Vec2{X: cx + r, Y: cy + k}, vmath.Vec2{X: cx + k, Y: cy + r}, vmath.Vec2{X: cx, Y: cy + r}},
		{vmath.Vec2{X: cx - k, Y: cy + r}, vmath.Vec2{X: cx - r, Y: cy + k}, vmath.Vec2{X: cx - r, Y: cy}},
		{vmath.Vec2{X: cx - r, Y: cy - k}, vmath.Vec2{X: cx - k, Y: cy - r}, vmath.Vec2{X: cx, Y: cy - r}},
		{vmath.Vec2{X: cx + k, Y: cy - r}, vmath.Vec2{X: cx + r, Y: cy - k}, start},
	}

	c.z.MoveTo(c.dev(start))
	if !reverse {
		for _, q := range qs {
			c.cube(q.c1, q.c2, q.end)
		}
	} else {
		// Walk the same curves backwards
		for i := len(qs) - 1; i >= 0; i-- {
			end := start
			if i > 0 {
				end = qs[i-1].end
			}
			c.cube(qs[i].c2, qs[i].c1, end)
		}
	}
	c.z.ClosePath()
}

func (c *Canvas) cube(c1, c2, end vmath.Vec2) {
	ax, ay := c.dev(c1)
	bx, by := c.dev(c2)
	ex, ey := c.dev(end)
	c.z.CubeTo(ax, ay, bx, by, ex, ey)
}

func (c *Canvas) polygon(pts []vmath.Vec2) {
	c.z.MoveTo(c.dev(pts[0]))
	for _, p := range pts[1:] {
		c.z.LineTo(c.dev(p))
	}
	c.z.ClosePath()
}

// segment appends a stroke quad from a to b and returns the alpha cover for sub-pixel widths
func (c *Canvas) segment(a, b vmath.Vec2, width float64) float64 {
	dw := width * c.dpr
	cover := 1.0
	if dw < minDeviceStroke {
		cover = math.Max(0, dw) / minDeviceStroke
		dw = minDeviceStroke
	}
	hw := dw / 2 / c.dpr

	dir := vmath.V2Sub(b, a)
	if vmath.V2MagSq(dir) == 0 {
		dir = vmath.Vec2{X: 1}
	}
	n := vmath.V2Scale(vmath.V2Normalize(vmath.Vec2{X: -dir.Y, Y: dir.X}), hw)
	c.polygon([]vmath.Vec2{
		vmath.V2Add(a, n),
		vmath.V2Add(b, n),
		vmath.V2Sub(b, n),
		vmath.V2Sub(a, n),
	})
	return cover
}

func bounds(pts []vmath.Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}
