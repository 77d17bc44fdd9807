package render

import (
	"math"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/vmath"
)

// Shape proportions relative to particle size
const (
	crossHalf    = 0.5
	squareHalf   = 0.45
	triangleR    = 0.5
	circleR      = 0.45
	triangleCosX = 0.866
	triangleSinY = 0.5
)

// shapeStyle carries the per-scene core drawing parameters
type shapeStyle struct {
	stroke  float64
	minCore float64
}

type shapeFn func(s Surface, p *field.Particle, st shapeStyle)

// shapeFns is the core dispatch table indexed by field.Shape
var shapeFns = [field.ShapeCount]shapeFn{
	field.ShapeDot:      drawDot,
	field.ShapePixel:    drawPixel,
	field.ShapeCross:    drawCross,
	field.ShapeSquare:   drawSquare,
	field.ShapeTriangle: drawTriangle,
	field.ShapeCircle:   drawCircle,
}

func drawDot(s Surface, p *field.Particle, st shapeStyle) {
	s.FillCircle(p.X, p.Y, math.Max(st.minCore, p.Size), p.Color)
}

// drawPixel snaps to whole px for a crisp square
func drawPixel(s Surface, p *field.Particle, _ shapeStyle) {
	size := math.Max(1, math.Round(p.Size))
	x, y := math.Round(p.X), math.Round(p.Y)
	s.FillRect(x-size/2, y-size/2, size, size, p.Color)
}

func drawCross(s Surface, p *field.Particle, st shapeStyle) {
	h := p.Size * crossHalf
	a := place(p, -h, -h)
	b := place(p, h, h)
	c := place(p, h, -h)
	d := place(p, -h, h)
	s.StrokeLine(a.X, a.Y, b.X, b.Y, st.stroke, p.Color)
	s.StrokeLine(c.X, c.Y, d.X, d.Y, st.stroke, p.Color)
}

func drawSquare(s Surface, p *field.Particle, st shapeStyle) {
	h := p.Size * squareHalf
	pts := []vmath.Vec2{
		place(p, -h, -h),
		place(p, h, -h),
		place(p, h, h),
		place(p, -h, h),
	}
	s.StrokePath(pts, true, st.stroke, p.Color)
}

func drawTriangle(s Surface, p *field.Particle, st shapeStyle) {
	r := p.Size * triangleR
	pts := []vmath.Vec2{
		place(p, 0, -r),
		place(p, r*triangleCosX, r*triangleSinY),
		place(p, -r*triangleCosX, r*triangleSinY),
	}
	s.StrokePath(pts, true, st.stroke, p.Color)
}

// drawCircle ignores rotation
func drawCircle(s Surface, p *field.Particle, st shapeStyle) {
	s.StrokeCircle(p.X, p.Y, p.Size*circleR, st.stroke, p.Color)
}

// place rotates a local offset by the particle rotation and translates it to the particle
func place(p *field.Particle, dx, dy float64) vmath.Vec2 {
	return vmath.V2Add(vmath.Vec2{X: p.X, Y: p.Y}, vmath.V2Rotate(vmath.Vec2{X: dx, Y: dy}, p.Rotation))
}

// drawShape dispatches on the particle's shape tag; unknown tags fall back to a dot
func drawShape(s Surface, p *field.Particle, st shapeStyle) {
	if int(p.Shape) < len(shapeFns) {
		shapeFns[p.Shape](s, p, st)
		return
	}
	drawDot(s, p, st)
}

