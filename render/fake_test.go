package render

import (
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/vmath"
)

type op struct {
	kind  string
	alpha float64 // global alpha at call time
	color paint.Color
	width float64
	pts   []vmath.Vec2
	r     float64
}

// recordSurface logs every paint call
type recordSurface struct {
	w, h   int
	alpha  float64
	ops    []op
	clears int
}

func newRecordSurface() *recordSurface {
	return &recordSurface{w: 100, h: 100, alpha: 1}
}

func (s *recordSurface) Size() (int, int) { return s.w, s.h }

func (s *recordSurface) Resize(cssW, cssH, dpr float64) {
	s.w, s.h = int(cssW*dpr), int(cssH*dpr)
}

func (s *recordSurface) Clear() {
	s.clears++
	s.ops = s.ops[:0]
}

func (s *recordSurface) SetGlobalAlpha(a float64) { s.alpha = a }
func (s *recordSurface) GlobalAlpha() float64     { return s.alpha }

func (s *recordSurface) FillCircle(x, y, r float64, c paint.Color) {
	s.ops = append(s.ops, op{kind: "fillCircle", alpha: s.alpha, color: c, r: r, pts: []vmath.Vec2{{X: x, Y: y}}})
}

func (s *recordSurface) FillRect(x, y, w, h float64, c paint.Color) {
	s.ops = append(s.ops, op{kind: "fillRect", alpha: s.alpha, color: c, pts: []vmath.Vec2{{X: x, Y: y}, {X: x + w, Y: y + h}}})
}

func (s *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, c paint.Color) {
	s.ops = append(s.ops, op{kind: "line", alpha: s.alpha, color: c, width: width, pts: []vmath.Vec2{{X: x0, Y: y0}, {X: x1, Y: y1}}})
}

func (s *recordSurface) StrokePath(pts []vmath.Vec2, closed bool, width float64, c paint.Color) {
	s.ops = append(s.ops, op{kind: "path", alpha: s.alpha, color: c, width: width, pts: append([]vmath.Vec2(nil), pts...)})
}

func (s *recordSurface) StrokeCircle(x, y, r, width float64, c paint.Color) {
	s.ops = append(s.ops, op{kind: "strokeCircle", alpha: s.alpha, color: c, width: width, r: r, pts: []vmath.Vec2{{X: x, Y: y}}})
}

func (s *recordSurface) count(kind string) int {
	n := 0
	for _, o := range s.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}
