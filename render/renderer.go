package render

import (
	"math"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/vmath"
)

// ConnectionAlpha is the line alpha for two particles dist apart
// The boundary is exclusive: dist >= max yields exactly 0
func ConnectionAlpha(dist, max, base float64) float64 {
	return vmath.Falloff(dist, max) * base
}

// CursorBoost is the extra line alpha when the pointer is near the line midpoint
func CursorBoost(mid, pointer vmath.Vec2, radius, boost float64) float64 {
	if boost == 0 {
		return 0
	}
	return vmath.Falloff(vmath.V2Dist(mid, pointer), radius) * boost
}

// Renderer draws one particle field: connective lines, then glow and core per particle
type Renderer struct {
	cfg *field.Config
}

// NewRenderer binds a renderer to a scene config; the config is read, never written
func NewRenderer(cfg *field.Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Draw clears the surface and paints the field
func (r *Renderer) Draw(s Surface, particles []field.Particle, pointer vmath.Vec2) {
	s.Clear()
	s.SetGlobalAlpha(1)
	r.paint(s, particles, pointer)
}

// Render implements Layer
func (r *Renderer) Render(ctx Context, s Surface) {
	r.paint(s, ctx.Particles, ctx.Pointer)
}

func (r *Renderer) paint(s Surface, particles []field.Particle, pointer vmath.Vec2) {
	if r.cfg.Connections.Distance > 0 {
		r.drawConnections(s, particles, pointer)
	}

	st := shapeStyle{stroke: r.cfg.StrokeWidth, minCore: r.cfg.CoreMinSize}
	glow := r.cfg.GlowSize > 0 && r.cfg.GlowAlpha > 0
	for i := range particles {
		p := &particles[i]

		if glow {
			s.SetGlobalAlpha(p.Alpha * r.cfg.GlowAlpha)
			s.FillCircle(p.X, p.Y, r.cfg.GlowSize, p.Color)
		}

		s.SetGlobalAlpha(p.Alpha)
		drawShape(s, p, st)
		s.SetGlobalAlpha(1)
	}
}

// drawConnections is the O(n^2) pass; pairs are visited i < j in collection order
func (r *Renderer) drawConnections(s Surface, particles []field.Particle, pointer vmath.Vec2) {
	cc := &r.cfg.Connections
	maxSq := cc.Distance * cc.Distance

	for i := 0; i < len(particles); i++ {
		a := &particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := &particles[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			distSq := dx*dx + dy*dy
			if distSq >= maxSq {
				continue
			}

			dist := math.Sqrt(distSq)
			alpha := ConnectionAlpha(dist, cc.Distance, cc.Alpha)
			mid := vmath.Vec2{X: (a.X + b.X) * 0.5, Y: (a.Y + b.Y) * 0.5}
			alpha += CursorBoost(mid, pointer, r.cfg.Pointer.Radius, cc.CursorBoost)

			s.StrokeLine(a.X, a.Y, b.X, b.Y, cc.Width, cc.Color.WithAlpha(alpha))
		}
	}
}
