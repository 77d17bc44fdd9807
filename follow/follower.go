// Package follow draws a cursor companion: a dot pinned to the pointer and a ring that trails it on a spring
package follow

import (
	"github.com/charmbracelet/harmonica"

	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/vmath"
)

// Follower is a render.Layer; state advances once per rendered frame
type Follower struct {
	color     paint.Color
	frequency float64
	damping   float64

	ring    vmath.Vec2
	vel     vmath.Vec2
	visible bool
	last    float64 // ms
}

// New uses the default color and spring tuning
func New() *Follower {
	return NewWith(paint.MustParse(visual.FollowerColor), parameter.FollowerFrequency, parameter.FollowerDamping)
}

// NewWith builds a follower with a custom spring
func NewWith(c paint.Color, frequency, damping float64) *Follower {
	return &Follower{color: c, frequency: frequency, damping: damping}
}

// Ring returns the trailing ring center
func (f *Follower) Ring() vmath.Vec2 {
	return f.ring
}

// Visible reports whether the pointer was inside the host on the last frame
func (f *Follower) Visible() bool {
	return f.visible
}

// Update advances the ring toward target over dt seconds
func (f *Follower) Update(target vmath.Vec2, dt float64) {
	if dt <= 0 {
		return
	}
	s := harmonica.NewSpring(dt, f.frequency, f.damping)
	f.ring.X, f.vel.X = s.Update(f.ring.X, f.vel.X, target.X)
	f.ring.Y, f.vel.Y = s.Update(f.ring.Y, f.vel.Y, target.Y)
}

// Render implements render.Layer
func (f *Follower) Render(ctx render.Context, s render.Surface) {
	dt := (ctx.Elapsed - f.last) / 1000
	f.last = ctx.Elapsed

	if ctx.Pointer.X <= parameter.PointerSentinelX/2 {
		f.visible = false
		return
	}
	if !f.visible {
		// snap on entry so the ring does not fly in from the last exit point
		f.visible = true
		f.ring, f.vel = ctx.Pointer, vmath.Vec2{}
	} else {
		f.Update(ctx.Pointer, dt)
	}

	s.SetGlobalAlpha(1)
	s.StrokeCircle(f.ring.X, f.ring.Y, parameter.FollowerRingSize/2, parameter.FollowerRingWidth, f.color)
	s.FillCircle(ctx.Pointer.X, ctx.Pointer.Y, parameter.FollowerDotSize/2, f.color)
}
