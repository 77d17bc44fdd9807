package render

import (
	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/vmath"
)

// Context provides frame state for layers, passed by value
type Context struct {
	// Elapsed is the clamped animation clock in milliseconds
	Elapsed float64
	// Frame counts frames rendered since mount
	Frame uint64

	// Pointer in surface coordinates; the leave sentinel when outside
	Pointer vmath.Vec2

	// Width and Height are the host content box in CSS px
	Width  float64
	Height float64

	Particles []field.Particle
}

// Center of the content box
func (c Context) Center() vmath.Vec2 {
	return vmath.Vec2{X: c.Width / 2, Y: c.Height / 2}
}
