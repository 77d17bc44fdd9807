// Package field builds reproducible particle collections from a seed and viewport size.
package field

import "github.com/lixenwraith/constellation/paint"

// Shape is the tag selecting how a particle's core is drawn
type Shape uint8

const (
	ShapeDot Shape = iota // filled circle core
	ShapePixel            // crisp filled square snapped to whole pixels
	ShapeCross
	ShapeSquare
	ShapeTriangle
	ShapeCircle
	ShapeCount
)

var shapeNames = [ShapeCount]string{"dot", "pixel", "cross", "square", "triangle", "circle"}

func (s Shape) String() string {
	if s < ShapeCount {
		return shapeNames[s]
	}
	return "unknown"
}

// SymbolShape maps a symbol draw in [0,3] to the stroked shapes
func SymbolShape(i int) Shape {
	if i < 0 || i > 3 {
		return ShapeCircle
	}
	return ShapeCross + Shape(i)
}

// Particle is one element of a field
// Position and velocity mutate every frame; everything else is fixed at initialization
type Particle struct {
	X, Y         float64
	BaseX, BaseY float64
	VX, VY       float64

	Size      float64
	Color     paint.Color
	BaseAlpha float64
	Alpha     float64
	Shape     Shape

	Rotation      float64
	RotationPhase float64

	DriftPhase float64
	DriftAmpX  float64
	DriftAmpY  float64

	BreathPhase float64
	// BreathSpeed overrides the scene breath speed when positive
	BreathSpeed float64
}
