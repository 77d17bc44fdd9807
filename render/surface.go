package render

import (
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/vmath"
)

// Surface is an immediate-mode 2D paint target
// Coordinates are CSS px; implementations apply the device pixel ratio
// Every paint call multiplies the color's own alpha by the global alpha
type Surface interface {
	// Size returns the backing buffer dimensions in device px
	Size() (w, h int)
	// Resize reallocates the backing buffer to css*dpr and clears it
	Resize(cssW, cssH, dpr float64)
	Clear()

	SetGlobalAlpha(a float64)
	GlobalAlpha() float64

	FillCircle(x, y, r float64, c paint.Color)
	FillRect(x, y, w, h float64, c paint.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c paint.Color)
	StrokePath(pts []vmath.Vec2, closed bool, width float64, c paint.Color)
	StrokeCircle(x, y, r, width float64, c paint.Color)
}

// Labeler is optionally implemented by surfaces that can draw text
type Labeler interface {
	// DrawLabel centers text on (x, y)
	DrawLabel(x, y float64, text string, c paint.Color)
}
