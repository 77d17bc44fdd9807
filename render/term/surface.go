// Package term presents a raster surface on a terminal with half-block cells.
//
// Each cell shows two vertically stacked device pixels: the upper one as the
// foreground of '▀' and the lower one as the background. A cell stands for
// parameter.TermCellWidthPx x parameter.TermCellHeightPx CSS px.
package term

import (
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/render/raster"
)

// DevicePixelRatio maps one CSS px to a fraction of a half cell
const DevicePixelRatio = 1 / parameter.TermCellWidthPx

// Label is text queued for drawing as terminal characters
type Label struct {
	X, Y  float64 // CSS px
	Text  string
	Color paint.Color
	Alpha float64
}

// Surface is a raster canvas whose labels are kept as text instead of glyph pixels
type Surface struct {
	*raster.Canvas
	labels []Label
}

// NewSurface creates an empty surface; the canvas sizes it on mount
func NewSurface() *Surface {
	return &Surface{Canvas: raster.NewCanvas(0, 0, DevicePixelRatio)}
}

func (s *Surface) Resize(cssW, cssH, dpr float64) {
	s.Canvas.Resize(cssW, cssH, dpr)
	s.labels = s.labels[:0]
}

func (s *Surface) Clear() {
	s.Canvas.Clear()
	s.labels = s.labels[:0]
}

// DrawLabel records text centered on (x, y)
func (s *Surface) DrawLabel(x, y float64, text string, c paint.Color) {
	if text == "" {
		return
	}
	s.labels = append(s.labels, Label{X: x, Y: y, Text: text, Color: c, Alpha: s.GlobalAlpha()})
}

// Labels returns the labels recorded since the last Clear
func (s *Surface) Labels() []Label {
	return s.labels
}
