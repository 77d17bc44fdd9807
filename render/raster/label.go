package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/constellation/paint"
)

// DrawLabel renders text centered on (x, y) in the fixed 7x13 face
// Glyphs are not scaled with the device pixel ratio
func (c *Canvas) DrawLabel(x, y float64, text string, col paint.Color) {
	if text == "" {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA(c.alpha)),
		Face: face,
	}
	adv := d.MeasureString(text).Round()
	m := face.Metrics()
	baseline := (m.Ascent.Round() - m.Descent.Round()) / 2

	px := int(x*c.dpr) - adv/2
	py := int(y*c.dpr) + baseline
	d.Dot = fixed.P(px, py)
	d.DrawString(text)
}
