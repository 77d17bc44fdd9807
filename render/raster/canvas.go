// Package raster is a render.Surface backed by an in-memory RGBA image
//
// Paths are filled with golang.org/x/image/vector, which rasterises with
// anti-aliased coverage and clips to the image bounds.
package raster

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/vmath"
)

// Canvas implements render.Surface and render.Labeler
type Canvas struct {
	img   *image.RGBA
	z     *vector.Rasterizer
	dpr   float64
	alpha float64
}

// NewCanvas allocates a cssW x cssH surface at the given device pixel ratio
func NewCanvas(cssW, cssH, dpr float64) *Canvas {
	c := &Canvas{alpha: 1}
	c.Resize(cssW, cssH, dpr)
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image; content is discarded
func (c *Canvas) Resize(cssW, cssH, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	w := int(math.Floor(math.Max(0, cssW) * dpr))
	h := int(math.Floor(math.Max(0, cssH) * dpr))
	c.dpr = dpr
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	if c.z == nil {
		c.z = vector.NewRasterizer(w, h)
	}
	c.z.DrawOp = draw.Over
}

// DevicePixelRatio is the CSS to device px scale
func (c *Canvas) DevicePixelRatio() float64 {
	return c.dpr
}

func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

func (c *Canvas) SetGlobalAlpha(a float64) {
	c.alpha = vmath.Clamp01(a)
}

func (c *Canvas) GlobalAlpha() float64 {
	return c.alpha
}

// Image exposes the backing buffer; it is reallocated by Resize
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// At returns the premultiplied device pixel at (x, y)
func (c *Canvas) At(x, y int) (r, g, b, a uint8) {
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	return p[0], p[1], p[2], p[3]
}

// EncodePNG writes the current frame
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

func (c *Canvas) FillCircle(x, y, r float64, col paint.Color) {
	if r <= 0 || !c.begin(x-r, y-r, x+r, y+r) {
		return
	}
	c.circle(x, y, r, false)
	c.fill(col, 1)
}

func (c *Canvas) FillRect(x, y, w, h float64, col paint.Color) {
	if w <= 0 || h <= 0 || !c.begin(x, y, x+w, y+h) {
		return
	}
	c.polygon([]vmath.Vec2{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
	c.fill(col, 1)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col paint.Color) {
	hw := width / 2
	if !c.begin(math.Min(x0, x1)-hw, math.Min(y0, y1)-hw, math.Max(x0, x1)+hw, math.Max(y0, y1)+hw) {
		return
	}
	cover := c.segment(vmath.Vec2{X: x0, Y: y0}, vmath.Vec2{X: x1, Y: y1}, width)
	c.fill(col, cover)
}

// StrokePath strokes each segment; joins are left to the overlap of segment ends
func (c *Canvas) StrokePath(pts []vmath.Vec2, closed bool, width float64, col paint.Color) {
	if len(pts) < 2 {
		return
	}
	minX, minY, maxX, maxY := bounds(pts)
	hw := width / 2
	if !c.begin(minX-hw, minY-hw, maxX+hw, maxY+hw) {
		return
	}
	cover := 1.0
	for i := 1; i < len(pts); i++ {
		cover = c.segment(pts[i-1], pts[i], width)
	}
	if closed && len(pts) > 2 {
		cover = c.segment(pts[len(pts)-1], pts[0], width)
	}
	c.fill(col, cover)
}

// StrokeCircle fills the annulus between r-width/2 and r+width/2
func (c *Canvas) StrokeCircle(x, y, r, width float64, col paint.Color) {
	outer := r + width/2
	inner := r - width/2
	if outer <= 0 || !c.begin(x-outer, y-outer, x+outer, y+outer) {
		return
	}
	c.circle(x, y, outer, false)
	if inner > 0 {
		c.circle(x, y, inner, true)
	}
	c.fill(col, 1)
}

// begin resets the rasterizer and reports whether the CSS-space box touches the image
func (c *Canvas) begin(minX, minY, maxX, maxY float64) bool {
	w, h := c.Size()
	if w == 0 || h == 0 {
		return false
	}
	if maxX*c.dpr < 0 || maxY*c.dpr < 0 || minX*c.dpr > float64(w) || minY*c.dpr > float64(h) {
		return false
	}
	c.z.Reset(w, h)
	c.z.DrawOp = draw.Over
	return true
}

// fill composites the accumulated path; cover scales alpha for sub-pixel strokes
func (c *Canvas) fill(col paint.Color, cover float64) {
	src := image.NewUniform(col.NRGBA(c.alpha * cover))
	c.z.Draw(c.img, c.img.Bounds(), src, image.Point{})
}

func (c *Canvas) dev(p vmath.Vec2) (float32, float32) {
	return float32(p.X * c.dpr), float32(p.Y * c.dpr)
}
