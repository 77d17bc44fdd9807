// Package paint holds the color model shared by particle fields and drawing surfaces.
package paint

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrBadColor is returned for color strings that are neither hex nor rgb()/rgba()
var ErrBadColor = errors.New("unrecognized color")

// Color is a straight (non-premultiplied) color with its own alpha in [0,1]
type Color struct {
	colorful.Color
	A float64
}

// White is the star field core color
var White = Color{Color: colorful.Color{R: 1, G: 1, B: 1}, A: 1}

// RGBA8 builds a color from 8-bit channels and a float alpha
func RGBA8(r, g, b uint8, a float64) Color {
	return Color{
		Color: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255},
		A:     a,
	}
}

// Parse accepts "#rrggbb", "#rgb", "rgb(r,g,b)" and "rgba(r,g,b,a)"
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		if len(s) == 4 {
			s = "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
		}
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
		}
		return Color{Color: c, A: 1}, nil

	case strings.HasPrefix(s, "rgba("):
		var r, g, b int
		var a float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgba(%d,%d,%d,%g)", &r, &g, &b, &a); err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
		}
		return fromInts(s, r, g, b, a)

	case strings.HasPrefix(s, "rgb("):
		var r, g, b int
		if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "rgb(%d,%d,%d)", &r, &g, &b); err != nil {
			return Color{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
		}
		return fromInts(s, r, g, b, 1)
	}
	return Color{}, fmt.Errorf("%w %q", ErrBadColor, s)
}

func fromInts(s string, r, g, b int, a float64) (Color, error) {
	for _, v := range [...]int{r, g, b} {
		if v < 0 || v > 255 {
			return Color{}, fmt.Errorf("%w %q: channel %d out of range", ErrBadColor, s, v)
		}
	}
	if a < 0 || a > 1 {
		return Color{}, fmt.Errorf("%w %q: alpha %g out of range", ErrBadColor, s, a)
	}
	return RGBA8(uint8(r), uint8(g), uint8(b), a), nil
}

// MustParse is Parse for compile-time palette literals
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts to an 8-bit straight-alpha color, multiplying the color's own alpha by alpha
func (c Color) NRGBA(alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	a := c.A * alpha
	if a <= 0 {
		return color.NRGBA{R: r, G: g, B: b}
	}
	if a >= 1 {
		return color.NRGBA{R: r, G: g, B: b, A: 255}
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// String formats as rgba(), the notation palettes are written in
func (c Color) String() string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", r, g, b, c.A)
}

// Over composites a premultiplied pixel onto an opaque background
func Over(bg colorful.Color, px color.RGBA) colorful.Color {
	if px.A == 0 {
		return bg
	}
	a := float64(px.A) / 255
	fg := colorful.Color{
		R: float64(px.R) / 255 / a,
		G: float64(px.G) / 255 / a,
		B: float64(px.B) / 255 / a,
	}
	return bg.BlendRgb(fg.Clamped(), a)
}
