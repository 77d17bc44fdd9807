package term

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/constellation/engine"
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/vmath"
)

const halfBlock = '▀'

// Presenter is the terminal host: it sizes the field from the screen, owns the
// surface, and composites each finished frame onto the screen
type Presenter struct {
	screen  tcell.Screen
	surface *Surface
	bg      colorful.Color
}

// NewPresenter binds a presenter to an initialized screen
func NewPresenter(screen tcell.Screen, background paint.Color) *Presenter {
	return &Presenter{
		screen:  screen,
		surface: NewSurface(),
		bg:      background.Color,
	}
}

// Surface implements engine.SurfaceSource; it is unavailable while the screen has no cells
func (p *Presenter) Surface() (render.Surface, bool) {
	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, false
	}
	return p.surface, true
}

// ContentSize is the whole screen in CSS px
func (p *Presenter) ContentSize() (float64, float64) {
	cols, rows := p.screen.Size()
	return float64(cols) * parameter.TermCellWidthPx, float64(rows) * parameter.TermCellHeightPx
}

func (p *Presenter) DevicePixelRatio() float64 {
	return DevicePixelRatio
}

// BoundingBox places the field at the screen origin
func (p *Presenter) BoundingBox() engine.Rect {
	w, h := p.ContentSize()
	return engine.Rect{W: w, H: h}
}

// ClientPoint maps a cell to the CSS px at its center
func (p *Presenter) ClientPoint(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * parameter.TermCellWidthPx, (float64(row) + 0.5) * parameter.TermCellHeightPx
}

// Contains reports whether a cell lies on the screen; drag reports can fall outside it
func (p *Presenter) Contains(col, row int) bool {
	cols, rows := p.screen.Size()
	return col >= 0 && row >= 0 && col < cols && row < rows
}

// Present composites the surface and its labels onto the screen and shows it
// Matches the engine.Options.Present signature; the argument is ignored
func (p *Presenter) Present(render.Surface) {
	img := p.surface.Image()
	b := img.Bounds()
	cols, rows := p.screen.Size()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := p.bg, p.bg
			if col < b.Dx() && row*2 < b.Dy() {
				top = paint.Over(p.bg, img.RGBAAt(col, row*2))
			}
			if col < b.Dx() && row*2+1 < b.Dy() {
				bottom = paint.Over(p.bg, img.RGBAAt(col, row*2+1))
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			p.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	for _, l := range p.surface.Labels() {
		p.drawLabel(l, cols, rows)
	}

	p.screen.Show()
}

// drawLabel writes text over the cells it covers, on the cell's mean color
func (p *Presenter) drawLabel(l Label, cols, rows int) {
	row := int(math.Floor(l.Y / parameter.TermCellHeightPx))
	if row < 0 || row >= rows {
		return
	}
	runes := []rune(l.Text)
	start := int(math.Floor(l.X/parameter.TermCellWidthPx)) - len(runes)/2

	img := p.surface.Image()
	for i, r := range runes {
		col := start + i
		if col < 0 || col >= cols {
			continue
		}
		top := paint.Over(p.bg, img.RGBAAt(col, row*2))
		bottom := paint.Over(p.bg, img.RGBAAt(col, row*2+1))
		under := top.BlendRgb(bottom, 0.5)
		fg := under.BlendRgb(l.Color.Color, vmath.Clamp01(l.Color.A*l.Alpha))
		style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(under)).Bold(true)
		p.screen.SetContent(col, row, r, nil, style)
	}
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
