package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/constellation/engine"
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/render"
)

var (
	_ engine.Host          = (*Presenter)(nil)
	_ engine.SurfaceSource = (*Presenter)(nil)
	_ render.Labeler       = (*Surface)(nil)
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func rgbOf(c tcell.Color) (int32, int32, int32) {
	return c.RGB()
}

func TestHostGeometry(t *testing.T) {
	screen := newScreen(t, 80, 24)
	p := NewPresenter(screen, paint.MustParse("#000000"))

	w, h := p.ContentSize()
	if w != 640 || h != 384 {
		t.Errorf("ContentSize = %vx%v, want 640x384", w, h)
	}
	if box := p.BoundingBox(); box.W != 640 || box.H != 384 || box.X != 0 || box.Y != 0 {
		t.Errorf("BoundingBox = %+v", box)
	}

	s, ok := p.Surface()
	if !ok {
		t.Fatal("surface unavailable on a sized screen")
	}
	s.Resize(w, h, p.DevicePixelRatio())
	if sw, sh := s.Size(); sw != 80 || sh != 48 {
		t.Errorf("surface %dx%d, want one column x two half rows per cell", sw, sh)
	}

	if x, y := p.ClientPoint(2, 1); x != 20 || y != 24 {
		t.Errorf("ClientPoint(2,1) = (%v,%v), want cell center (20,24)", x, y)
	}
}

func TestPresentHalfBlocks(t *testing.T) {
	screen := newScreen(t, 4, 2)
	p := NewPresenter(screen, paint.MustParse("#000000"))
	s, _ := p.Surface()
	w, h := p.ContentSize()
	s.Resize(w, h, p.DevicePixelRatio())

	// Paint only the upper half of the first row: CSS y in [0, 8) is device row 0
	s.FillRect(0, 0, w, 8, paint.MustParse("#ff0000"))
	p.Present(s)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != halfBlock {
		t.Fatalf("rune %q, want half block", r)
	}
	fg, bg, _ := style.Decompose()
	if fr, fgc, fb := rgbOf(fg); fr != 255 || fgc != 0 || fb != 0 {
		t.Errorf("top pixel = %d,%d,%d, want red", fr, fgc, fb)
	}
	if br, bgc, bb := rgbOf(bg); br != 0 || bgc != 0 || bb != 0 {
		t.Errorf("bottom pixel = %d,%d,%d, want background", br, bgc, bb)
	}

	_, _, style, _ = screen.GetContent(0, 1)
	fg, _, _ = style.Decompose()
	if fr, _, _ := rgbOf(fg); fr != 0 {
		t.Errorf("second row painted: red=%d", fr)
	}
}

func TestLabelsDrawAsText(t *testing.T) {
	screen := newScreen(t, 20, 3)
	p := NewPresenter(screen, paint.MustParse("#000000"))
	s, _ := p.Surface()
	w, h := p.ContentSize()
	s.Resize(w, h, p.DevicePixelRatio())

	lab := s.(render.Labeler)
	// Center of the screen: column 10, row 1
	lab.DrawLabel(w/2, h/2, "GSAP", paint.White)
	p.Present(s)

	got := ""
	for col := 8; col < 12; col++ {
		r, _, _, _ := screen.GetContent(col, 1)
		got += string(r)
	}
	if got != "GSAP" {
		t.Errorf("label cells = %q, want GSAP", got)
	}

	s.Clear()
	if n := len(p.surface.Labels()); n != 0 {
		t.Errorf("%d labels survived Clear", n)
	}
}

func TestEmptyScreenHasNoSurface(t *testing.T) {
	screen := newScreen(t, 0, 0)
	p := NewPresenter(screen, paint.MustParse("#000000"))
	if _, ok := p.Surface(); ok {
		t.Error("zero-cell screen reported a surface")
	}
}

func TestContains(t *testing.T) {
	p := NewPresenter(newScreen(t, 10, 5), paint.MustParse("#000000"))
	tests := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{9, 4, true},
		{-1, 0, false},
		{0, -1, false},
		{10, 2, false},
		{3, 5, false},
	}
	for _, tt := range tests {
		if got := p.Contains(tt.col, tt.row); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}
}
