package ceremony

import (
	"testing"

	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/vmath"
)

type dot struct {
	x, y, r, alpha float64
}

// labelSurface records circles and labels
type labelSurface struct {
	alpha  float64
	dots   []dot
	labels []string
}

func (s *labelSurface) Size() (int, int) { return 800, 600 }

func (s *labelSurface) Resize(cssW, cssH, dpr float64) {}

func (s *labelSurface) Clear() { s.dots, s.labels = nil, nil }

func (s *labelSurface) SetGlobalAlpha(a float64) { s.alpha = a }

func (s *labelSurface) GlobalAlpha() float64 { return s.alpha }

func (s *labelSurface) FillRect(x, y, w, h float64, c paint.Color) {}

func (s *labelSurface) StrokeLine(x0, y0, x1, y1, width float64, c paint.Color) {}

func (s *labelSurface) StrokePath(pts []vmath.Vec2, closed bool, width float64, c paint.Color) {}

func (s *labelSurface) StrokeCircle(x, y, r, width float64, c paint.Color) {}

func (s *labelSurface) FillCircle(x, y, r float64, c paint.Color) {
	s.dots = append(s.dots, dot{x, y, r, s.alpha})
}

func (s *labelSurface) DrawLabel(x, y float64, text string, c paint.Color) {
	s.labels = append(s.labels, text)
}

func frame(ms float64) render.Context {
	return render.Context{Elapsed: ms, Width: 1920, Height: 1080}
}

func TestOverlayPhaseCallbacks(t *testing.T) {
	o := NewOverlay()
	var got []Phase
	o.OnPhase = func(p Phase) { got = append(got, p) }
	s := &labelSurface{}

	// the ceremony clock starts at the first frame, not at canvas mount
	for _, ms := range []float64{5000, 5500, 7000, 9000, 13100, 13200, 30000} {
		if !o.IsVisible() {
			break
		}
		o.Render(frame(ms), s)
	}

	want := []Phase{PhaseGather, PhaseOrbit, PhaseScatter, PhaseDone}
	if len(got) != len(want) {
		t.Fatalf("phases = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phase[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if o.IsVisible() {
		t.Error("overlay should hide once done")
	}

	o.Restart()
	if !o.IsVisible() {
		t.Fatal("pending restart should make the overlay visible")
	}
	got = nil
	o.Render(frame(31000), s)
	if o.Phase() != PhaseGather || len(got) != 1 || got[0] != PhaseGather {
		t.Errorf("after restart phase = %v, callbacks %v", o.Phase(), got)
	}
}

func TestOverlayRestartFromOtherGoroutine(t *testing.T) {
	o := NewOverlay()
	s := &labelSurface{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			o.Restart()
			_ = o.IsVisible()
		}
	}()
	for i := 0; i < 500; i++ {
		o.Render(frame(float64(i)*16), s)
		s.Clear()
	}
	<-done

	// the last request is honored by the next frame
	o.Restart()
	o.Render(frame(20000), s)
	if o.Phase() != PhaseGather {
		t.Errorf("phase = %v after restart, want gather", o.Phase())
	}
}

func TestOverlayDrawsBackFirst(t *testing.T) {
	o := NewOverlay()
	s := &labelSurface{}
	o.Render(frame(0), s)
	s.Clear()
	o.Render(frame(3000), s)

	if len(s.dots) != len(s.labels) || len(s.dots) == 0 {
		t.Fatalf("dots %d labels %d", len(s.dots), len(s.labels))
	}
	cy := 540.0
	seenFront := false
	for _, d := range s.dots {
		if d.y > cy {
			seenFront = true
		} else if seenFront {
			t.Fatal("back badge drawn after a front one")
		}
	}
	if s.alpha != 1 {
		t.Errorf("global alpha left at %v", s.alpha)
	}
}

func TestOverlaySkipsInvisible(t *testing.T) {
	o := NewOverlay()
	s := &labelSurface{}
	o.Render(frame(0), s)
	if len(s.dots) != 0 {
		t.Errorf("drew %d badges at opacity 0", len(s.dots))
	}
}
