package ceremony

import (
	"sync/atomic"

	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
)

// Overlay draws the badge ceremony around the content-box center
// The ceremony clock starts at the first rendered frame
type Overlay struct {
	labels []string
	colors paint.Palette

	// OnPhase, when set, is called from the frame body on every phase change
	OnPhase func(Phase)

	// started and start belong to the frame goroutine; other goroutines go through restart
	started bool
	start   float64 // ms on the canvas clock
	restart atomic.Bool
	phase   atomic.Int32
	buf     []Badge
}

// NewOverlay builds the default badge set
func NewOverlay() *Overlay {
	return NewOverlayWith(visual.CeremonyBadgeLabels, paint.MustPalette(visual.CeremonyBadgeColors...))
}

// NewOverlayWith uses custom labels; colors are matched by index
func NewOverlayWith(labels []string, colors paint.Palette) *Overlay {
	o := &Overlay{
		labels: append([]string(nil), labels...),
		colors: colors,
	}
	o.phase.Store(-1)
	return o
}

// Phase returns the phase seen by the last rendered frame, or -1 before the first
func (o *Overlay) Phase() Phase {
	return Phase(o.phase.Load())
}

// Restart rewinds the ceremony to begin at the next frame; safe from any goroutine
func (o *Overlay) Restart() {
	o.restart.Store(true)
}

// IsVisible implements render.VisibilityToggle
func (o *Overlay) IsVisible() bool {
	return o.restart.Load() || o.Phase() != PhaseDone
}

// Render implements render.Layer
func (o *Overlay) Render(ctx render.Context, s render.Surface) {
	if o.restart.Swap(false) {
		o.started = false
		o.phase.Store(-1)
	}
	if !o.started {
		o.started = true
		o.start = ctx.Elapsed
	}
	t := (ctx.Elapsed - o.start) / 1000
	n := len(o.labels)

	if ph := PhaseAt(t, n); ph != o.Phase() {
		o.phase.Store(int32(ph))
		if o.OnPhase != nil {
			o.OnPhase(ph)
		}
	}

	o.buf = Badges(o.buf, n, t, GeometryFor(ctx.Width))
	c := ctx.Center()
	lb, _ := s.(render.Labeler)

	// far side first so the near half overlaps it
	for _, front := range [2]bool{false, true} {
		for i, b := range o.buf {
			if b.Front != front || b.Opacity <= 0 {
				continue
			}
			x, y := c.X+b.X, c.Y+b.Y
			col := o.colors.At(i)
			s.SetGlobalAlpha(b.Opacity)
			s.FillCircle(x, y, parameter.CeremonyBadgeDot*b.Scale, col)
			if lb != nil {
				lb.DrawLabel(x, y, o.labels[i], col)
			}
		}
	}
	s.SetGlobalAlpha(1)
}
