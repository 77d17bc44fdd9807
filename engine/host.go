package engine

import "github.com/lixenwraith/constellation/render"

// Rect is a bounding box in window (client) coordinates, CSS px
type Rect struct {
	X, Y, W, H float64
}

// Host is the element a canvas fills
type Host interface {
	// ContentSize is the content box in CSS px
	ContentSize() (w, h float64)
	DevicePixelRatio() float64
	// BoundingBox is queried on every pointer event since layout can move the element
	BoundingBox() Rect
}

// SurfaceSource yields the drawing surface, or false while it is unavailable
type SurfaceSource interface {
	Surface() (render.Surface, bool)
}

// StaticSurface is a SurfaceSource that is always attached unless nil
type StaticSurface struct {
	S render.Surface
}

func (s StaticSurface) Surface() (render.Surface, bool) {
	return s.S, s.S != nil
}

// FixedHost is a Host of constant geometry
type FixedHost struct {
	Box Rect
	DPR float64
}

func (h *FixedHost) ContentSize() (float64, float64) { return h.Box.W, h.Box.H }
func (h *FixedHost) BoundingBox() Rect               { return h.Box }

func (h *FixedHost) DevicePixelRatio() float64 {
	if h.DPR <= 0 {
		return 1
	}
	return h.DPR
}
