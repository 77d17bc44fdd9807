package parameter

import "time"

// Frame Loop & Lifecycle
const (
	// FrameInterval is the ticker scheduler frame interval (~60 FPS, one display refresh)
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps the per-frame delta so a resumed tab or stalled terminal does not
	// catapult particles in a single step
	MaxFrameDelta = 50 * time.Millisecond

	// DefaultDevicePixelRatio is used when a host reports a non-positive ratio
	DefaultDevicePixelRatio = 1.0
)

// Pointer sentinel coordinates, placed far outside any configured interaction radius
const (
	PointerSentinelX = -9999.0
	PointerSentinelY = -9999.0
)

// Terminal host geometry
const (
	// TermCellWidthPx is the CSS pixel width represented by one terminal column
	TermCellWidthPx = 8.0
	// TermCellHeightPx is the CSS pixel height of one row; half-block glyphs split it in two device pixels
	TermCellHeightPx = 16.0
)
