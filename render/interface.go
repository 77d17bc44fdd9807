package render

// Layer is implemented by anything drawn on top of a cleared surface
type Layer interface {
	Render(ctx Context, s Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
