package field

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
)

// ErrInvalidConfig wraps every Validate failure
var ErrInvalidConfig = errors.New("invalid field config")

// Layout selects how Initialize places particles
type Layout uint8

const (
	// LayoutScatter places particles uniformly inside the edge-inset rectangle
	LayoutScatter Layout = iota
	// LayoutStars places static twinkling stars over the full rectangle
	LayoutStars
	// LayoutRing places particles on concentric rows around the surface center
	LayoutRing
)

var layoutNames = [...]string{
	LayoutScatter: "scatter",
	LayoutStars:   "stars",
	LayoutRing:    "ring",
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("layout(%d)", l)
}

// ParseLayout is the inverse of Layout.String
func ParseLayout(s string) (Layout, error) {
	for i, name := range layoutNames {
		if name == s {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown layout %q", ErrInvalidConfig, s)
}

// ForceMode is the sign of the pointer interaction force
type ForceMode int8

const (
	ForceAttract ForceMode = 1
	ForceRepel   ForceMode = -1
)

func (m ForceMode) String() string {
	if m == ForceRepel {
		return "repel"
	}
	return "attract"
}

// ParseForceMode accepts "attract" or "repel"
func ParseForceMode(s string) (ForceMode, error) {
	switch s {
	case "attract":
		return ForceAttract, nil
	case "repel":
		return ForceRepel, nil
	}
	return 0, fmt.Errorf("%w: unknown force mode %q", ErrInvalidConfig, s)
}

// Integrator selects the per-frame update rule
type Integrator uint8

const (
	// IntegratorVelocity springs velocity toward the drifting target, then damps and integrates
	IntegratorVelocity Integrator = iota
	// IntegratorPosition integrates and damps velocity, then pulls position straight toward base
	IntegratorPosition
)

// Drift is the idle wandering of each particle's target
type Drift struct {
	Speed     float64 // rad/ms
	Amplitude float64 // px; per-axis amplitude drawn in [Amplitude/2, Amplitude)
}

// Breath is the periodic alpha pulse: alpha = base * (Offset + Range*sin(t*speed + phase))
type Breath struct {
	Speed  float64 // rad/ms, used when the particle has no own speed
	Offset float64
	Range  float64
	// SpeedMin and SpeedMax, when SpeedMax > 0, give each particle its own speed (star twinkle)
	SpeedMin float64
	SpeedMax float64
}

// Pointer is the cursor interaction
type Pointer struct {
	Radius float64
	Force  float64
	Mode   ForceMode
}

// Connections are the pairwise lines between nearby particles
type Connections struct {
	Distance    float64 // zero disables the pass
	Alpha       float64
	Width       float64
	CursorBoost float64
	Color       paint.Color
}

// Ring is the geometry of LayoutRing
type Ring struct {
	Rows      int
	Radius    float64
	Thickness float64
}

// Config is the full tuning of one scene; every constant that shapes the visual feel lives here
type Config struct {
	Name   string
	Seed   int64
	Layout Layout
	// Symbols draws stroked shapes instead of filled dots in LayoutScatter
	Symbols bool

	BaseCount        int
	ReferenceWidth   float64
	MinCountFraction float64
	EdgeInset        float64

	Palette      paint.Palette
	ParticleSize float64
	CoreMinSize  float64 // lower bound of the drawn dot radius
	SizeMin      float64
	SizeMax      float64
	AlphaMin     float64
	AlphaMax     float64
	GlowSize     float64
	GlowAlpha    float64
	StrokeWidth  float64

	Drift         Drift
	Breath        Breath
	RotationSpeed float64
	Pointer       Pointer
	Spring        float64
	Damping       float64
	Integrator    Integrator

	Connections Connections
	Ring        Ring

	MaxFrameDelta time.Duration
}

// ApplyDefaults fills zero-valued shared tunables from parameter
func (c *Config) ApplyDefaults() {
	if c.ReferenceWidth <= 0 {
		c.ReferenceWidth = parameter.FieldReferenceWidth
	}
	if c.MinCountFraction <= 0 {
		c.MinCountFraction = parameter.FieldMinCountFraction
	}
	if c.MaxFrameDelta <= 0 {
		c.MaxFrameDelta = parameter.MaxFrameDelta
	}
	if c.Pointer.Mode == 0 {
		c.Pointer.Mode = ForceAttract
	}
}

// Validate reports the first tunable outside its stable range
func (c *Config) Validate() error {
	switch {
	case c.BaseCount < 0:
		return fmt.Errorf("%w: %s: negative base count %d", ErrInvalidConfig, c.Name, c.BaseCount)
	case c.ReferenceWidth <= 0:
		return fmt.Errorf("%w: %s: reference width must be positive", ErrInvalidConfig, c.Name)
	case c.MinCountFraction <= 0 || c.MinCountFraction > 1:
		return fmt.Errorf("%w: %s: min count fraction %g outside (0,1]", ErrInvalidConfig, c.Name, c.MinCountFraction)
	case c.Damping < 0 || c.Damping >= 1:
		return fmt.Errorf("%w: %s: damping %g outside [0,1)", ErrInvalidConfig, c.Name, c.Damping)
	case c.Spring < 0 || c.Spring >= 1:
		return fmt.Errorf("%w: %s: spring %g outside [0,1)", ErrInvalidConfig, c.Name, c.Spring)
	case c.Pointer.Radius < 0:
		return fmt.Errorf("%w: %s: negative pointer radius", ErrInvalidConfig, c.Name)
	case c.Pointer.Radius >= -parameter.PointerSentinelX/2:
		return fmt.Errorf("%w: %s: pointer radius %g reaches the leave sentinel", ErrInvalidConfig, c.Name, c.Pointer.Radius)
	case c.Connections.Distance < 0:
		return fmt.Errorf("%w: %s: negative connection distance", ErrInvalidConfig, c.Name)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: %s: empty palette", ErrInvalidConfig, c.Name)
	case c.Layout == LayoutRing && c.Ring.Rows <= 0:
		return fmt.Errorf("%w: %s: ring layout needs rows", ErrInvalidConfig, c.Name)
	case c.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: %s: max frame delta must be positive", ErrInvalidConfig, c.Name)
	}
	return nil
}

// Clone returns a deep copy, palette included
func (c *Config) Clone() *Config {
	out := *c
	out.Palette = append(paint.Palette(nil), c.Palette...)
	return &out
}
