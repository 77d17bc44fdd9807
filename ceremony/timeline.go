package ceremony

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

// Phase of the whole ceremony
type Phase int

const (
	PhaseGather Phase = iota
	PhaseOrbit
	PhaseScatter
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseGather:
		return "gather"
	case PhaseOrbit:
		return "orbit"
	case PhaseScatter:
		return "scatter"
	case PhaseDone:
		return "done"
	}
	return "unknown"
}

// Badge is the sampled state of one badge, offset from the ceremony center in CSS px
type Badge struct {
	X, Y    float64
	Scale   float64
	Opacity float64
	// Front is set while the badge is on the near half of its orbit
	Front bool
}

// Geometry holds the viewport-scaled distances
type Geometry struct {
	BaseRadius float64
	RadiusStep float64
	ScatterIn  vmath.Vec2
	ScatterOut vmath.Vec2
}

// GeometryFor scales the ceremony down on viewports narrower than the reference width
func GeometryFor(width float64) Geometry {
	v := 1.0
	if width > 0 && width < parameter.CeremonyViewportReference {
		v = width / parameter.CeremonyViewportReference
	}
	return Geometry{
		BaseRadius: parameter.CeremonyBaseRadius * v,
		RadiusStep: parameter.CeremonyRadiusStep * v,
		ScatterIn:  vmath.V2(parameter.CeremonyScatterInX*v, parameter.CeremonyScatterInY*v),
		ScatterOut: vmath.V2(parameter.CeremonyScatterOutX*v, parameter.CeremonyScatterOutY*v),
	}
}

// Radius of the i-th badge orbit; badges cycle through three rings
func (g Geometry) Radius(i int) float64 {
	return g.BaseRadius + float64(i%parameter.CeremonyRadiusLevels)*g.RadiusStep
}

// StartAngle spaces n badges evenly around the circle
func StartAngle(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i) / float64(n) * 2 * math.Pi
}

// OrbitPeriod in seconds; outer indices orbit slower
func OrbitPeriod(i int) float64 {
	return parameter.CeremonyOrbitPeriod + float64(i)*parameter.CeremonyOrbitPeriodInc
}

func gatherStart(i int) float64 {
	return float64(i) * parameter.CeremonyGatherStagger
}

func scatterStart(i int) float64 {
	return parameter.CeremonyScatterStart + float64(i)*parameter.CeremonyGatherStagger
}

// Duration is the time at which the last of n badges has fully scattered
func Duration(n int) float64 {
	if n <= 0 {
		return 0
	}
	return scatterStart(n-1) + parameter.CeremonyScatterTime
}

// PhaseAt reports the ceremony phase for n badges at t seconds
func PhaseAt(t float64, n int) Phase {
	switch {
	case n <= 0 || t >= Duration(n):
		return PhaseDone
	case t < parameter.CeremonyOrbitStart:
		return PhaseGather
	case t < parameter.CeremonyScatterStart:
		return PhaseOrbit
	default:
		return PhaseScatter
	}
}

// BadgeAt samples badge i of n at t seconds after the ceremony start
func BadgeAt(i, n int, t float64, g Geometry) Badge {
	a := StartAngle(i, n)
	cos, sin := math.Cos(a), math.Sin(a)

	if t >= scatterStart(i) {
		from := orbitAt(i, a, parameter.CeremonyOrbitEnd, g)
		to := Badge{
			X:     cos * g.ScatterOut.X,
			Y:     sin * g.ScatterOut.Y,
			Scale: parameter.CeremonyEndScale,
		}
		p := vmath.Power2In(vmath.Progress(t, scatterStart(i), parameter.CeremonyScatterTime))
		b := lerp(from, to, p)
		b.Front = from.Front
		return b
	}

	if t >= parameter.CeremonyOrbitStart {
		// orbit tween is killed at OrbitEnd; hold until this badge scatters
		return orbitAt(i, a, math.Min(t, parameter.CeremonyOrbitEnd), g)
	}

	r := g.Radius(i)
	from := Badge{
		X:     cos * g.ScatterIn.X,
		Y:     sin * g.ScatterIn.Y,
		Scale: parameter.CeremonyStartScale,
	}
	to := Badge{
		X:       cos * r,
		Y:       sin * r * parameter.CeremonyOrbitSquash,
		Scale:   parameter.CeremonyGatherScale + sin*parameter.CeremonyGatherWobble,
		Opacity: 1,
	}
	p := vmath.Power3Out(vmath.Progress(t, gatherStart(i), parameter.CeremonyGatherDuration))
	b := lerp(from, to, p)
	b.Front = sin > 0
	return b
}

// Badges samples all n badges into dst, reusing its storage
func Badges(dst []Badge, n int, t float64, g Geometry) []Badge {
	dst = dst[:0]
	for i := 0; i < n; i++ {
		dst = append(dst, BadgeAt(i, n, t, g))
	}
	return dst
}

func orbitAt(i int, start, t float64, g Geometry) Badge {
	r := g.Radius(i)
	angle := start + 2*math.Pi*(t-parameter.CeremonyOrbitStart)/OrbitPeriod(i)
	z := math.Sin(angle)
	return Badge{
		X:       math.Cos(angle) * r,
		Y:       z * r * parameter.CeremonyOrbitSquash,
		Scale:   parameter.CeremonyDepthScale + (z+1)*parameter.CeremonyDepthScaleRange,
		Opacity: parameter.CeremonyDepthOpacity + (z+1)*parameter.CeremonyDepthOpacityRange,
		Front:   z > 0,
	}
}

func lerp(a, b Badge, t float64) Badge {
	return Badge{
		X:       vmath.Lerp(a.X, b.X, t),
		Y:       vmath.Lerp(a.Y, b.Y, t),
		Scale:   vmath.Lerp(a.Scale, b.Scale, t),
		Opacity: vmath.Lerp(a.Opacity, b.Opacity, t),
	}
}
