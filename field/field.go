package field

import (
	"math"

	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/rng"
	"github.com/lixenwraith/constellation/vmath"
)

const tau = 2 * math.Pi

// CountScale is clamp(width/referenceWidth, minFraction, 1)
func CountScale(width float64, cfg *Config) float64 {
	return vmath.Clamp(width/cfg.ReferenceWidth, cfg.MinCountFraction, 1)
}

// Count returns the particle count for a viewport width; non-positive widths have no particles
func Count(width float64, cfg *Config) int {
	if width <= 0 || cfg.BaseCount <= 0 {
		return 0
	}
	return int(math.Floor(float64(cfg.BaseCount) * CountScale(width, cfg)))
}

// Initialize builds the field for a viewport; identical arguments yield identical fields
// A zero-area viewport yields an empty field
func Initialize(width, height float64, seed int64, cfg *Config) []Particle {
	if width <= 0 || height <= 0 {
		return nil
	}

	s := rng.New(seed)
	switch cfg.Layout {
	case LayoutStars:
		return initStars(s, width, height, cfg)
	case LayoutRing:
		return initRing(s, width, height, cfg)
	default:
		return initScatter(s, width, height, cfg)
	}
}

// initScatter draws, per particle: x, y, alpha, size, color, then the dot or symbol tail
func initScatter(s *rng.Stream, width, height float64, cfg *Config) []Particle {
	n := Count(width, cfg)
	particles := make([]Particle, 0, n)
	inset := cfg.EdgeInset
	ampMin := cfg.Drift.Amplitude * parameter.FieldDriftAmpMinFraction

	for i := 0; i < n; i++ {
		x := rng.Range(s, inset, width-inset)
		y := rng.Range(s, inset, height-inset)
		baseAlpha := rng.Range(s, cfg.AlphaMin, cfg.AlphaMax)

		p := Particle{
			X:         x,
			Y:         y,
			BaseX:     x,
			BaseY:     y,
			BaseAlpha: baseAlpha,
			Alpha:     baseAlpha,
		}
		p.Size = cfg.ParticleSize * rng.Range(s, cfg.SizeMin, cfg.SizeMax)
		p.Color = rng.Pick(s, cfg.Palette)

		if cfg.Symbols {
			p.Shape = SymbolShape(rng.IntRange(s, 0, 3))
			p.RotationPhase = rng.Range(s, 0, tau)
			p.DriftPhase = rng.Range(s, 0, tau)
			p.DriftAmpX = rng.Range(s, ampMin, cfg.Drift.Amplitude)
			p.DriftAmpY = rng.Range(s, ampMin, cfg.Drift.Amplitude)
			// Symbols breathe in step with their drift
			p.BreathPhase = p.DriftPhase
		} else {
			p.Shape = ShapeDot
			p.DriftPhase = rng.Range(s, 0, tau)
			p.DriftAmpX = rng.Range(s, ampMin, cfg.Drift.Amplitude)
			p.DriftAmpY = rng.Range(s, ampMin, cfg.Drift.Amplitude)
			p.BreathPhase = rng.Range(s, 0, tau)
		}

		particles = append(particles, p)
	}
	return particles
}

// initStars draws, per star: x, y, size, alpha, twinkle speed, twinkle phase
func initStars(s *rng.Stream, width, height float64, cfg *Config) []Particle {
	n := Count(width, cfg)
	particles := make([]Particle, 0, n)
	color := cfg.Palette.At(0)

	for i := 0; i < n; i++ {
		x := rng.Range(s, 0, width)
		y := rng.Range(s, 0, height)
		size := cfg.ParticleSize * rng.Range(s, cfg.SizeMin, cfg.SizeMax)
		alpha := rng.Range(s, cfg.AlphaMin, cfg.AlphaMax)

		p := Particle{
			X:         x,
			Y:         y,
			BaseX:     x,
			BaseY:     y,
			Size:      size,
			Color:     color,
			BaseAlpha: alpha,
			Alpha:     alpha,
			Shape:     ShapeDot,
		}
		if cfg.Breath.SpeedMax > 0 {
			p.BreathSpeed = rng.Range(s, cfg.Breath.SpeedMin, cfg.Breath.SpeedMax)
		}
		p.BreathPhase = rng.Range(s, 0, tau)

		particles = append(particles, p)
	}
	return particles
}

// initRing draws, per particle: angle jitter, radius jitter, alpha, color, ripple phase
func initRing(s *rng.Stream, width, height float64, cfg *Config) []Particle {
	countScale := CountScale(width, cfg)
	perRow := int(math.Floor(float64(cfg.BaseCount) * countScale))
	rows := int(math.Floor(float64(cfg.Ring.Rows) * countScale))
	if perRow <= 0 || rows <= 0 {
		return nil
	}

	scale := math.Min(width, height) / parameter.FieldRingReferenceSize
	radius := cfg.Ring.Radius * scale
	thickness := cfg.Ring.Thickness * scale
	cx, cy := width/2, height/2
	size := cfg.ParticleSize * scale

	total := 0
	for row := 0; row < rows; row++ {
		total += ringRowCount(perRow, row)
	}
	particles := make([]Particle, 0, total)

	for row := 0; row < rows; row++ {
		rowRadius := radius + thickness/float64(rows)*float64(row)
		n := ringRowCount(perRow, row)

		for i := 0; i < n; i++ {
			angle := tau*float64(i)/float64(n) +
				rng.Range(s, -parameter.FieldRingAngleJitter, parameter.FieldRingAngleJitter)
			r := rowRadius + rng.Range(s, -parameter.FieldRingRadiusJitter, parameter.FieldRingRadiusJitter)*scale

			sin, cos := math.Sincos(angle)
			x := cx + cos*r
			y := cy + sin*r
			alpha := rng.Range(s, cfg.AlphaMin, cfg.AlphaMax)
			color := rng.Pick(s, cfg.Palette)
			phase := rng.Range(s, 0, tau)

			particles = append(particles, Particle{
				X:           x,
				Y:           y,
				BaseX:       x,
				BaseY:       y,
				Size:        size,
				Color:       color,
				BaseAlpha:   alpha,
				Alpha:       alpha,
				Shape:       ShapePixel,
				BreathPhase: phase,
			})
		}
	}
	return particles
}

func ringRowCount(perRow, row int) int {
	return int(math.Floor(float64(perRow) * (1 + float64(row)*parameter.FieldRingRowGrowth)))
}
