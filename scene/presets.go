package scene

import (
	"math"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/parameter/visual"
)

// Constellation is the blue and gold attraction field with connective lines
func Constellation() Scene {
	cfg := &field.Config{
		Name:         "constellation",
		Seed:         parameter.ConstellationSeed,
		Layout:       field.LayoutScatter,
		BaseCount:    parameter.ConstellationCount,
		EdgeInset:    parameter.FieldEdgeInset,
		Palette:      paint.MustPalette(visual.ConstellationPalette...),
		ParticleSize: parameter.ConstellationParticleSize,
		CoreMinSize:  1,
		SizeMin:      parameter.ConstellationSizeMin,
		SizeMax:      parameter.ConstellationSizeMax,
		AlphaMin:     parameter.ConstellationAlphaMin,
		AlphaMax:     parameter.ConstellationAlphaMax,
		GlowSize:     parameter.ConstellationGlowSize,
		GlowAlpha:    parameter.ConstellationGlowAlpha,
		Drift: field.Drift{
			Speed:     parameter.ConstellationDriftSpeed,
			Amplitude: parameter.ConstellationDriftAmplitude,
		},
		Breath: field.Breath{
			Speed:  parameter.ConstellationBreathSpeed,
			Offset: parameter.ConstellationBreathOffset,
			Range:  parameter.ConstellationBreathRange,
		},
		Pointer: field.Pointer{
			Radius: parameter.ConstellationCursorRadius,
			Force:  parameter.ConstellationCursorForce,
			Mode:   field.ForceAttract,
		},
		Spring:  parameter.ConstellationSpring,
		Damping: parameter.ConstellationDamping,
		Connections: field.Connections{
			Distance:    parameter.ConstellationConnectionDistance,
			Alpha:       parameter.ConstellationConnectionAlpha,
			Width:       parameter.ConstellationConnectionWidth,
			CursorBoost: parameter.ConstellationConnectionBoost,
			Color:       paint.MustParse(visual.ConstellationLineColor),
		},
	}
	cfg.ApplyDefaults()
	return Scene{Name: cfg.Name, Field: cfg, Follower: true}
}

// Lab is the denser amber variant
func Lab() Scene {
	cfg := &field.Config{
		Name:         "lab",
		Seed:         parameter.LabSeed,
		Layout:       field.LayoutScatter,
		BaseCount:    parameter.LabCount,
		EdgeInset:    parameter.FieldEdgeInset,
		Palette:      paint.MustPalette(visual.LabPalette...),
		ParticleSize: parameter.LabParticleSize,
		CoreMinSize:  1,
		SizeMin:      parameter.LabSizeMin,
		SizeMax:      parameter.LabSizeMax,
		AlphaMin:     parameter.LabAlphaMin,
		AlphaMax:     parameter.LabAlphaMax,
		GlowSize:     parameter.LabGlowSize,
		GlowAlpha:    parameter.LabGlowAlpha,
		Drift: field.Drift{
			Speed:     parameter.LabDriftSpeed,
			Amplitude: parameter.LabDriftAmplitude,
		},
		Breath: field.Breath{
			Speed:  parameter.LabBreathSpeed,
			Offset: parameter.LabBreathOffset,
			Range:  parameter.LabBreathRange,
		},
		Pointer: field.Pointer{
			Radius: parameter.LabCursorRadius,
			Force:  parameter.LabCursorForce,
			Mode:   field.ForceAttract,
		},
		Spring:  parameter.LabSpring,
		Damping: parameter.LabDamping,
		Connections: field.Connections{
			Distance:    parameter.LabConnectionDistance,
			Alpha:       parameter.LabConnectionAlpha,
			Width:       parameter.LabConnectionWidth,
			CursorBoost: parameter.LabConnectionBoost,
			Color:       paint.MustParse(visual.LabLineColor),
		},
	}
	cfg.ApplyDefaults()
	return Scene{Name: cfg.Name, Field: cfg, Follower: true}
}

// Arena is rotating stroked symbols repelled by the cursor
func Arena() Scene {
	cfg := &field.Config{
		Name:         "arena",
		Seed:         parameter.ArenaSeed,
		Layout:       field.LayoutScatter,
		Symbols:      true,
		BaseCount:    parameter.ArenaCount,
		EdgeInset:    parameter.FieldEdgeInset,
		Palette:      paint.MustPalette(visual.ArenaPalette...),
		ParticleSize: parameter.ArenaSymbolSize,
		SizeMin:      parameter.ArenaSizeMin,
		SizeMax:      parameter.ArenaSizeMax,
		AlphaMin:     parameter.ArenaAlphaMin,
		AlphaMax:     parameter.ArenaAlphaMax,
		GlowSize:     parameter.ArenaGlowSize,
		GlowAlpha:    parameter.ArenaGlowAlpha,
		StrokeWidth:  parameter.ArenaStrokeWidth,
		Drift: field.Drift{
			Speed:     parameter.ArenaDriftSpeed,
			Amplitude: parameter.ArenaDriftAmplitude,
		},
		Breath: field.Breath{
			Speed:  parameter.ArenaBreathSpeed,
			Offset: parameter.ArenaBreathOffset,
			Range:  parameter.ArenaBreathRange,
		},
		RotationSpeed: parameter.ArenaRotationSpeed,
		Pointer: field.Pointer{
			Radius: parameter.ArenaCursorRadius,
			Force:  parameter.ArenaCursorForce,
			Mode:   field.ForceRepel,
		},
		Spring:  parameter.ArenaSpring,
		Damping: parameter.ArenaDamping,
	}
	cfg.ApplyDefaults()
	return Scene{Name: cfg.Name, Field: cfg, Follower: true}
}

// Starfield is the static twinkling backdrop of the badge ceremony
func Starfield() Scene {
	cfg := &field.Config{
		Name:         "starfield",
		Seed:         parameter.StarfieldSeed,
		Layout:       field.LayoutStars,
		BaseCount:    parameter.StarfieldCount,
		Palette:      paint.MustPalette(visual.StarfieldPalette...),
		ParticleSize: 1,
		SizeMin:      parameter.StarfieldSizeMin,
		SizeMax:      parameter.StarfieldSizeMax,
		AlphaMin:     parameter.StarfieldAlphaMin,
		AlphaMax:     parameter.StarfieldAlphaMax,
		Breath: field.Breath{
			Offset:   parameter.StarfieldTwinkleOffset,
			Range:    parameter.StarfieldTwinkleRange,
			SpeedMin: parameter.StarfieldTwinkleMin,
			SpeedMax: parameter.StarfieldTwinkleMax,
		},
	}
	cfg.ApplyDefaults()
	return Scene{Name: cfg.Name, Field: cfg, Ceremony: true}
}

// Ring is the hero ring of crisp pixels with a rippling alpha wave
func Ring() Scene {
	cfg := &field.Config{
		Name:         "ring",
		Seed:         parameter.RingSeed,
		Layout:       field.LayoutRing,
		BaseCount:    parameter.RingCount,
		Palette:      paint.MustPalette(visual.RingPalette...),
		ParticleSize: parameter.RingParticleSize,
		AlphaMin:     parameter.RingAlphaMin,
		AlphaMax:     parameter.RingAlphaMax,
		Breath: field.Breath{
			Speed:  2 * math.Pi / float64(parameter.RingRipplePeriod.Milliseconds()),
			Offset: parameter.RingRippleOffset,
			Range:  parameter.RingRippleRange,
		},
		Pointer: field.Pointer{
			Radius: parameter.RingInteractionRadius,
			Force:  parameter.RingForce,
			Mode:   field.ForceRepel,
		},
		Spring:     parameter.RingSpring,
		Damping:    parameter.RingDamping,
		Integrator: field.IntegratorPosition,
		Ring: field.Ring{
			Rows:      parameter.RingRows,
			Radius:    parameter.RingRadius,
			Thickness: parameter.RingThickness,
		},
	}
	cfg.ApplyDefaults()
	return Scene{Name: cfg.Name, Field: cfg}
}
