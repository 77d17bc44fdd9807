package parameter

import "time"

// Constellation: hero background, attraction, blue/gold dots with connective lines
const (
	ConstellationSeed               = 44444
	ConstellationCount              = 120
	ConstellationParticleSize       = 2.4
	ConstellationSizeMin            = 0.7
	ConstellationSizeMax            = 1.3
	ConstellationAlphaMin           = 0.4
	ConstellationAlphaMax           = 0.9
	ConstellationGlowSize           = 6.0
	ConstellationGlowAlpha          = 0.2
	ConstellationConnectionDistance = 160.0
	ConstellationConnectionAlpha    = 0.2
	ConstellationConnectionWidth    = 0.6
	ConstellationConnectionBoost    = 0.25
	ConstellationCursorRadius       = 180.0
	ConstellationCursorForce        = 0.4
	ConstellationDriftSpeed         = 0.0006
	ConstellationDriftAmplitude     = 20.0
	ConstellationBreathSpeed        = 0.0012
	ConstellationBreathOffset       = 0.65
	ConstellationBreathRange        = 0.4
	ConstellationSpring             = 0.012
	ConstellationDamping            = 0.96
)

// Lab: denser amber field with stronger attraction
const (
	LabSeed               = 77701
	LabCount              = 220
	LabParticleSize       = 2.8
	LabSizeMin            = 0.8
	LabSizeMax            = 1.4
	LabAlphaMin           = 0.5
	LabAlphaMax           = 1.0
	LabGlowSize           = 8.0
	LabGlowAlpha          = 0.25
	LabConnectionDistance = 140.0
	LabConnectionAlpha    = 0.35
	LabConnectionWidth    = 0.8
	LabConnectionBoost    = 0.3
	LabCursorRadius       = 200.0
	LabCursorForce        = 0.5
	LabDriftSpeed         = 0.0008
	LabDriftAmplitude     = 25.0
	LabBreathSpeed        = 0.0015
	LabBreathOffset       = 0.65
	LabBreathRange        = 0.45
	LabSpring             = 0.015
	LabDamping            = 0.97
)

// Arena: rotating stroked symbols pushed away from the cursor, no connective lines
const (
	ArenaSeed           = 33333
	ArenaCount          = 180
	ArenaSymbolSize     = 14.0
	ArenaSizeMin        = 0.6
	ArenaSizeMax        = 1.4
	ArenaAlphaMin       = 0.4
	ArenaAlphaMax       = 0.9
	ArenaGlowSize       = 16.0
	ArenaGlowAlpha      = 0.15
	ArenaStrokeWidth    = 1.5
	ArenaCursorRadius   = 180.0
	ArenaCursorForce    = 0.3
	ArenaDriftSpeed     = 0.0006
	ArenaDriftAmplitude = 30.0
	ArenaRotationSpeed  = 0.0003
	ArenaBreathSpeed    = 0.0015
	ArenaBreathOffset   = 0.7
	ArenaBreathRange    = 0.3
	ArenaSpring         = 0.012
	ArenaDamping        = 0.96
)

// Starfield: finale backdrop, static twinkling stars without physics
const (
	StarfieldSeed          = 99999
	StarfieldCount         = 400
	StarfieldSizeMin       = 0.5
	StarfieldSizeMax       = 2.0
	StarfieldAlphaMin      = 0.3
	StarfieldAlphaMax      = 1.0
	StarfieldTwinkleMin    = 0.0008
	StarfieldTwinkleMax    = 0.003
	StarfieldTwinkleOffset = 0.5
	StarfieldTwinkleRange  = 0.5
)

// Ring: hero particle ring, crisp pixels with a rippling alpha wave and cursor repulsion
const (
	RingSeed              = 42069
	RingCount             = 90
	RingRows              = 35
	RingRadius            = 120.0
	RingThickness         = 120.0
	RingParticleSize      = 2.0
	RingAlphaMin          = 0.1
	RingAlphaMax          = 1.0
	RingRipplePeriod      = 6000 * time.Millisecond
	RingRippleOffset      = 0.75
	RingRippleRange       = 0.25
	RingInteractionRadius = 150.0
	RingForce             = 3.0
	RingDamping           = 0.92
	RingSpring            = 0.08
)
