package parameter

import "time"

// Badge orbit ceremony timeline (seconds unless typed as Duration)
const (
	// CeremonyViewportReference is the viewport width below which ceremony geometry shrinks
	CeremonyViewportReference = 768.0

	CeremonyBaseRadius   = 80.0
	CeremonyRadiusStep   = 20.0
	CeremonyScatterInX   = 350.0
	CeremonyScatterInY   = 200.0
	CeremonyScatterOutX  = 400.0
	CeremonyScatterOutY  = 250.0
	CeremonyOrbitSquash  = 0.4
	CeremonyRadiusLevels = 3

	CeremonyGatherDuration = 1.2
	CeremonyGatherStagger  = 0.06
	CeremonyOrbitStart     = 1.5
	CeremonyOrbitPeriod    = 6.0
	CeremonyOrbitPeriodInc = 0.8
	CeremonyScatterStart   = 8.05
	CeremonyOrbitEnd       = 8.0
	CeremonyScatterTime    = 1.5

	CeremonyStartScale   = 0.3
	CeremonyEndScale     = 0.2
	CeremonyGatherScale  = 0.7
	CeremonyGatherWobble = 0.15

	// Orbit depth cue: z in [-1,1] maps to scale and opacity
	CeremonyDepthScale        = 0.65
	CeremonyDepthScaleRange   = 0.2
	CeremonyDepthOpacity      = 0.4
	CeremonyDepthOpacityRange = 0.3

	// CeremonyBadgeDot is the marker radius at scale 1, drawn beside or instead of the label
	CeremonyBadgeDot = 5.0

	// CeremonyChimeDuration is the length of the phase-change bell
	CeremonyChimeDuration = 400 * time.Millisecond
)

// Cursor follower
const (
	// FollowerFrequency is the ring spring angular frequency; tuned to settle like a 0.15 per-frame lerp
	FollowerFrequency = 9.0
	// FollowerDamping is the ring spring damping ratio (1 = critical)
	FollowerDamping   = 1.0
	FollowerRingSize  = 28.0
	FollowerDotSize   = 6.0
	// FollowerRingWidth is the ring stroke in CSS px
	FollowerRingWidth = 1.5
)
