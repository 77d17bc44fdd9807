package parameter

// Particle Field Model
const (
	// FieldReferenceWidth is the viewport width at which the full base count is used
	FieldReferenceWidth = 1920.0

	// FieldMinCountFraction floors the count scale so narrow viewports still render a field
	FieldMinCountFraction = 0.35

	// FieldEdgeInset keeps scattered particles away from the surface edges (px)
	FieldEdgeInset = 40.0

	// FieldDriftAmpMinFraction is the lower bound of per-axis drift amplitude as a fraction of the scene amplitude
	FieldDriftAmpMinFraction = 0.5

	// FieldRingReferenceSize is the min(width, height) at which ring geometry is unscaled
	FieldRingReferenceSize = 800.0

	// FieldRingRowGrowth is the fractional count increase per successive ring row
	FieldRingRowGrowth = 0.1

	// FieldRingAngleJitter is the max angular offset applied per ring particle (rad)
	FieldRingAngleJitter = 0.05

	// FieldRingRadiusJitter is the max radial offset applied per ring particle (px, pre-scale)
	FieldRingRadiusJitter = 5.0
)

// Idle drift axis coupling: the Y axis runs at a fraction of the X speed with a fixed phase lead
const (
	DriftYSpeedFactor = 0.7
	DriftYPhaseOffset = 1.3
)
