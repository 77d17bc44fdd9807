package parameter

import "time"

// Audio output
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer; sets chime latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default linear gain, 0..1
	AudioMasterVolume = 0.5
)

// Gather chime: rising two-note figure
const (
	GatherNote1Duration = 90 * time.Millisecond
	GatherNote2Duration = 310 * time.Millisecond
	GatherAttack        = 5 * time.Millisecond
	GatherNote1Release  = 40 * time.Millisecond
	GatherNote2Release  = 250 * time.Millisecond
	GatherNote1Freq     = 659.25 // E5
	GatherNote2Freq     = 987.77 // B5
)

// Orbit chime: bell with an octave overtone
const (
	BellAttack             = 5 * time.Millisecond
	BellFundamentalRelease = 350 * time.Millisecond
	BellOvertoneRelease    = 150 * time.Millisecond
	BellFreq               = 880.0 // A5
	BellOvertoneMix        = 0.3
)

// Scatter chime: filtered noise swell
const (
	WhooshAttack  = 200 * time.Millisecond
	WhooshRelease = 200 * time.Millisecond
	WhooshSeed    = 0x5eed
)
