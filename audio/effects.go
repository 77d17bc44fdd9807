package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/constellation/ceremony"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/rng"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rng.Stream
}

// NewOscillator creates a new oscillator for wave generation
// Noise is seeded so a chime renders identically every time
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	o := &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
	if wave == WaveNoise {
		o.noise = rng.New(parameter.WhooshSeed)
	}
	return o
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Next()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain; math.Log2(0) is -Inf so zero maps to Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// GatherChime rises a fifth as the badges converge
func GatherChime(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.GatherNote1Freq, parameter.GatherNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.GatherNote1Duration, parameter.GatherAttack, parameter.GatherNote1Release, rate)

	n2 := NewOscillator(parameter.GatherNote2Freq, parameter.GatherNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.GatherNote2Duration, parameter.GatherAttack, parameter.GatherNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// BellChime is a sine bell at freq plus its octave
func BellChime(rate beep.SampleRate, freq float64) beep.Streamer {
	d := parameter.CeremonyChimeDuration

	fund := NewOscillator(freq, d, WaveSine, rate)
	fundShaped := NewEnvelope(fund, d, parameter.BellAttack, parameter.BellFundamentalRelease, rate)

	over := NewOscillator(freq*2, d, WaveSine, rate)
	overShaped := NewEnvelope(over, d, parameter.BellAttack, parameter.BellOvertoneRelease, rate)

	return beep.Mix(
		newVolume(fundShaped, 1-parameter.BellOvertoneMix),
		newVolume(overShaped, parameter.BellOvertoneMix),
	)
}

// WhooshChime is a noise swell for the scatter
func WhooshChime(rate beep.SampleRate) beep.Streamer {
	d := parameter.CeremonyChimeDuration
	noise := NewOscillator(0, d, WaveNoise, rate)
	return newVolume(NewEnvelope(noise, d, parameter.WhooshAttack, parameter.WhooshRelease, rate), 0.4)
}

// ChimeFor returns the streamer announcing a ceremony phase, scaled by vol
// Phases without a chime return nil
func ChimeFor(ph ceremony.Phase, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch ph {
	case ceremony.PhaseGather:
		s = GatherChime(rate)
	case ceremony.PhaseOrbit:
		s = BellChime(rate, parameter.BellFreq)
	case ceremony.PhaseScatter:
		s = WhooshChime(rate)
	default:
		return nil
	}
	return newVolume(s, vol)
}
