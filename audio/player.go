package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/constellation/ceremony"
	"github.com/lixenwraith/constellation/parameter"
)

// Config for the chime player
type Config struct {
	Enabled    bool
	Volume     float64 // linear, 0..1
	SampleRate int
}

// DefaultConfig returns chimes disabled at the default volume
func DefaultConfig() Config {
	return Config{
		Volume:     parameter.AudioMasterVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// speaker hooks, replaced in tests
var (
	speakerInit   = speaker.Init
	speakerPlay   = speaker.Play
	speakerLock   = speaker.Lock
	speakerUnlock = speaker.Unlock
)

// Player mixes ceremony chimes onto the speaker
// All methods are safe on a disabled or uninitialized player
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
	played      int
}

// NewPlayer creates a player; Init opens the device
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	return &Player{cfg: cfg, mixer: &beep.Mixer{}}
}

// Init opens the speaker; a no-op when disabled or already open
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled || p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speakerInit(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speakerPlay(p.mixer)
	p.initialized = true
	return nil
}

// OnPhase plays the chime for ph; matches ceremony.Overlay.OnPhase
func (p *Player) OnPhase(ph ceremony.Phase) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := ChimeFor(ph, beep.SampleRate(p.cfg.SampleRate), p.cfg.Volume)
	if s == nil {
		return
	}

	speakerLock()
	p.mixer.Add(s)
	speakerUnlock()
	p.played++
}

// Played counts chimes queued since Init
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Close silences all chimes
// beep has no speaker close, clearing the mixer leaves it idle
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speakerLock()
	p.mixer.Clear()
	speakerUnlock()
	p.initialized = false
}
