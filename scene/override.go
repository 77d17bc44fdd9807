package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/paint"
)

// ErrOverride wraps every failure to decode or apply an override file
var ErrOverride = errors.New("scene override")

// Override is one scene's table in an override file; unset keys keep the preset value
type Override struct {
	Seed      *int64   `toml:"seed"`
	BaseCount *int     `toml:"base_count"`
	Palette   []string `toml:"palette"`

	ParticleSize *float64 `toml:"particle_size"`
	GlowSize     *float64 `toml:"glow_size"`
	GlowAlpha    *float64 `toml:"glow_alpha"`

	DriftSpeed     *float64 `toml:"drift_speed"`
	DriftAmplitude *float64 `toml:"drift_amplitude"`
	BreathSpeed    *float64 `toml:"breath_speed"`
	BreathOffset   *float64 `toml:"breath_offset"`
	BreathRange    *float64 `toml:"breath_range"`
	RotationSpeed  *float64 `toml:"rotation_speed"`

	PointerRadius *float64 `toml:"pointer_radius"`
	PointerForce  *float64 `toml:"pointer_force"`
	PointerMode   *string  `toml:"pointer_mode"`
	Spring        *float64 `toml:"spring"`
	Damping       *float64 `toml:"damping"`

	ConnectionDistance *float64 `toml:"connection_distance"`
	ConnectionAlpha    *float64 `toml:"connection_alpha"`
	ConnectionWidth    *float64 `toml:"connection_width"`
	ConnectionBoost    *float64 `toml:"connection_boost"`
	ConnectionColor    *string  `toml:"connection_color"`

	// MaxFrameDelta is a Go duration string such as "50ms"
	MaxFrameDelta *string `toml:"max_frame_delta"`

	Ceremony *bool `toml:"ceremony"`
	Follower *bool `toml:"follower"`
}

// Overrides maps scene names to their tables
type Overrides map[string]Override

// DecodeOverrides parses an override document; unknown keys are rejected
func DecodeOverrides(r io.Reader) (Overrides, error) {
	var out Overrides
	md, err := toml.NewDecoder(r).Decode(&out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverride, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrOverride, strings.Join(keys, ", "))
	}
	for name := range out {
		if _, ok := registry[name]; !ok {
			return nil, fmt.Errorf("%w: %w: %q", ErrOverride, ErrUnknownScene, name)
		}
	}
	return out, nil
}

// LoadOverrides reads an override file from disk
func LoadOverrides(path string) (Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOverride, err)
	}
	defer f.Close()
	return DecodeOverrides(f)
}

// Apply returns a copy of s with the override for s.Name applied and validated
func (o Overrides) Apply(s Scene) (Scene, error) {
	ov, ok := o[s.Name]
	if !ok {
		return s, nil
	}
	return ov.Apply(s)
}

// Apply returns a tuned copy of s; the input is not modified
func (ov Override) Apply(s Scene) (Scene, error) {
	s = s.Clone()
	cfg := s.Field

	setInt64(&cfg.Seed, ov.Seed)
	setInt(&cfg.BaseCount, ov.BaseCount)
	if len(ov.Palette) > 0 {
		p, err := paint.ParsePalette(ov.Palette)
		if err != nil {
			return s, fmt.Errorf("%w: %s palette: %w", ErrOverride, s.Name, err)
		}
		cfg.Palette = p
	}

	setFloat(&cfg.ParticleSize, ov.ParticleSize)
	setFloat(&cfg.GlowSize, ov.GlowSize)
	setFloat(&cfg.GlowAlpha, ov.GlowAlpha)
	setFloat(&cfg.Drift.Speed, ov.DriftSpeed)
	setFloat(&cfg.Drift.Amplitude, ov.DriftAmplitude)
	setFloat(&cfg.Breath.Speed, ov.BreathSpeed)
	setFloat(&cfg.Breath.Offset, ov.BreathOffset)
	setFloat(&cfg.Breath.Range, ov.BreathRange)
	setFloat(&cfg.RotationSpeed, ov.RotationSpeed)
	setFloat(&cfg.Pointer.Radius, ov.PointerRadius)
	setFloat(&cfg.Pointer.Force, ov.PointerForce)
	setFloat(&cfg.Spring, ov.Spring)
	setFloat(&cfg.Damping, ov.Damping)
	setFloat(&cfg.Connections.Distance, ov.ConnectionDistance)
	setFloat(&cfg.Connections.Alpha, ov.ConnectionAlpha)
	setFloat(&cfg.Connections.Width, ov.ConnectionWidth)
	setFloat(&cfg.Connections.CursorBoost, ov.ConnectionBoost)

	if ov.PointerMode != nil {
		m, err := field.ParseForceMode(*ov.PointerMode)
		if err != nil {
			return s, fmt.Errorf("%w: %s: %w", ErrOverride, s.Name, err)
		}
		cfg.Pointer.Mode = m
	}
	if ov.ConnectionColor != nil {
		c, err := paint.Parse(*ov.ConnectionColor)
		if err != nil {
			return s, fmt.Errorf("%w: %s connection color: %w", ErrOverride, s.Name, err)
		}
		cfg.Connections.Color = c
	}
	if ov.MaxFrameDelta != nil {
		d, err := time.ParseDuration(*ov.MaxFrameDelta)
		if err != nil {
			return s, fmt.Errorf("%w: %s max_frame_delta: %w", ErrOverride, s.Name, err)
		}
		cfg.MaxFrameDelta = d
	}
	if ov.Ceremony != nil {
		s.Ceremony = *ov.Ceremony
	}
	if ov.Follower != nil {
		s.Follower = *ov.Follower
	}

	if err := cfg.Validate(); err != nil {
		return s, fmt.Errorf("%w: %w", ErrOverride, err)
	}
	return s, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setInt64(dst *int64, v *int64) {
	if v != nil {
		*dst = *v
	}
}
