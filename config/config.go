// Package config resolves process settings: environment first, then command-line flags
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/constellation/audio"
	"github.com/lixenwraith/constellation/scene"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds command configuration
type Config struct {
	Scene     string `env:"CONSTELLATION_SCENE"     envDefault:"constellation"`
	Overrides string `env:"CONSTELLATION_OVERRIDES"`
	Debug     bool   `env:"CONSTELLATION_DEBUG"`

	Sound  bool    `env:"CONSTELLATION_SOUND"`
	Volume float64 `env:"CONSTELLATION_VOLUME" envDefault:"0.5"`

	FPS int `env:"CONSTELLATION_FPS" envDefault:"60"`

	// Snapshot, when set, renders headless to this PNG path instead of the terminal
	Snapshot string        `env:"CONSTELLATION_SNAPSHOT"`
	Frames   int           `env:"CONSTELLATION_FRAMES"   envDefault:"120"`
	Width    float64       `env:"CONSTELLATION_WIDTH"    envDefault:"1280"`
	Height   float64       `env:"CONSTELLATION_HEIGHT"   envDefault:"720"`
	DPR      float64       `env:"CONSTELLATION_DPR"      envDefault:"1"`
	Step     time.Duration `env:"CONSTELLATION_STEP"     envDefault:"16ms"`
}

// ParseConfig reads the environment, then lets fs flags override it, then validates
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene preset: "+fmt.Sprint(scene.Names()))
	fs.StringVar(&cfg.Overrides, "overrides", cfg.Overrides, "TOML file with per-scene tuning overrides")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging to file")
	fs.BoolVar(&cfg.Sound, "sound", cfg.Sound, "play ceremony chimes")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "chime volume, 0..1")
	fs.IntVar(&cfg.FPS, "fps", cfg.FPS, "terminal frame rate")
	fs.StringVar(&cfg.Snapshot, "snapshot", cfg.Snapshot, "render headless and write a PNG to this path")
	fs.IntVar(&cfg.Frames, "frames", cfg.Frames, "frames to simulate before the snapshot")
	fs.Float64Var(&cfg.Width, "width", cfg.Width, "snapshot width in CSS px")
	fs.Float64Var(&cfg.Height, "height", cfg.Height, "snapshot height in CSS px")
	fs.Float64Var(&cfg.DPR, "dpr", cfg.DPR, "snapshot device pixel ratio")
	fs.DurationVar(&cfg.Step, "step", cfg.Step, "simulated time per snapshot frame")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and that the scene exists
func (c Config) Validate() error {
	if _, err := scene.Lookup(c.Scene); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch {
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, c.Volume)
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: fps %d outside [1,240]", ErrInvalid, c.FPS)
	}
	if c.Headless() {
		switch {
		case c.Frames < 1:
			return fmt.Errorf("%w: frames must be positive", ErrInvalid)
		case c.Width <= 0 || c.Height <= 0:
			return fmt.Errorf("%w: snapshot size %vx%v", ErrInvalid, c.Width, c.Height)
		case c.DPR <= 0:
			return fmt.Errorf("%w: dpr %v", ErrInvalid, c.DPR)
		case c.Step <= 0:
			return fmt.Errorf("%w: step %v", ErrInvalid, c.Step)
		}
	}
	return nil
}

// Headless reports whether a PNG snapshot replaces the terminal host
func (c Config) Headless() bool {
	return c.Snapshot != ""
}

// FrameInterval is the ticker period for the terminal host
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Audio maps the sound settings onto the chime player config
func (c Config) Audio() audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.Sound && !c.Headless()
	a.Volume = c.Volume
	return a
}
