package config

import (
	"errors"
	"flag"
	"testing"
	"time"

	"github.com/lixenwraith/constellation/scene"
)

func parse(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	fs := flag.NewFlagSet("constellation", flag.ContinueOnError)
	return ParseConfig(fs, args)
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Scene != "constellation" {
		t.Errorf("Scene = %q", cfg.Scene)
	}
	if cfg.FPS != 60 || cfg.FrameInterval() != time.Second/60 {
		t.Errorf("FPS = %d interval %v", cfg.FPS, cfg.FrameInterval())
	}
	if cfg.Headless() || cfg.Sound || cfg.Debug {
		t.Error("defaults should be interactive, silent and quiet")
	}
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.DPR != 1 || cfg.Step != 16*time.Millisecond {
		t.Errorf("snapshot defaults %+v", cfg)
	}
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("CONSTELLATION_SCENE", "ring")
	t.Setenv("CONSTELLATION_SOUND", "true")
	t.Setenv("CONSTELLATION_VOLUME", "0.2")
	t.Setenv("CONSTELLATION_STEP", "10ms")

	cfg, err := parse(t)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Scene != "ring" || !cfg.Sound || cfg.Volume != 0.2 || cfg.Step != 10*time.Millisecond {
		t.Errorf("env not applied: %+v", cfg)
	}
	if a := cfg.Audio(); !a.Enabled || a.Volume != 0.2 {
		t.Errorf("Audio() = %+v", a)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CONSTELLATION_SCENE", "ring")
	t.Setenv("CONSTELLATION_FPS", "30")

	cfg, err := parse(t, "-scene", "arena", "-snapshot", "out.png", "-frames", "10")
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Scene != "arena" {
		t.Errorf("Scene = %q, flag should win", cfg.Scene)
	}
	if cfg.FPS != 30 {
		t.Errorf("FPS = %d, env should survive", cfg.FPS)
	}
	if !cfg.Headless() || cfg.Frames != 10 {
		t.Errorf("headless %v frames %d", cfg.Headless(), cfg.Frames)
	}
	if cfg.Audio().Enabled {
		t.Error("headless runs never open the speaker")
	}
}

func TestParseConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown scene", []string{"-scene", "nebula"}},
		{"volume", []string{"-volume", "1.5"}},
		{"fps zero", []string{"-fps", "0"}},
		{"fps high", []string{"-fps", "1000"}},
		{"frames", []string{"-snapshot", "a.png", "-frames", "0"}},
		{"width", []string{"-snapshot", "a.png", "-width", "0"}},
		{"dpr", []string{"-snapshot", "a.png", "-dpr", "-1"}},
		{"step", []string{"-snapshot", "a.png", "-step", "0s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("err = %v, want ErrInvalid", err)
			}
		})
	}

	_, err := parse(t, "-scene", "nebula")
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("unknown scene should also match ErrUnknownScene: %v", err)
	}
}

func TestSnapshotLimitsIgnoredInteractive(t *testing.T) {
	if _, err := parse(t, "-frames", "0", "-width", "0"); err != nil {
		t.Errorf("interactive mode should ignore snapshot settings: %v", err)
	}
}

func TestParseConfigBadEnv(t *testing.T) {
	t.Setenv("CONSTELLATION_FPS", "fast")
	if _, err := parse(t); err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("err = %v, want an env parse error", err)
	}
}

func TestParseConfigBadFlag(t *testing.T) {
	fs := flag.NewFlagSet("constellation", flag.ContinueOnError)
	fs.SetOutput(discard{})
	if _, err := ParseConfig(fs, []string{"-nope"}); err == nil {
		t.Error("expected unknown flag error")
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
