package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/constellation/audio"
	"github.com/lixenwraith/constellation/ceremony"
	"github.com/lixenwraith/constellation/config"
	"github.com/lixenwraith/constellation/core"
	"github.com/lixenwraith/constellation/engine"
	"github.com/lixenwraith/constellation/follow"
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter/visual"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/render/raster"
	"github.com/lixenwraith/constellation/render/term"
	"github.com/lixenwraith/constellation/scene"
	"github.com/lixenwraith/constellation/status"
)

// app carries what every host mode shares
type app struct {
	cfg     config.Config
	scene   scene.Scene
	logger  *log.Logger
	metrics *status.Registry
	player  *audio.Player

	overlay *ceremony.Overlay
	clock   *engine.PausableClock
}

// loadScene resolves the preset and layers the optional overrides file on top
func loadScene(cfg config.Config) (scene.Scene, error) {
	sc, err := scene.Lookup(cfg.Scene)
	if err != nil {
		return scene.Scene{}, err
	}
	if cfg.Overrides == "" {
		return sc, nil
	}
	ov, err := scene.LoadOverrides(cfg.Overrides)
	if err != nil {
		return scene.Scene{}, err
	}
	return ov.Apply(sc)
}

// newCanvas builds the scene canvas with its optional ceremony and follower layers
func (a *app) newCanvas(opts engine.Options) (*engine.Canvas, error) {
	opts.Config = a.scene.Field
	opts.Logger = a.logger
	opts.Metrics = a.metrics

	c, err := engine.NewCanvas(opts)
	if err != nil {
		return nil, err
	}

	if a.scene.Ceremony {
		a.overlay = ceremony.NewOverlay()
		a.overlay.OnPhase = func(ph ceremony.Phase) {
			a.logger.Printf("ceremony %s", ph)
			a.metrics.Ints.Get("ceremony.phase").Store(int64(ph))
			if a.player != nil {
				a.player.OnPhase(ph)
			}
		}
		c.AddLayer(a.overlay, render.PriorityOverlay)
	}
	if a.scene.Follower {
		c.AddLayer(follow.New(), render.PriorityCursor)
	}
	return c, nil
}

// runSnapshot renders cfg.Frames frames on a simulated clock and writes the last one as PNG
func (a *app) runSnapshot(out io.Writer) error {
	surface := raster.NewCanvas(a.cfg.Width, a.cfg.Height, a.cfg.DPR)
	host := &engine.FixedHost{Box: engine.Rect{W: a.cfg.Width, H: a.cfg.Height}, DPR: a.cfg.DPR}
	clock := engine.NewMockTimeProvider(time.Unix(0, 0))
	sched := engine.NewManualScheduler()

	c, err := a.newCanvas(engine.Options{
		Host:      host,
		Surfaces:  engine.StaticSurface{S: surface},
		Scheduler: sched,
		Clock:     clock,
	})
	if err != nil {
		return err
	}
	if err := c.Mount(); err != nil {
		return err
	}
	defer c.Unmount()

	for i := 0; i < a.cfg.Frames; i++ {
		sched.Step(clock.Advance(a.cfg.Step))
	}

	f, err := os.Create(a.cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := surface.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	fmt.Fprintf(out, "%s: %d frames of %q\n", a.cfg.Snapshot, c.Frames(), a.scene.Name)
	_, err = a.metrics.WriteTo(out)
	return err
}

// runTerminal drives the canvas on a tcell screen until q, Esc or Ctrl-C
// Space freezes the animation clock, c replays the ceremony
func (a *app) runTerminal(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	presenter := term.NewPresenter(screen, paint.MustParse(visual.TermBackground))
	window := engine.NewWindow()
	// refreshes run on the wall clock, only the animation pauses
	a.clock = engine.NewPausableClock(nil)
	sched := engine.NewTickerScheduler(a.cfg.FrameInterval(), nil)

	c, err := a.newCanvas(engine.Options{
		Host:      presenter,
		Surfaces:  presenter,
		Scheduler: sched,
		Window:    window,
		Clock:     a.clock,
		Present:   presenter.Present,
	})
	if err != nil {
		return err
	}

	if err := a.player.Init(); err != nil {
		a.logger.Printf("audio disabled: %v", err)
	}
	defer a.player.Close()

	if err := c.Mount(); err != nil {
		return err
	}
	sched.Start()
	defer func() {
		c.Unmount()
		sched.Stop()
		a.logger.Printf("canvas %s stopped after %d frames", c.ID(), c.Frames())
		a.metrics.WriteTo(a.logger.Writer())
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if quit := a.handleEvent(ev, screen, presenter, window); quit {
			return nil
		}
	}
}

// handleEvent forwards one tcell event to the window hub and reports whether to quit
func (a *app) handleEvent(ev tcell.Event, screen tcell.Screen, presenter *term.Presenter, window *engine.Window) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
			return true
		case ev.Rune() == ' ' && a.clock != nil:
			a.logger.Printf("paused: %v", a.clock.Toggle())
		case ev.Rune() == 'c' && a.overlay != nil:
			a.overlay.Restart()
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		if !presenter.Contains(col, row) {
			window.PointerLeave()
			break
		}
		window.PointerMove(presenter.ClientPoint(col, row))
	case *tcell.EventResize:
		screen.Sync()
		window.Resize()
	case *tcell.EventFocus:
		if !ev.Focused {
			window.PointerLeave()
		}
	}
	return false
}
