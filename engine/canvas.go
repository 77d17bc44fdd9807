package engine

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/physics"
	"github.com/lixenwraith/constellation/render"
	"github.com/lixenwraith/constellation/status"
	"github.com/lixenwraith/constellation/vmath"
)

var (
	ErrNotIdle     = errors.New("canvas already mounted")
	ErrNoHost      = errors.New("canvas needs a host")
	ErrNoSurface   = errors.New("canvas needs a surface source")
	ErrNoScheduler = errors.New("canvas needs a scheduler")
)

// Options wires a canvas to its collaborators
type Options struct {
	Config    *field.Config
	Host      Host
	Surfaces  SurfaceSource
	Scheduler Scheduler
	// Window is optional; without it events are delivered by calling the canvas directly
	Window *Window
	Clock  Clock
	// Present runs after each rendered frame, still inside the frame body
	Present func(s render.Surface)
	Logger  *log.Logger
	Metrics *status.Registry
}

// Canvas owns one animated particle field and its frame loop
// Every field it touches is per-instance; canvases share nothing but the window hub
type Canvas struct {
	id  uuid.UUID
	cfg *field.Config

	host      Host
	surfaces  SurfaceSource
	scheduler Scheduler
	window    *Window
	clock     Clock
	present   func(render.Surface)
	logger    *log.Logger

	renderer *render.Renderer
	pipeline *render.Orchestrator

	// mu serializes frame bodies against lifecycle and event calls
	mu          sync.Mutex
	state       State
	handle      Handle
	unsubscribe func()

	particles []field.Particle
	pointer   vmath.Vec2
	width     float64
	height    float64
	last      time.Time
	elapsed   float64
	frame     uint64
	sized     bool

	statFrames    *atomic.Int64
	statSkipped   *atomic.Int64
	statParticles *atomic.Int64
	statResizes   *atomic.Int64
	statFrameMs   *status.AtomicFloat
	statFrameMax  *status.AtomicFloat
}

// NewCanvas validates the options and builds an idle canvas
func NewCanvas(opts Options) (*Canvas, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("%w: nil config", field.ErrInvalidConfig)
	}
	if opts.Host == nil {
		return nil, ErrNoHost
	}
	if opts.Surfaces == nil {
		return nil, ErrNoSurface
	}
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}

	cfg := opts.Config.Clone()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Canvas{
		id:        uuid.New(),
		cfg:       cfg,
		host:      opts.Host,
		surfaces:  opts.Surfaces,
		scheduler: opts.Scheduler,
		window:    opts.Window,
		clock:     opts.Clock,
		present:   opts.Present,
		logger:    opts.Logger,
		pipeline:  render.NewOrchestrator(),
		pointer:   vmath.Vec2{X: parameter.PointerSentinelX, Y: parameter.PointerSentinelY},
	}
	if c.clock == nil {
		c.clock = NewTimeProvider()
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard, "", 0)
	}

	c.renderer = render.NewRenderer(cfg)
	c.pipeline.Register(c.renderer, render.PriorityField)

	reg := opts.Metrics
	if reg == nil {
		reg = status.NewRegistry()
	}
	prefix := "canvas." + cfg.Name + "."
	c.statFrames = reg.Ints.Get(prefix + "frames")
	c.statSkipped = reg.Ints.Get(prefix + "frames.skipped")
	c.statParticles = reg.Ints.Get(prefix + "particles")
	c.statResizes = reg.Ints.Get(prefix + "resizes")
	c.statFrameMs = reg.Floats.Get(prefix + "frame_ms")
	c.statFrameMax = reg.Floats.Get(prefix + "frame_ms.max")

	return c, nil
}

// ID is a per-instance identifier used in logs
func (c *Canvas) ID() uuid.UUID {
	return c.id
}

// Config returns the canvas's private copy of the scene config
func (c *Canvas) Config() *field.Config {
	return c.cfg
}

// AddLayer registers an overlay drawn after the field; must be called before Mount
func (c *Canvas) AddLayer(l render.Layer, priority render.Priority) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pipeline.Register(l, priority)
}

// State returns the lifecycle phase
func (c *Canvas) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Mount sizes the surface, seeds the field, subscribes to the window and requests the first frame
func (c *Canvas) Mount() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateIdle {
		return fmt.Errorf("%w: %s is %s", ErrNotIdle, c.cfg.Name, c.state)
	}

	c.rebuild()
	c.last = c.clock.Now()
	c.state = StateRunning
	if c.window != nil {
		c.unsubscribe = c.window.Subscribe(c)
	}
	c.request()

	c.logger.Printf("canvas %s (%s) mounted %gx%g, %d particles", c.cfg.Name, c.id, c.width, c.height, len(c.particles))
	return nil
}

// Unmount cancels the pending frame and removes every listener
// After it returns no frame body runs for this canvas; a frame already executing completes first
func (c *Canvas) Unmount() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		c.state = StateCancelled
		return
	}
	c.state = StateCancelled
	if c.handle != 0 {
		c.scheduler.CancelFrame(c.handle)
		c.handle = 0
	}
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.logger.Printf("canvas %s (%s) unmounted after %d frames", c.cfg.Name, c.id, c.frame)
}

// Resize re-reads the host geometry and reseeds the field from scratch
func (c *Canvas) Resize() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return
	}
	c.rebuild()
	c.statResizes.Add(1)
	c.logger.Printf("canvas %s (%s) resized %gx%g, %d particles", c.cfg.Name, c.id, c.width, c.height, len(c.particles))
}

// PointerMove converts window coordinates against a fresh bounding box
func (c *Canvas) PointerMove(clientX, clientY float64) {
	box := c.host.BoundingBox()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateRunning {
		return
	}
	c.pointer = vmath.Vec2{X: clientX - box.X, Y: clientY - box.Y}
}

// PointerLeave parks the pointer at the sentinel, outside any interaction radius
func (c *Canvas) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointer = vmath.Vec2{X: parameter.PointerSentinelX, Y: parameter.PointerSentinelY}
}

// Pointer returns the surface-relative pointer position
func (c *Canvas) Pointer() vmath.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointer
}

// Particles returns a copy of the current field
func (c *Canvas) Particles() []field.Particle {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]field.Particle(nil), c.particles...)
}

// Elapsed returns the animation clock in milliseconds
func (c *Canvas) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

// Frames returns the number of frames rendered since Mount
func (c *Canvas) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// rebuild sizes the surface and reseeds; caller holds mu
func (c *Canvas) rebuild() {
	w, h := c.host.ContentSize()
	c.width, c.height = w, h
	s, ok := c.surfaces.Surface()
	if ok {
		s.Resize(w, h, c.host.DevicePixelRatio())
	}
	c.sized = ok
	c.particles = field.Initialize(w, h, c.cfg.Seed, c.cfg)
	c.statParticles.Store(int64(len(c.particles)))
}

// request schedules the next frame; caller holds mu
func (c *Canvas) request() {
	c.handle = c.scheduler.RequestFrame(c.tick)
}

// tick is the frame body: clamp delta, advance the clock, step, render, present, re-request
// The refresh timestamp only paces frames; delta comes from the canvas clock so a paused clock
// still presents frames with zero delta
func (c *Canvas) tick(time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != StateRunning {
		return
	}
	c.handle = 0
	now := c.clock.Now()

	surface, ok := c.surfaces.Surface()
	if !ok {
		c.statSkipped.Add(1)
		c.request()
		return
	}
	if !c.sized {
		surface.Resize(c.width, c.height, c.host.DevicePixelRatio())
		c.sized = true
	}

	start := time.Now()

	dt := physics.ClampDelta(now.Sub(c.last), c.cfg.MaxFrameDelta)
	c.last = now
	c.elapsed += physics.Millis(dt)

	physics.Step(c.particles, physics.Frame{Elapsed: c.elapsed, Pointer: c.pointer}, c.cfg)

	c.pipeline.RenderFrame(render.Context{
		Elapsed:   c.elapsed,
		Frame:     c.frame,
		Pointer:   c.pointer,
		Width:     c.width,
		Height:    c.height,
		Particles: c.particles,
	}, surface)

	if c.present != nil {
		c.present(surface)
	}

	c.frame++
	c.statFrames.Add(1)
	ms := physics.Millis(time.Since(start))
	c.statFrameMs.Set(ms)
	c.statFrameMax.Max(ms)

	c.request()
}
