package render

import (
	"math"
	"testing"

	"github.com/lixenwraith/constellation/field"
	"github.com/lixenwraith/constellation/paint"
	"github.com/lixenwraith/constellation/parameter"
	"github.com/lixenwraith/constellation/vmath"
)

var leave = vmath.Vec2{X: parameter.PointerSentinelX, Y: parameter.PointerSentinelY}

func dotConfig() *field.Config {
	cfg := &field.Config{
		Name:         "render",
		Palette:      paint.MustPalette("#ffffff"),
		ParticleSize: 2,
		CoreMinSize:  1,
		GlowSize:     6,
		GlowAlpha:    0.2,
		Pointer:      field.Pointer{Radius: 180, Force: 0.4},
		Connections: field.Connections{
			Distance:    160,
			Alpha:       0.2,
			Width:       0.6,
			CursorBoost: 0.25,
			Color:       paint.MustParse("rgb(80,120,200)"),
		},
		Damping: 0.96,
	}
	cfg.ApplyDefaults()
	return cfg
}

func dot(x, y, alpha float64) field.Particle {
	return field.Particle{X: x, Y: y, Size: 2, Alpha: alpha, Color: paint.White, Shape: field.ShapeDot}
}

func TestConnectionAlphaBoundary(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"ExactlyAtDistance", 160, 0},
		{"Beyond", 200, 0},
		{"Coincident", 0, 0.2},
		{"Half", 80, 0.1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConnectionAlpha(tt.dist, 160, 0.2)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ConnectionAlpha(%v) = %v, want %v", tt.dist, got, tt.want)
			}
			if tt.want == 0 && got != 0 {
				t.Errorf("expected exactly 0, got %v", got)
			}
		})
	}
}

func TestNoLineAtExactDistance(t *testing.T) {
	cfg := dotConfig()
	s := newRecordSurface()
	ps := []field.Particle{dot(0, 0, 1), dot(160, 0, 1)}
	NewRenderer(cfg).Draw(s, ps, leave)
	if n := s.count("line"); n != 0 {
		t.Errorf("drew %d lines for a pair exactly at the connection distance", n)
	}

	ps[1].X = 159.9
	NewRenderer(cfg).Draw(s, ps, leave)
	if n := s.count("line"); n != 1 {
		t.Errorf("drew %d lines for a pair just inside, want 1", n)
	}
}

func TestCursorBoostAtMidpoint(t *testing.T) {
	cfg := dotConfig()
	s := newRecordSurface()
	ps := []field.Particle{dot(0, 0, 1), dot(80, 0, 1)}

	NewRenderer(cfg).Draw(s, ps, leave)
	base := s.ops[0].color.A

	NewRenderer(cfg).Draw(s, ps, vmath.Vec2{X: 40, Y: 0})
	boosted := s.ops[0].color.A

	if want := base + 0.25; math.Abs(boosted-want) > 1e-12 {
		t.Errorf("boosted alpha = %v, want %v", boosted, want)
	}
	if want := (1 - 80.0/160) * 0.2; math.Abs(base-want) > 1e-12 {
		t.Errorf("base alpha = %v, want %v", base, want)
	}
}

func TestDrawOrderGlowThenCore(t *testing.T) {
	cfg := dotConfig()
	cfg.Connections.Distance = 0
	s := newRecordSurface()
	ps := []field.Particle{dot(10, 10, 0.5), dot(50, 50, 0.8)}
	NewRenderer(cfg).Draw(s, ps, leave)

	if s.clears != 1 {
		t.Fatalf("clears = %d, want 1", s.clears)
	}
	if len(s.ops) != 4 {
		t.Fatalf("ops = %d, want glow+core per particle", len(s.ops))
	}
	glow, core := s.ops[2], s.ops[3]
	if glow.r != 6 || math.Abs(glow.alpha-0.8*0.2) > 1e-12 {
		t.Errorf("glow r=%v alpha=%v", glow.r, glow.alpha)
	}
	if core.r != 2 || core.alpha != 0.8 {
		t.Errorf("core r=%v alpha=%v", core.r, core.alpha)
	}
	if s.GlobalAlpha() != 1 {
		t.Errorf("global alpha left at %v", s.GlobalAlpha())
	}
}

func TestCoreMinSize(t *testing.T) {
	cfg := dotConfig()
	cfg.Connections.Distance = 0
	cfg.GlowSize = 0
	s := newRecordSurface()
	p := dot(10, 10, 1)
	p.Size = 0.3
	NewRenderer(cfg).Draw(s, []field.Particle{p}, leave)
	if s.ops[0].r != 1 {
		t.Errorf("core radius = %v, want clamped to 1", s.ops[0].r)
	}
}

func TestShapeDispatch(t *testing.T) {
	tests := []struct {
		shape field.Shape
		kind  string
		count int
	}{
		{field.ShapeDot, "fillCircle", 1},
		{field.ShapePixel, "fillRect", 1},
		{field.ShapeCross, "line", 2},
		{field.ShapeSquare, "path", 1},
		{field.ShapeTriangle, "path", 1},
		{field.ShapeCircle, "strokeCircle", 1},
	}
	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			cfg := dotConfig()
			cfg.Connections.Distance = 0
			cfg.GlowSize = 0
			cfg.StrokeWidth = 1.5
			s := newRecordSurface()
			p := dot(20, 20, 1)
			p.Shape = tt.shape
			p.Size = 14
			NewRenderer(cfg).Draw(s, []field.Particle{p}, leave)
			if got := s.count(tt.kind); got != tt.count || len(s.ops) != tt.count {
				t.Errorf("%s: got %d %s of %d ops", tt.shape, got, tt.kind, len(s.ops))
			}
		})
	}
}

func TestTriangleRotation(t *testing.T) {
	cfg := dotConfig()
	cfg.Connections.Distance = 0
	cfg.GlowSize = 0
	s := newRecordSurface()
	p := dot(0, 0, 1)
	p.Shape = field.ShapeTriangle
	p.Size = 10
	p.Rotation = math.Pi
	NewRenderer(cfg).Draw(s, []field.Particle{p}, leave)

	// Apex (0,-5) rotated half a turn lands at (0,5)
	apex := s.ops[0].pts[0]
	if math.Abs(apex.X) > 1e-9 || math.Abs(apex.Y-5) > 1e-9 {
		t.Errorf("apex = %v, want (0,5)", apex)
	}
}

func TestPixelSnaps(t *testing.T) {
	cfg := dotConfig()
	cfg.Connections.Distance = 0
	cfg.GlowSize = 0
	s := newRecordSurface()
	p := dot(10.4, 20.6, 1)
	p.Shape = field.ShapePixel
	p.Size = 2.2
	NewRenderer(cfg).Draw(s, []field.Particle{p}, leave)
	got := s.ops[0].pts
	if got[0] != (vmath.Vec2{X: 9, Y: 20}) || got[1] != (vmath.Vec2{X: 11, Y: 22}) {
		t.Errorf("pixel rect = %v", got)
	}
}
