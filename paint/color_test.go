package paint

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		r, g, b uint8
		a       float64
	}{
		{"Hex", "#FF9500", 255, 149, 0, 1},
		{"Short hex", "#fff", 255, 255, 255, 1},
		{"RGBA", "rgba(0,102,255,0.9)", 0, 102, 255, 0.9},
		{"RGBA spaces", "rgba(255, 215, 0, 0.65)", 255, 215, 0, 0.65},
		{"RGB", "rgb(80,120,200)", 80, 120, 200, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			r, g, b := c.RGB255()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("channels = (%d,%d,%d), want (%d,%d,%d)", r, g, b, tt.r, tt.g, tt.b)
			}
			if math.Abs(c.A-tt.a) > 1e-9 {
				t.Errorf("alpha = %v, want %v", c.A, tt.a)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	bad := []string{"", "blue", "#12", "rgba(1,2,3)", "rgba(300,0,0,1)", "rgba(0,0,0,2)", "hsl(0,0,0)"}
	for _, s := range bad {
		if _, err := Parse(s); !errors.Is(err, ErrBadColor) {
			t.Errorf("Parse(%q) err = %v, want ErrBadColor", s, err)
		}
	}
}

func TestNRGBA(t *testing.T) {
	c := MustParse("rgba(255,215,0,0.5)")
	got := c.NRGBA(0.5)
	want := color.NRGBA{R: 255, G: 215, B: 0, A: 64}
	if got != want {
		t.Errorf("NRGBA = %v, want %v", got, want)
	}
	if c.NRGBA(0).A != 0 {
		t.Error("zero global alpha should be transparent")
	}
	if MustParse("#ffffff").NRGBA(3).A != 255 {
		t.Error("alpha above 1 should saturate")
	}
}

func TestOver(t *testing.T) {
	bg := colorful.Color{R: 0, G: 0, B: 0}
	if got := Over(bg, color.RGBA{}); got != bg {
		t.Errorf("transparent pixel changed background: %v", got)
	}
	full := Over(bg, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if math.Abs(full.R-1) > 1e-9 {
		t.Errorf("opaque white over black = %v", full)
	}
	half := Over(bg, color.RGBA{R: 128, G: 128, B: 128, A: 128})
	if math.Abs(half.R-0.5) > 0.01 {
		t.Errorf("half white over black = %v, want ~0.5", half.R)
	}
}

func TestPalette(t *testing.T) {
	p := MustPalette("#000000", "#ffffff")
	if p.At(-3) != p[0] || p.At(10) != p[1] {
		t.Error("At should clamp index")
	}
	if Palette(nil).At(0) != White {
		t.Error("empty palette should yield White")
	}
	if _, err := ParsePalette([]string{"#000000", "nope"}); err == nil {
		t.Error("expected error for bad entry")
	}
	if got := p.Strings(); got[1] != "rgba(255,255,255,1)" {
		t.Errorf("Strings()[1] = %q", got[1])
	}
}
