package paint

import "fmt"

// Palette is an ordered color list; particles select entries by draw
type Palette []Color

// ParsePalette parses every entry, failing on the first bad one
func ParsePalette(specs []string) (Palette, error) {
	p := make(Palette, 0, len(specs))
	for i, s := range specs {
		c, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// MustPalette is ParsePalette for literals
func MustPalette(specs ...string) Palette {
	p, err := ParsePalette(specs)
	if err != nil {
		panic(err)
	}
	return p
}

// At returns the entry at i, clamped into range; empty palettes yield White
func (p Palette) At(i int) Color {
	if len(p) == 0 {
		return White
	}
	if i < 0 {
		i = 0
	}
	if i >= len(p) {
		i = len(p) - 1
	}
	return p[i]
}

// Strings renders entries back to rgba() notation
func (p Palette) Strings() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.String()
	}
	return out
}
