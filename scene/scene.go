// Package scene holds the named field presets and their file overrides.
package scene

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lixenwraith/constellation/field"
)

// ErrUnknownScene is returned for names outside the registry
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a field preset plus the overlays drawn with it
type Scene struct {
	Name  string
	Field *field.Config
	// Ceremony attaches the badge orbit overlay
	Ceremony bool
	// Follower attaches the lagging cursor ring
	Follower bool
}

// Clone deep-copies the field config so callers may tune it freely
func (s Scene) Clone() Scene {
	s.Field = s.Field.Clone()
	return s
}

type builder func() Scene

var registry = map[string]builder{
	"constellation": Constellation,
	"lab":           Lab,
	"arena":         Arena,
	"starfield":     Starfield,
	"ring":          Ring,
}

// Names lists every registered scene, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup builds a fresh copy of the named preset
func Lookup(name string) (Scene, error) {
	b, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q (have %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return b(), nil
}
