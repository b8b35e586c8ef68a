// Package geometry provides hand-authored layout trees for common physical
// keyboards.
//
// Trees are addressed by name through [Lookup]; [Names] lists what is
// available. Every tree is built fresh on each call, so callers may keep
// or modify what they get.
package geometry

import (
	"slices"
	"strings"

	"github.com/matzehuels/kbdlayout/pkg/layout"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

// Default is the geometry used when none is named.
const Default = "iso"

// Geometry is a named keyboard tree.
type Geometry struct {
	Name        string
	Description string
	Keys        int
	build       func() layout.Node
}

// Tree builds the layout tree.
func (g Geometry) Tree() layout.Node { return g.build() }

var registry = map[string]Geometry{
	"iso":  {Name: "iso", Description: "105-key ISO (European) keyboard", Keys: 105, build: ISO},
	"ansi": {Name: "ansi", Description: "104-key ANSI (US) keyboard", Keys: 104, build: ANSI},
}

// Lookup returns the geometry called name (case-insensitive).
func Lookup(name string) (Geometry, error) {
	g, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Geometry{}, kerrors.New(kerrors.ErrCodeInvalidGeometry,
			"unknown geometry %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return g, nil
}

// Names lists the available geometries, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns every geometry ordered by name.
func All() []Geometry {
	out := make([]Geometry, 0, len(registry))
	for _, name := range Names() {
		out = append(out, registry[name])
	}
	return out
}
