package geometry

import (
	"slices"
	"testing"

	"github.com/matzehuels/kbdlayout/pkg/layout"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

func TestGeometriesRender(t *testing.T) {
	tests := []struct {
		name     string
		keys     int
		polygons int
		hasLess  bool
	}{
		{"iso", 105, 1, true},
		{"ansi", 104, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup() error: %v", err)
			}
			tree := g.Tree()
			if got := layout.KeyCount(tree); got != tt.keys || got != g.Keys {
				t.Errorf("KeyCount() = %d, want %d (registry says %d)", got, tt.keys, g.Keys)
			}

			res, err := layout.Render(tree, layout.NewContext(nil, 40))
			if err != nil {
				t.Fatalf("Render() error: %v", err)
			}
			if res.Width != 900 || res.Height != 260 {
				t.Errorf("size = %gx%g, want 900x260", res.Width, res.Height)
			}
			if len(res.Shapes) != tt.keys {
				t.Errorf("len(Shapes) = %d, want %d", len(res.Shapes), tt.keys)
			}

			polygons := 0
			seen := map[int]bool{}
			for _, s := range res.Shapes {
				if s.Kind == layout.ShapePolygon {
					polygons++
				}
				if s.Keycode < 0 {
					continue
				}
				if seen[s.Keycode] {
					t.Errorf("keycode %d appears twice", s.Keycode)
				}
				seen[s.Keycode] = true
			}
			if polygons != tt.polygons {
				t.Errorf("polygons = %d, want %d", polygons, tt.polygons)
			}
			if seen[86] != tt.hasLess {
				t.Errorf("key 86 present = %v, want %v", seen[86], tt.hasLess)
			}
		})
	}
}

func TestGeometryScales(t *testing.T) {
	res, err := layout.Render(ISO(), layout.NewContext(nil, 33.3))
	if err != nil {
		t.Fatalf("Render() at a non-integral scale: %v", err)
	}
	if res.Width <= 0 || res.Height <= 0 {
		t.Errorf("size = %gx%g", res.Width, res.Height)
	}
}

func TestLookup(t *testing.T) {
	if g, err := Lookup(" ISO "); err != nil || g.Name != "iso" {
		t.Errorf("Lookup(ISO) = %v, %v", g.Name, err)
	}
	if _, err := Lookup("dvorak"); !kerrors.Is(err, kerrors.ErrCodeInvalidGeometry) {
		t.Errorf("Lookup(dvorak) error = %v, want %s", err, kerrors.ErrCodeInvalidGeometry)
	}
	if _, err := Lookup(Default); err != nil {
		t.Errorf("Lookup(Default) error: %v", err)
	}
}

func TestNames(t *testing.T) {
	if got := Names(); !slices.Equal(got, []string{"ansi", "iso"}) {
		t.Errorf("Names() = %v", got)
	}
	all := All()
	if len(all) != 2 || all[0].Name != "ansi" {
		t.Errorf("All() = %v", all)
	}
}

func TestFunctionRow(t *testing.T) {
	row := functionRow()
	if got := layout.KeyCount(row); got != 13 {
		t.Errorf("KeyCount(functionRow()) = %d, want 13 (Escape + F1-F12)", got)
	}

	res, err := layout.Render(row, layout.NewContext(nil, 10))
	if err != nil {
		t.Fatal(err)
	}
	if res.Width != 150 || res.Height != 10 {
		t.Errorf("functionRow() size = %gx%g, want 150x10", res.Width, res.Height)
	}
}
