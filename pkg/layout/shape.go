package layout

import (
	"fmt"
	"strings"

	"github.com/matzehuels/kbdlayout/pkg/keysym"
)

// ShapeKind is the outline of a rendered key.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapePolygon
)

func (k ShapeKind) String() string {
	if k == ShapePolygon {
		return "polygon"
	}
	return "rect"
}

// MarshalText encodes the kind by name.
func (k ShapeKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind written by MarshalText.
func (k *ShapeKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "rect":
		*k = ShapeRect
	case "polygon":
		*k = ShapePolygon
	default:
		return fmt.Errorf("unknown shape kind %q", b)
	}
	return nil
}

// Point is an absolute position in output units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// TextLine is one line of a word-wrapped label, anchored at its center.
type TextLine struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Shape is one rendered key. Rectangles use X, Y, Width and Height (already
// inset by the margin); polygons use Points. Keycode is -1 for keys with
// literal captions.
type Shape struct {
	Kind    ShapeKind   `json:"kind"`
	X       float64     `json:"x,omitempty"`
	Y       float64     `json:"y,omitempty"`
	Width   float64     `json:"width,omitempty"`
	Height  float64     `json:"height,omitempty"`
	Points  []Point     `json:"points,omitempty"`
	Keycode int         `json:"keycode"`
	Label   string      `json:"label"`
	Lines   []TextLine  `json:"lines,omitempty"`
	Labels  []string    `json:"labels"`
	Role    keysym.Role `json:"role"`
}

// IsModifier reports whether the key is styled as a modifier.
func (s Shape) IsModifier() bool { return s.Role == keysym.RoleModifier }

// Result is the output of rendering a node: its keys in tree order and the
// space it occupies.
type Result struct {
	Shapes []Shape `json:"shapes"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// wrapLabel splits label at every space into lines stacked downward from
// (x, y), all centered on x.
func wrapLabel(label string, x, y, lineHeight float64) []TextLine {
	if label == "" {
		return nil
	}
	words := strings.Split(label, " ")
	lines := make([]TextLine, len(words))
	for i, w := range words {
		lines[i] = TextLine{X: x, Y: y + float64(i)*lineHeight, Text: w}
	}
	return lines
}
