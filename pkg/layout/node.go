package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is an element of a keyboard tree. The set of implementations is
// closed; see the package documentation.
type Node interface {
	fmt.Stringer
	node()
}

// StackedVariant selects the key a [StackedPair] places beside its rows.
type StackedVariant int

const (
	// EnterHexagon places a [SpecialKey] whose top segment is Width1 wide
	// and whose bottom segment is Width2 wide.
	EnterHexagon StackedVariant = iota
	// TallKey places a rectangular key Width1 wide spanning both rows.
	// Width1 and Width2 must be equal.
	TallKey
)

func (v StackedVariant) String() string {
	if v == TallKey {
		return "tall"
	}
	return "enter"
}

// Key is a rectangular key. Width and Height are in key units.
type Key struct {
	Content KeyContent
	Width   float64
	Height  float64
}

// SpecialKey is the hexagonal key that spans two rows. The top segment is
// Width1 by Height1; the bottom segment is Width2 by Height2 and is flush
// with the top segment's right edge.
type SpecialKey struct {
	Content KeyContent
	Width1  float64
	Width2  float64
	Height1 float64
	Height2 float64
}

// Spacer occupies space without drawing anything.
type Spacer struct {
	Width  float64
	Height float64
}

// Row lays out children left to right.
type Row struct {
	Children []Node
}

// StackedPair renders Row1 above Row2 and places one key to their right
// that fills the height of both. Row1 plus Width1 must be as wide as Row2
// plus Width2.
type StackedPair struct {
	Row1    Row
	Row2    Row
	Content KeyContent
	Width1  float64
	Width2  float64
	Variant StackedVariant
}

// HGroup places independent sub-trees side by side.
type HGroup struct {
	Children []Node
}

// VGroup stacks sub-trees top to bottom.
type VGroup struct {
	Children []Node
}

func (Key) node()         {}
func (SpecialKey) node()  {}
func (Spacer) node()      {}
func (Row) node()         {}
func (StackedPair) node() {}
func (HGroup) node()      {}
func (VGroup) node()      {}

// KeyOf returns a 1x1 key labelled from keycode.
func KeyOf(keycode int) Key {
	return Key{Content: KeycodeRef(keycode), Width: 1, Height: 1}
}

// Text returns a 1x1 key with a fixed caption.
func Text(caption string) Key {
	return Key{Content: LiteralText(caption), Width: 1, Height: 1}
}

// Keys returns 1x1 keys for the keycodes from..to inclusive.
func Keys(from, to int) []Node {
	nodes := make([]Node, 0, to-from+1)
	for code := from; code <= to; code++ {
		nodes = append(nodes, KeyOf(code))
	}
	return nodes
}

// Wide returns a copy of k with the given width.
func (k Key) Wide(width float64) Key {
	k.Width = width
	return k
}

// Tall returns a copy of k with the given height.
func (k Key) Tall(height float64) Key {
	k.Height = height
	return k
}

// Space returns a spacer of the given size.
func Space(width, height float64) Spacer {
	return Spacer{Width: width, Height: height}
}

// NewRow returns a row of nodes.
func NewRow(children ...Node) Row { return Row{Children: children} }

// NewHGroup returns a horizontal group.
func NewHGroup(children ...Node) HGroup { return HGroup{Children: children} }

// NewVGroup returns a vertical group.
func NewVGroup(children ...Node) VGroup { return VGroup{Children: children} }

// ISOEnter returns a StackedPair whose trailing key is an ISO Enter hexagon.
func ISOEnter(row1, row2 Row, keycode int, width1, width2 float64) StackedPair {
	return StackedPair{
		Row1: row1, Row2: row2,
		Content: KeycodeRef(keycode),
		Width1:  width1, Width2: width2,
		Variant: EnterHexagon,
	}
}

// TallPair returns a StackedPair whose trailing key is a 1-unit-wide
// rectangle spanning both rows, like keypad Plus and Enter.
func TallPair(row1, row2 Row, keycode int) StackedPair {
	return StackedPair{
		Row1: row1, Row2: row2,
		Content: KeycodeRef(keycode),
		Width1:  1, Width2: 1,
		Variant: TallKey,
	}
}

func (k Key) String() string {
	args := []string{contentString(k.Content)}
	if k.Width != 1 {
		args = append(args, "width="+formatUnits(k.Width))
	}
	if k.Height != 1 {
		args = append(args, "height="+formatUnits(k.Height))
	}
	return "Key(" + strings.Join(args, ", ") + ")"
}

func (k SpecialKey) String() string {
	return fmt.Sprintf("SpecialKey(%s, %s, %s, %s, %s)", contentString(k.Content),
		formatUnits(k.Width1), formatUnits(k.Width2), formatUnits(k.Height1), formatUnits(k.Height2))
}

func (s Spacer) String() string {
	var args []string
	if s.Width != 1 {
		args = append(args, "width="+formatUnits(s.Width))
	}
	if s.Height != 1 {
		args = append(args, "height="+formatUnits(s.Height))
	}
	return "Spacer(" + strings.Join(args, ", ") + ")"
}

func (r Row) String() string    { return "Row(" + joinNodes(r.Children) + ")" }
func (g HGroup) String() string { return "HGroup(" + joinNodes(g.Children) + ")" }
func (g VGroup) String() string { return "VGroup(" + joinNodes(g.Children) + ")" }

func (p StackedPair) String() string {
	return fmt.Sprintf("StackedPair(%s, %s, %s, %s, %s, %s)", p.Row1, p.Row2,
		contentString(p.Content), formatUnits(p.Width1), formatUnits(p.Width2), p.Variant)
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func contentString(c KeyContent) string {
	if c == nil {
		return "nil"
	}
	return c.String()
}

func formatUnits(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
