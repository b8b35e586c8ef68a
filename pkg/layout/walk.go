package layout

import "fmt"

// KeyCount returns the number of keys under n. Spacers count as zero and
// a StackedPair counts its trailing key.
func KeyCount(n Node) int {
	switch v := n.(type) {
	case Key, SpecialKey:
		return 1
	case StackedPair:
		return KeyCount(v.Row1) + KeyCount(v.Row2) + 1
	default:
		total := 0
		for _, c := range Children(n) {
			total += KeyCount(c)
		}
		return total
	}
}

// Children returns the direct sub-nodes of n. A StackedPair yields its two
// rows and its trailing key.
func Children(n Node) []Node {
	switch v := n.(type) {
	case Row:
		return v.Children
	case HGroup:
		return v.Children
	case VGroup:
		return v.Children
	case StackedPair:
		return []Node{v.Row1, v.Row2, trailingKey(v)}
	default:
		return nil
	}
}

// Describe returns a one-line description of n without its children.
func Describe(n Node) string {
	switch v := n.(type) {
	case Row:
		return fmt.Sprintf("Row (%d)", len(v.Children))
	case HGroup:
		return fmt.Sprintf("HGroup (%d)", len(v.Children))
	case VGroup:
		return fmt.Sprintf("VGroup (%d)", len(v.Children))
	case StackedPair:
		return fmt.Sprintf("StackedPair %s %s+%s", v.Variant, formatUnits(v.Width1), formatUnits(v.Width2))
	case nil:
		return "nil"
	default:
		return n.String()
	}
}

// trailingKey describes the key a StackedPair adds using one-row heights;
// the rendered key spans whatever the rows measure.
func trailingKey(p StackedPair) Node {
	if p.Variant == TallKey {
		return Key{Content: p.Content, Width: p.Width1, Height: 2}
	}
	return SpecialKey{Content: p.Content, Width1: p.Width1, Width2: p.Width2, Height1: 1, Height2: 1}
}
