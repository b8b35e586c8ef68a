// Package layout describes physical keyboards as trees of nodes and renders
// them into positioned key shapes.
//
// # Nodes
//
// A tree is built from a closed set of node types:
//
//   - [Key]: one rectangular key
//   - [SpecialKey]: one hexagonal key spanning two rows (ISO Enter)
//   - [Spacer]: empty space
//   - [Row]: nodes laid out left to right, all the same height
//   - [StackedPair]: two rows followed by one key filling both rows
//   - [HGroup]: sub-trees side by side, all the same height
//   - [VGroup]: sub-trees stacked top to bottom, all the same width
//
// Sizes are declared in key units; a [Context] supplies the scale that turns
// units into output coordinates, the absolute origin and the keymap that
// provides key labels.
//
// # Rendering
//
// [Render] walks a tree and returns every key as a [Shape] plus the total
// size. Siblings are checked for a common cross-axis size while rendering,
// not while building, so a malformed tree can be constructed but fails with
// a [MismatchError] (code GEOMETRY_MISMATCH) naming both siblings and their
// sizes the moment it is rendered.
//
//	ctx := layout.NewContext(km, 40)
//	res, err := layout.Render(geometry.ISO(), ctx)
//
// Rendering never mutates the tree and is safe to run concurrently on the
// same tree with different contexts.
package layout
