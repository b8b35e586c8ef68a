package geometry

import "github.com/matzehuels/kbdlayout/pkg/layout"

// ISO returns the 105-key ISO keyboard: two-row Enter, short left Shift
// and the extra key 86 beside it.
func ISO() layout.Node {
	tabRow := append([]layout.Node{layout.KeyOf(kcTab).Wide(1.5)}, layout.Keys(16, 27)...) // Q ... ]
	capsRow := append([]layout.Node{layout.KeyOf(kcCapsLock).Wide(1.75)}, layout.Keys(30, 40)...)
	capsRow = append(capsRow, layout.KeyOf(kcBackslash))

	shiftRow := []layout.Node{layout.KeyOf(kcShiftL).Wide(1.25), layout.KeyOf(kcLess)}
	shiftRow = append(shiftRow, layout.Keys(44, 53)...)
	shiftRow = append(shiftRow, layout.KeyOf(kcShiftR).Wide(2.75))

	return keyboard(layout.NewVGroup(
		functionRow(),
		layout.Space(15, 0.5),
		numberRow(),
		layout.ISOEnter(layout.NewRow(tabRow...), layout.NewRow(capsRow...), kcEnter, 1.5, 1.25),
		layout.NewRow(shiftRow...),
		bottomRow(),
	))
}
