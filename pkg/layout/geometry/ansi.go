package geometry

import "github.com/matzehuels/kbdlayout/pkg/layout"

// ANSI returns the 104-key ANSI keyboard: one-row Enter, wide backslash
// and a full-width left Shift.
func ANSI() layout.Node {
	tabRow := append([]layout.Node{layout.KeyOf(kcTab).Wide(1.5)}, layout.Keys(16, 27)...)
	tabRow = append(tabRow, layout.KeyOf(kcBackslash).Wide(1.5))

	capsRow := append([]layout.Node{layout.KeyOf(kcCapsLock).Wide(1.75)}, layout.Keys(30, 40)...)
	capsRow = append(capsRow, layout.KeyOf(kcEnter).Wide(2.25))

	shiftRow := append([]layout.Node{layout.KeyOf(kcShiftL).Wide(2.25)}, layout.Keys(44, 53)...)
	shiftRow = append(shiftRow, layout.KeyOf(kcShiftR).Wide(2.75))

	return keyboard(layout.NewVGroup(
		functionRow(),
		layout.Space(15, 0.5),
		numberRow(),
		layout.NewRow(tabRow...),
		layout.NewRow(capsRow...),
		layout.NewRow(shiftRow...),
		bottomRow(),
	))
}
