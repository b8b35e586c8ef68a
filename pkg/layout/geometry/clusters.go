package geometry

import "github.com/matzehuels/kbdlayout/pkg/layout"

// Console keycodes of keys shared by every geometry.
const (
	kcEscape    = 1
	kcBackspace = 14
	kcTab       = 15
	kcEnter     = 28
	kcCtrlL     = 29
	kcShiftL    = 42
	kcBackslash = 43
	kcShiftR    = 54
	kcAltL      = 56
	kcSpace     = 57
	kcCapsLock  = 58
	kcGrave     = 41
	kcLess      = 86
	kcAltR      = 100
	kcCtrlR     = 97
)

func functionRow() layout.Row {
	var keys []layout.Node
	keys = append(keys, layout.KeyOf(kcEscape), layout.Space(1, 1))
	keys = append(keys, layout.Keys(59, 62)...) // F1-F4
	keys = append(keys, layout.Space(0.5, 1))
	keys = append(keys, layout.Keys(63, 66)...) // F5-F8
	keys = append(keys, layout.Space(0.5, 1))
	keys = append(keys, layout.KeyOf(67), layout.KeyOf(68), layout.KeyOf(87), layout.KeyOf(88)) // F9-F12
	return layout.NewRow(keys...)
}

func numberRow() layout.Row {
	keys := []layout.Node{layout.KeyOf(kcGrave)}
	keys = append(keys, layout.Keys(2, 13)...) // 1 ... 0, minus, equal
	keys = append(keys, layout.KeyOf(kcBackspace).Wide(2))
	return layout.NewRow(keys...)
}

func bottomRow() layout.Row {
	return layout.NewRow(
		layout.KeyOf(kcCtrlL).Wide(1.25), layout.Text("WIN").Wide(1.25), layout.KeyOf(kcAltL).Wide(1.25),
		layout.KeyOf(kcSpace).Wide(6.25),
		layout.KeyOf(kcAltR).Wide(1.25), layout.Text("WIN").Wide(1.25), layout.Text("MENU").Wide(1.25), layout.KeyOf(kcCtrlR).Wide(1.25),
	)
}

// navigation is the 3-wide block of print screen, editing and arrow keys.
func navigation() layout.VGroup {
	return layout.NewVGroup(
		layout.NewRow(layout.KeyOf(99), layout.KeyOf(70), layout.KeyOf(101)), // Print Screen, Scroll Lock, Break
		layout.Space(3, 0.5),
		layout.NewRow(layout.KeyOf(110), layout.KeyOf(102), layout.KeyOf(104)), // Insert, Home, Page Up
		layout.NewRow(layout.KeyOf(111), layout.KeyOf(107), layout.KeyOf(109)), // Delete, End, Page Down
		layout.Space(3, 1),
		layout.NewRow(layout.Space(1, 1), layout.KeyOf(103), layout.Space(1, 1)), // Up
		layout.NewRow(layout.KeyOf(105), layout.KeyOf(108), layout.KeyOf(106)),   // Left, Down, Right
	)
}

// keypad is the numeric keypad with its tall Plus and Enter keys.
func keypad() layout.VGroup {
	return layout.NewVGroup(
		layout.Space(4, 1.5),
		layout.NewRow(layout.KeyOf(69), layout.KeyOf(98), layout.KeyOf(55), layout.KeyOf(74)), // Num Lock, /, *, -
		layout.TallPair(
			layout.NewRow(layout.KeyOf(71), layout.KeyOf(72), layout.KeyOf(73)), // 7 8 9
			layout.NewRow(layout.KeyOf(75), layout.KeyOf(76), layout.KeyOf(77)), // 4 5 6
			78, // +
		),
		layout.TallPair(
			layout.NewRow(layout.KeyOf(79), layout.KeyOf(80), layout.KeyOf(81)), // 1 2 3
			layout.NewRow(layout.KeyOf(82).Wide(2), layout.KeyOf(83)),           // 0 .
			96, // Enter
		),
	)
}

// keyboard joins a main block with the navigation cluster and keypad.
func keyboard(main layout.VGroup) layout.HGroup {
	return layout.NewHGroup(main, layout.Space(0.25, 6.5), navigation(), layout.Space(0.25, 6.5), keypad())
}
