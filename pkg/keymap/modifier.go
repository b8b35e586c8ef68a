package keymap

import "strings"

// Modifier is a bit in a modifier column index.
type Modifier int

const (
	ModPlain Modifier = 0
	ModShift Modifier = 1 << (iota - 1)
	ModAltGr
	ModControl
	ModAlt
	ModShiftL
	ModShiftR
	ModCtrlL
	ModCtrlR
	ModCapsShift
)

// MaxColumn is the highest column any combination of modifiers can select.
const MaxColumn = int(ModShift | ModAltGr | ModControl | ModAlt | ModShiftL |
	ModShiftR | ModCtrlL | ModCtrlR | ModCapsShift)

var modifierNames = map[string]Modifier{
	"plain":     ModPlain,
	"shift":     ModShift,
	"altgr":     ModAltGr,
	"control":   ModControl,
	"alt":       ModAlt,
	"shiftl":    ModShiftL,
	"shiftr":    ModShiftR,
	"ctrll":     ModCtrlL,
	"ctrlr":     ModCtrlR,
	"capsshift": ModCapsShift,
}

// ParseModifier looks up a modifier by its keymap-file name.
func ParseModifier(name string) (Modifier, bool) {
	m, ok := modifierNames[name]
	return m, ok
}

// Column ORs modifiers into the column they select together.
func Column(mods ...Modifier) int {
	var c Modifier
	for _, m := range mods {
		c |= m
	}
	return int(c)
}

var modifierOrder = []struct {
	mod  Modifier
	name string
}{
	{ModShift, "shift"},
	{ModAltGr, "altgr"},
	{ModControl, "control"},
	{ModAlt, "alt"},
	{ModShiftL, "shiftl"},
	{ModShiftR, "shiftr"},
	{ModCtrlL, "ctrll"},
	{ModCtrlR, "ctrlr"},
	{ModCapsShift, "capsshift"},
}

// ColumnName spells a column as the modifiers that select it, e.g.
// "shift+altgr" for 3 and "plain" for 0.
func ColumnName(column int) string {
	if column == 0 {
		return "plain"
	}
	var parts []string
	for _, m := range modifierOrder {
		if column&int(m.mod) != 0 {
			parts = append(parts, m.name)
		}
	}
	return strings.Join(parts, "+")
}
