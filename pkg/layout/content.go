package layout

import "strconv"

// KeyContent is what a key shows: either the labels a keymap assigns to a
// keycode ([KeycodeRef]) or a fixed caption ([LiteralText]).
type KeyContent interface {
	String() string
	content()
}

// KeycodeRef labels a key from the keymap entry of a keycode.
type KeycodeRef int

// LiteralText labels a key with fixed text, for keys the console has no
// keycode for.
type LiteralText string

func (KeycodeRef) content()  {}
func (LiteralText) content() {}

func (k KeycodeRef) String() string  { return strconv.Itoa(int(k)) }
func (t LiteralText) String() string { return strconv.Quote(string(t)) }
