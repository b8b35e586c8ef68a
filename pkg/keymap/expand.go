package keymap

// Columns 0-15 are plain/shift/altgr/altgr+shift crossed with control and
// alt; the pattern repeats for every further block of 16.
const expansionBlock = 16

// isSingleLetter reports whether keysym is exactly one ASCII letter.
func isSingleLetter(keysym string) bool {
	if len(keysym) != 1 {
		return false
	}
	c := keysym[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// letterVariant returns the keysym loadkeys derives for letter in column.
func letterVariant(letter byte, column int) string {
	lower := string(letter | 0x20)
	upper := string(letter &^ 0x20)

	pos := column % expansionBlock
	cased := lower
	if pos&int(ModShift) != 0 {
		cased = upper
	}

	switch pos / 4 {
	case 0:
		return "+" + cased
	case 1:
		return "Control_" + lower
	case 2:
		return "Meta_" + cased
	default:
		return "Meta_Control_" + lower
	}
}
