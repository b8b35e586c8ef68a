package keysym

import "fmt"

// asciiLabels covers the plain ASCII control and graphic keysyms, the only
// names a Meta_ combination may be built from.
var asciiLabels = withLetters(map[string]string{
	"nul":                  "C-@",
	"Control_a":            "C-a",
	"Control_b":            "C-b",
	"Control_c":            "C-c",
	"Control_d":            "C-d",
	"Control_e":            "C-e",
	"Control_f":            "C-f",
	"Control_g":            "C-g",
	"BackSpace":            "BS",
	"Tab":                  "TAB",
	"Linefeed":             "LF",
	"Control_k":            "C-k",
	"Control_l":            "C-l",
	"Return":               "↵",
	"Control_n":            "C-n",
	"Control_o":            "C-o",
	"Control_p":            "C-p",
	"Control_q":            "C-q",
	"Control_r":            "C-r",
	"Control_s":            "C-s",
	"Control_t":            "C-t",
	"Control_u":            "C-u",
	"Control_v":            "C-v",
	"Control_w":            "C-w",
	"Control_x":            "C-x",
	"Control_y":            "C-y",
	"Control_z":            "C-z",
	"Escape":               "ESC",
	"Control_backslash":    `C-\`,
	"Control_bracketright": "C-]",
	"Control_asciicircum":  "C-^",
	"Control_underscore":   "C-_",
	"space":                "SPACE",
	"exclam":               "!",
	"quotedbl":             `"`,
	"numbersign":           "#",
	"dollar":               "$",
	"percent":              "%",
	"ampersand":            "&",
	"apostrophe":           "'",
	"parenleft":            "(",
	"parenright":           ")",
	"asterisk":             "*",
	"plus":                 "+",
	"comma":                ",",
	"minus":                "-",
	"period":               ".",
	"slash":                "/",
	"zero":                 "0",
	"one":                  "1",
	"two":                  "2",
	"three":                "3",
	"four":                 "4",
	"five":                 "5",
	"six":                  "6",
	"seven":                "7",
	"eight":                "8",
	"nine":                 "9",
	"colon":                ":",
	"semicolon":            ";",
	"less":                 "<",
	"equal":                "=",
	"greater":              ">",
	"question":             "?",
	"at":                   "@",
	"bracketleft":          "[",
	"backslash":            `\`,
	"bracketright":         "]",
	"asciicircum":          "^",
	"underscore":           "_",
	"grave":                "`",
	"braceleft":            "{",
	"bar":                  "|",
	"braceright":           "}",
	"asciitilde":           "~",
	"Delete":               "BACKSPACE",
})

// extendedLabels holds everything beyond plain ASCII: modifiers and locks,
// navigation and console functions, the keypad, dead keys and the Latin-1 /
// Latin-2 letters used by Central European keymaps.
var extendedLabels = withConsoles(map[string]string{
	"VoidSymbol": "VOID",

	"Shift":     "SHIFT",
	"AltGr":     "ALTGR",
	"Control":   "CTRL",
	"Alt":       "ALT",
	"ShiftL":    "SHIFTL",
	"ShiftR":    "SHIFTR",
	"CtrlL":     "CTRLL",
	"CtrlR":     "CTRLR",
	"CapsShift": "CAPSSHIFT",

	"Caps_Lock":     "CAPS LOCK",
	"Shift_Lock":    "SHIFT LOCK",
	"AltGr_Lock":    "ALTGR LOCK",
	"Control_Lock":  "CTRL LOCK",
	"Alt_Lock":      "ALT LOCK",
	"ShiftL_Lock":   "SHIFTL LOCK",
	"ShiftR_Lock":   "SHIFTR LOCK",
	"CtrlL_Lock":    "CTRLL LOCK",
	"CtrlR_Lock":    "CTRLR LOCK",
	"Num_Lock":      "NUM LOCK",
	"Bare_Num_Lock": "NUM LOCK",
	"Scroll_Lock":   "SCROLL LOCK",

	"Break":  "BREAK",
	"Pause":  "PAUSE",
	"Insert": "INS",
	"Remove": "DEL",
	"Find":   "HOME",
	"Select": "END",
	"Prior":  "PG UP",
	"Next":   "PG DN",
	"Up":     "↑",
	"Down":   "↓",
	"Left":   "←",
	"Right":  "→",

	"Compose":         "COMPOSE",
	"Last_Console":    "LAST VT",
	"Incr_Console":    "VT+",
	"Decr_Console":    "VT-",
	"Scroll_Forward":  "SCROLL FWD",
	"Scroll_Backward": "SCROLL BACK",
	"Show_Memory":     "SHOW MEM",
	"Show_Registers":  "SHOW REGS",
	"Show_State":      "SHOW STATE",
	"KeyboardSignal":  "KBD SIGNAL",
	"Boot":            "BOOT",
	"SAK":             "SAK",
	"Macro":           "MACRO",
	"Help":            "HELP",
	"Do":              "DO",

	"KP_0":        "0 (KP)",
	"KP_1":        "1 (KP)",
	"KP_2":        "2 (KP)",
	"KP_3":        "3 (KP)",
	"KP_4":        "4 (KP)",
	"KP_5":        "5 (KP)",
	"KP_6":        "6 (KP)",
	"KP_7":        "7 (KP)",
	"KP_8":        "8 (KP)",
	"KP_9":        "9 (KP)",
	"KP_Add":      "+ (KP)",
	"KP_Subtract": "- (KP)",
	"KP_Multiply": "* (KP)",
	"KP_Divide":   "/ (KP)",
	"KP_Enter":    "Enter (KP)",
	"KP_Period":   ". (KP)",
	"KP_Comma":    ", (KP)",
	"KP_MinPlus":  "± (KP)",

	"dead_grave":      "`",
	"dead_acute":      "´",
	"dead_circumflex": "^",
	"dead_tilde":      "~",
	"dead_diaeresis":  "¨",
	"dead_cedilla":    "¸",
	"dead_caron":      "ˇ",
	"dead_abovering":  "˚",

	"section":        "§",
	"degree":         "°",
	"paragraph":      "¶",
	"sterling":       "£",
	"multiply":       "×",
	"division":       "÷",
	"nobreakspace":   "NBSP",
	"hyphen":         "SHY",
	"guillemotleft":  "«",
	"guillemotright": "»",
	"currency":       "¤",
	"acute":          "´",
	"diaeresis":      "¨",
	"cedilla":        "¸",
	"caron":          "ˇ",
	"ogonek":         "˛",
	"breve":          "˘",
	"abovedot":       "˙",
	"doubleacute":    "˝",
	"ssharp":         "ß",

	"aacute":       "á",
	"Aacute":       "Á",
	"adiaeresis":   "ä",
	"Adiaeresis":   "Ä",
	"aogonek":      "ą",
	"Aogonek":      "Ą",
	"cacute":       "ć",
	"Cacute":       "Ć",
	"ccaron":       "č",
	"Ccaron":       "Č",
	"dcaron":       "ď",
	"Dcaron":       "Ď",
	"dstroke":      "đ",
	"Dstroke":      "Đ",
	"eacute":       "é",
	"Eacute":       "É",
	"ecaron":       "ě",
	"Ecaron":       "Ě",
	"eogonek":      "ę",
	"Eogonek":      "Ę",
	"iacute":       "í",
	"Iacute":       "Í",
	"lacute":       "ĺ",
	"Lacute":       "Ĺ",
	"lcaron":       "ľ",
	"Lcaron":       "Ľ",
	"lstroke":      "ł",
	"Lstroke":      "Ł",
	"nacute":       "ń",
	"Nacute":       "Ń",
	"ncaron":       "ň",
	"Ncaron":       "Ň",
	"oacute":       "ó",
	"Oacute":       "Ó",
	"ocircumflex":  "ô",
	"Ocircumflex":  "Ô",
	"odiaeresis":   "ö",
	"Odiaeresis":   "Ö",
	"odoubleacute": "ő",
	"Odoubleacute": "Ő",
	"racute":       "ŕ",
	"Racute":       "Ŕ",
	"rcaron":       "ř",
	"Rcaron":       "Ř",
	"sacute":       "ś",
	"Sacute":       "Ś",
	"scaron":       "š",
	"Scaron":       "Š",
	"tcaron":       "ť",
	"Tcaron":       "Ť",
	"uacute":       "ú",
	"Uacute":       "Ú",
	"udiaeresis":   "ü",
	"Udiaeresis":   "Ü",
	"udoubleacute": "ű",
	"Udoubleacute": "Ű",
	"uring":        "ů",
	"Uring":        "Ů",
	"yacute":       "ý",
	"Yacute":       "Ý",
	"zacute":       "ź",
	"Zacute":       "Ź",
	"zabovedot":    "ż",
	"Zabovedot":    "Ż",
	"zcaron":       "ž",
	"Zcaron":       "Ž",
})

// consoleCount is the number of Console_N keysyms (Console_0..Console_63).
const consoleCount = 64

// withLetters adds the ASCII letters, each labelled as itself.
func withLetters(m map[string]string) map[string]string {
	for c := 'a'; c <= 'z'; c++ {
		m[string(c)] = string(c)
		m[string(c-'a'+'A')] = string(c - 'a' + 'A')
	}
	return m
}

// withConsoles adds Console_0..Console_63 as VT0..VT63.
func withConsoles(m map[string]string) map[string]string {
	for i := 0; i < consoleCount; i++ {
		m[fmt.Sprintf("Console_%d", i)] = fmt.Sprintf("VT%d", i)
	}
	return m
}

// defaultLabels builds the full label table: plain ASCII, then the extended
// names, then keycap-style overrides (lowercase letters are drawn uppercase
// the way they are printed on keys).
func defaultLabels() map[string]string {
	labels := make(map[string]string, len(asciiLabels)+len(extendedLabels)+26)
	for k, v := range asciiLabels {
		labels[k] = v
	}
	for k, v := range extendedLabels {
		labels[k] = v
	}
	for c := 'a'; c <= 'z'; c++ {
		labels[string(c)] = string(c - 'a' + 'A')
	}
	return labels
}
