package keysym

// synonyms maps alternative keysym spellings onto the name the label tables
// are keyed by. No value is itself a key, so one substitution is enough.
var synonyms = map[string]string{
	"Control_h":        "BackSpace",
	"Control_i":        "Tab",
	"Control_j":        "Linefeed",
	"Home":             "Find",
	"End":              "Select",
	"PageUp":           "Prior",
	"PageDown":         "Next",
	"multiplication":   "multiply",
	"pound":            "sterling",
	"pilcrow":          "paragraph",
	"Oslash":           "Ooblique",
	"Shift_L":          "ShiftL",
	"Shift_R":          "ShiftR",
	"Control_L":        "CtrlL",
	"Control_R":        "CtrlR",
	"AltL":             "Alt",
	"AltR":             "AltGr",
	"Alt_L":            "Alt",
	"Alt_R":            "AltGr",
	"AltGr_L":          "Alt",
	"AltGr_R":          "AltGr",
	"AltLLock":         "Alt_Lock",
	"AltRLock":         "AltGr_Lock",
	"SCtrl":            "SControl",
	"Spawn_Console":    "KeyboardSignal",
	"Uncaps_Shift":     "CapsShift",
	"lambda":           "lamda",
	"Lambda":           "Lamda",
	"xi":               "ksi",
	"Xi":               "Ksi",
	"chi":              "khi",
	"Chi":              "Khi",
	"tilde":            "asciitilde",
	"circumflex":       "asciicircum",
	"quoteright":       "apostrophe",
	"quoteleft":        "grave",
	"dead_ogonek":      "dead_cedilla",
	"dead_breve":       "dead_tilde",
	"dead_doubleacute": "dead_tilde",
	"no-break_space":   "nobreakspace",
	"paragraph_sign":   "section",
	"soft_hyphen":      "hyphen",
	"rightanglequote":  "guillemotright",
}
