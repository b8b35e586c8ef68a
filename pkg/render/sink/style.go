package sink

// Style holds the presentation attributes of an SVG document.
type Style struct {
	FontFamily   string
	FontSize     float64
	KeyFill      string
	KeyStroke    string
	ModifierFill string
	HeldFill     string
	TextFill     string
}

// DefaultStyle returns the look of the classic keyboard diagrams.
func DefaultStyle() Style {
	return Style{
		FontFamily:   "Arial",
		FontSize:     10,
		KeyFill:      "#eee",
		KeyStroke:    "#ccc",
		ModifierFill: "#ddd",
		HeldFill:     "#bcd",
		TextFill:     "#333",
	}
}

// withDefaults fills empty fields from DefaultStyle.
func (s Style) withDefaults() Style {
	d := DefaultStyle()
	if s.FontFamily == "" {
		s.FontFamily = d.FontFamily
	}
	if s.FontSize <= 0 {
		s.FontSize = d.FontSize
	}
	if s.KeyFill == "" {
		s.KeyFill = d.KeyFill
	}
	if s.KeyStroke == "" {
		s.KeyStroke = d.KeyStroke
	}
	if s.ModifierFill == "" {
		s.ModifierFill = d.ModifierFill
	}
	if s.HeldFill == "" {
		s.HeldFill = d.HeldFill
	}
	if s.TextFill == "" {
		s.TextFill = d.TextFill
	}
	return s
}
