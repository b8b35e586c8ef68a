package sink

import (
	"encoding/json"

	"github.com/matzehuels/kbdlayout/pkg/layout"
)

// Document is the JSON export of a rendered layout.
type Document struct {
	Geometry string         `json:"geometry,omitempty"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Keys     int            `json:"keys"`
	Shapes   []layout.Shape `json:"shapes"`
}

// RenderJSON exports res as an indented JSON [Document].
func RenderJSON(res layout.Result, geometry string) ([]byte, error) {
	shapes := res.Shapes
	if shapes == nil {
		shapes = []layout.Shape{}
	}
	doc := Document{
		Geometry: geometry,
		Width:    res.Width,
		Height:   res.Height,
		Keys:     len(shapes),
		Shapes:   shapes,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
