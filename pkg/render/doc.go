// Package render turns rendered keyboard layouts into output documents.
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg):
//
//	svg := sink.RenderSVG(result)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// When rsvg-convert is missing both return an error with code UNSUPPORTED
// that explains how to install it.
//
// # Subpackages
//
//   - [sink]: SVG and JSON documents for a rendered layout
//   - [treeviz]: Graphviz diagrams of a layout tree, for debugging
//     hand-authored geometries
package render

// Format is an output format name.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatJSON Format = "json"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
)

// Formats lists every supported format.
var Formats = []Format{FormatSVG, FormatJSON, FormatPNG, FormatPDF}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatJSON:
		return "application/json"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Valid reports whether f is a supported format.
func (f Format) Valid() bool {
	switch f {
	case FormatSVG, FormatJSON, FormatPNG, FormatPDF:
		return true
	}
	return false
}

// Binary reports whether f needs an SVG conversion step.
func (f Format) Binary() bool { return f == FormatPNG || f == FormatPDF }
