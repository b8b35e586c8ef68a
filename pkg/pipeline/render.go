package pipeline

import (
	"context"
	"fmt"

	"github.com/matzehuels/kbdlayout/pkg/layout"
	"github.com/matzehuels/kbdlayout/pkg/render"
	"github.com/matzehuels/kbdlayout/pkg/render/sink"
)

// RenderArtifacts generates output artifacts in the requested formats.
// PNG and PDF are converted from the SVG document, which is rendered once.
func RenderArtifacts(ctx context.Context, res layout.Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	svgDoc := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(res, buildSVGOptions(opts)...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch render.Format(format) {
		case render.FormatSVG:
			data = svgDoc()
		case render.FormatJSON:
			data, err = sink.RenderJSON(res, opts.Geometry)
		case render.FormatPNG:
			data, err = render.ToPNG(ctx, svgDoc(), opts.PNGScale)
		case render.FormatPDF:
			data, err = render.ToPDF(ctx, svgDoc())
		default:
			err = ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithStyle(opts.Style)}
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}
	if opts.NoScript {
		svgOpts = append(svgOpts, sink.WithoutScript())
	}
	return svgOpts
}
