package treeviz

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/keysym"
	"github.com/matzehuels/kbdlayout/pkg/layout"
	"github.com/matzehuels/kbdlayout/pkg/render"
)

// Options configures tree diagrams.
type Options struct {
	// Keymap, when set, adds each key's main label to its node.
	Keymap *keymap.Keymap
	// Resolver resolves labels; nil means keysym.Default.
	Resolver *keysym.Resolver
}

// ToDOT converts a layout tree to Graphviz DOT. Nodes are numbered in
// pre-order so the output is stable for a given tree.
func ToDOT(root layout.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.1;\n")
	buf.WriteString("\n")

	w := dotWriter{buf: &buf, opts: opts}
	w.node(root)

	buf.WriteString("}\n")
	return buf.String()
}

type dotWriter struct {
	buf  *bytes.Buffer
	opts Options
	next int
}

func (w *dotWriter) node(n layout.Node) string {
	id := "n" + strconv.Itoa(w.next)
	w.next++

	attrs := []string{fmt.Sprintf("label=%q", w.label(n))}
	switch n.(type) {
	case layout.Spacer:
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey")
	case layout.SpecialKey:
		attrs = append(attrs, "shape=hexagon")
	case layout.Key:
	default:
		attrs = append(attrs, "fillcolor=\"#eef2f7\"")
	}
	fmt.Fprintf(w.buf, "  %s [%s];\n", id, strings.Join(attrs, ", "))

	for _, child := range layout.Children(n) {
		childID := w.node(child)
		fmt.Fprintf(w.buf, "  %s -> %s;\n", id, childID)
	}
	return id
}

func (w *dotWriter) label(n layout.Node) string {
	desc := layout.Describe(n)
	if w.opts.Keymap == nil {
		return desc
	}

	var content layout.KeyContent
	switch v := n.(type) {
	case layout.Key:
		content = v.Content
	case layout.SpecialKey:
		content = v.Content
	}
	code, ok := content.(layout.KeycodeRef)
	if !ok {
		return desc
	}

	syms, _ := w.opts.Keymap.Keysyms(int(code))
	r := w.opts.Resolver
	if r == nil {
		r = keysym.Default
	}
	labels, err := r.Labels(syms)
	if err != nil {
		return desc + "\n(invalid)"
	}
	if main := keysym.MainLabel(labels); main != "" {
		return desc + "\n" + main
	}
	return desc
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with a
// unitless one so the diagram scales like the keyboard SVGs.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
