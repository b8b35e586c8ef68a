// Package treeviz draws layout trees as Graphviz diagrams.
//
// It exists to debug hand-authored geometries: every node becomes a box
// labelled with its type and declared size, spacers are dashed, and the
// ISO Enter key is drawn as a hexagon.
//
//	g, _ := geometry.Lookup("iso")
//	dot := treeviz.ToDOT(g.Tree(), treeviz.Options{Keymap: km})
//	svg, err := treeviz.RenderSVG(ctx, dot)
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no graphviz binary is needed.
package treeviz
