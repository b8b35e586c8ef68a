package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/layout"
	"github.com/matzehuels/kbdlayout/pkg/layout/geometry"
	"github.com/matzehuels/kbdlayout/pkg/render/treeviz"
)

type treeOpts struct {
	geometry string
	format   string // svg, png, pdf, dot, text
	output   string
	keymap   string // optional keymap to label the keys with
}

// treeCommand creates the tree command for inspecting geometries.
func (c *CLI) treeCommand() *cobra.Command {
	var opts treeOpts

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Draw a geometry's layout tree",
		Long: `Draw the layout tree of a keyboard geometry with Graphviz.

Each node shows its type and declared size; with --keymap, keys also show
the label they would carry. The text format prints an indented outline.`,
		Example: `  kbdlayout tree -g iso -o iso-tree.svg
  kbdlayout tree -g ansi -f text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.geometry == "" {
				opts.geometry = c.cfg.Geometry
			}
			return c.runTree(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.geometry, "geometry", "g", "", "keyboard geometry: "+strings.Join(geometry.Names(), ", "))
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, png, pdf, dot, text")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default <geometry>-tree.<format>, stdout for text)")
	cmd.Flags().StringVarP(&opts.keymap, "keymap", "k", "", "keymap file to label keys with")

	return cmd
}

func (c *CLI) runTree(ctx context.Context, opts treeOpts) error {
	g, err := geometry.Lookup(opts.geometry)
	if err != nil {
		return err
	}
	tree := g.Tree()

	if opts.format == "text" {
		writeOutline(c.Out, tree, 0)
		return nil
	}

	vizOpts := treeviz.Options{Resolver: c.cfg.Resolver()}
	if opts.keymap != "" {
		in := keymap.NewInterpreter(
			keymap.WithIncludeDir(c.cfg.IncludeDir),
			keymap.WithLogger(loggerFromContext(ctx)),
		)
		if vizOpts.Keymap, err = in.Load(opts.keymap); err != nil {
			return err
		}
	}
	dot := treeviz.ToDOT(tree, vizOpts)

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = treeviz.RenderSVG(ctx, dot)
	case "png":
		data, err = treeviz.RenderPNG(ctx, dot, 2)
	case "pdf":
		data, err = treeviz.RenderPDF(ctx, dot)
	default:
		return fmt.Errorf("invalid tree format: %q (must be one of: svg, png, pdf, dot, text)", opts.format)
	}
	if err != nil {
		return fmt.Errorf("render tree: %w", err)
	}

	path := opts.output
	if path == "" {
		path = g.Name + "-tree." + opts.format
	}
	if err := writeArtifact(path, data); err != nil {
		return err
	}
	printSuccess(c.Out, "%s layout tree (%d keys)", g.Name, layout.KeyCount(tree))
	printFile(c.Out, path)
	return nil
}

// writeOutline prints n and its descendants, two spaces per level.
func writeOutline(w io.Writer, n layout.Node, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), layout.Describe(n))
	for _, child := range layout.Children(n) {
		writeOutline(w, child, depth+1)
	}
}
