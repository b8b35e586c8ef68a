package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/kbdlayout/pkg/pipeline"
	"github.com/matzehuels/kbdlayout/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file (single artifact) or base path
	geometries []string // geometry names, e.g. iso, ansi
	formats    []string // svg, json, png, pdf
	scale      float64  // pixels per key unit; 0 keeps the config value
	pngScale   float64  // rasterization zoom for PNG
	title      string   // SVG <title>
	includeDir string   // include search directory; "" keeps the config value
	noScript   bool     // omit the label-switching script
	noCache    bool
	refresh    bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var geometriesStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <keymap>",
		Short: "Draw a keymap on one or more keyboard geometries",
		Long: `Draw a console keymap on one or more keyboard geometries.

With several geometries or formats, one file is written per combination:
de.map rendered with -g iso,ansi -f svg,png produces de_iso.svg, de_iso.png,
de_ansi.svg and de_ansi.png. Use -o - to write a single artifact to stdout.`,
		Example: `  kbdlayout render /usr/share/keymaps/i386/qwertz/de-latin1.map
  kbdlayout render de.map -g iso,ansi -f svg,png -o out/de`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.geometries = parseList(geometriesStr, c.cfg.Geometry)
			opts.formats = parseList(formatsStr, string(render.FormatSVG))
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single artifact), base path (several), or - for stdout")
	cmd.Flags().StringVarP(&geometriesStr, "geometry", "g", "", "keyboard geometry(s): iso, ansi (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "pixels per key unit (default from config, 40)")
	cmd.Flags().Float64Var(&opts.pngScale, "png-scale", pipeline.DefaultPNGScale, "PNG zoom factor")
	cmd.Flags().StringVar(&opts.title, "title", "", "SVG document title")
	cmd.Flags().StringVarP(&opts.includeDir, "include-dir", "I", "", "directory include files are resolved in")
	cmd.Flags().BoolVar(&opts.noScript, "no-script", false, "omit the interactive modifier script")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runRender renders every requested geometry concurrently, then writes the
// artifacts in geometry order.
func (c *CLI) runRender(ctx context.Context, input string, opts renderOpts) error {
	if err := pipeline.ValidateFormats(opts.formats); err != nil {
		return err
	}
	for _, g := range opts.geometries {
		if err := pipeline.ValidateGeometry(g); err != nil {
			return err
		}
	}
	if opts.output == "-" && len(opts.geometries)*len(opts.formats) != 1 {
		return fmt.Errorf("-o - needs exactly one geometry and one format")
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	base := c.pipelineOptions()
	base.Path = input
	base.Formats = opts.formats
	base.Title = opts.title
	base.NoScript = opts.noScript
	base.Refresh = opts.refresh
	base.PNGScale = opts.pngScale
	if opts.scale != 0 {
		base.Scale = opts.scale
	}
	if opts.includeDir != "" {
		base.IncludeDir = opts.includeDir
	}

	if needsConversion(opts.formats) {
		spinner := newSpinner(ctx, c.Err, "Converting with rsvg-convert...")
		spinner.Start()
		defer spinner.Stop()
	}

	prog := newProgress(loggerFromContext(ctx))
	results := make([]*pipeline.Result, len(opts.geometries))
	g, gctx := errgroup.WithContext(ctx)
	for i, geom := range opts.geometries {
		g.Go(func() error {
			o := base
			o.Geometry = geom
			res, err := runner.Execute(gctx, o)
			if err != nil {
				return fmt.Errorf("%s: %w", geom, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.geometries, ", ")))

	if opts.output == "-" {
		res := results[0]
		_, err := c.Out.Write(res.Artifacts[opts.formats[0]])
		return err
	}

	for _, res := range results {
		printSuccess(c.Out, "%s on %s", filepath.Base(input), res.Geometry)
		printStats(c.Out, res.Stats.Keycodes, res.Stats.Keys, res.CacheInfo.RenderHit)
		for _, format := range opts.formats {
			path := outputPath(opts.output, input, res.Geometry, format, len(opts.geometries), len(opts.formats))
			if err := writeArtifact(path, res.Artifacts[format]); err != nil {
				return err
			}
			printFile(c.Out, path)
		}
	}
	return nil
}

// needsConversion reports whether any format goes through rsvg-convert.
func needsConversion(formats []string) bool {
	for _, f := range formats {
		if render.Format(f).Binary() {
			return true
		}
	}
	return false
}

// outputPath names the file for one artifact. A single artifact goes to
// output verbatim when set; otherwise names derive from basePath with the
// geometry appended when several geometries are drawn.
func outputPath(output, input, geometry, format string, nGeometries, nFormats int) string {
	if output != "" && nGeometries == 1 && nFormats == 1 {
		return output
	}
	base := basePath(output, input)
	if nGeometries > 1 {
		base += "_" + geometry
	}
	return base + "." + format
}

// basePath strips a format extension from output, or derives the base from
// the input file name when output is empty.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if render.Format(strings.TrimPrefix(ext, ".")).Valid() {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeArtifact(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
