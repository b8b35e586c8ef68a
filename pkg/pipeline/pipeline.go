// Package pipeline runs the interpret → layout → render pipeline for
// keyboard diagrams.
//
// The CLI and the HTTP server both go through this package, so a keymap
// rendered from either entry point produces the same bytes and shares the
// same cache entries.
//
// # Stages
//
//  1. Interpret: read a keymap source (file or inline text) into a table
//  2. Layout: draw a geometry's layout tree against the table
//  3. Render: produce artifacts (SVG, JSON, PNG, PDF) from the shapes
//
// Rendered artifacts are cached by the hash of the interpreted table plus
// every option that affects the output, so editing an include file
// invalidates the entry while reformatting the source does not.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:     "de-latin1.map",
//	    Geometry: "iso",
//	    Formats:  []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"io/fs"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kbdlayout/pkg/cache"
	"github.com/matzehuels/kbdlayout/pkg/config"
	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/keysym"
	"github.com/matzehuels/kbdlayout/pkg/layout"
	"github.com/matzehuels/kbdlayout/pkg/layout/geometry"
	"github.com/matzehuels/kbdlayout/pkg/render"
	"github.com/matzehuels/kbdlayout/pkg/render/sink"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultScale is the size of one key unit in pixels.
	DefaultScale = 40.0

	// DefaultPNGScale is the rasterization zoom for PNG output.
	DefaultPNGScale = 2.0

	// DefaultSourceName names inline sources in error messages.
	DefaultSourceName = "<input>"

	// DefaultTTL is how long rendered artifacts stay cached.
	DefaultTTL = 24 * time.Hour
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
type Options struct {
	// Input options. Exactly one of Path and Source is set.
	Path       string `json:"path,omitempty"`
	Source     string `json:"source,omitempty"`
	SourceName string `json:"source_name,omitempty"`
	IncludeDir string `json:"include_dir,omitempty"`

	// Layout options
	Geometry   string            `json:"geometry,omitempty"`
	Scale      float64           `json:"scale,omitempty"`
	OriginX    float64           `json:"origin_x,omitempty"`
	OriginY    float64           `json:"origin_y,omitempty"`
	Margin     float64           `json:"margin,omitempty"`
	LineHeight float64           `json:"line_height,omitempty"`
	Labels     map[string]string `json:"labels,omitempty"`

	// Render options
	Formats  []string      `json:"formats,omitempty"`
	Style    sink.Style    `json:"style"`
	Title    string        `json:"title,omitempty"`
	NoScript bool          `json:"no_script,omitempty"`
	PNGScale float64       `json:"png_scale,omitempty"`
	Refresh  bool          `json:"refresh,omitempty"`
	TTL      time.Duration `json:"-"`

	// Runtime options (not serialized)
	FS     fs.FS       `json:"-"` // read sources and includes from FS instead of the OS
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// OptionsFromConfig returns options carrying every setting of cfg. Callers
// fill in the input and formats.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		IncludeDir: cfg.IncludeDir,
		Geometry:   cfg.Geometry,
		Scale:      cfg.Scale,
		OriginX:    cfg.OriginX,
		OriginY:    cfg.OriginY,
		Margin:     cfg.Margin,
		LineHeight: cfg.LineHeight,
		Labels:     cfg.Labels,
		Style:      cfg.SinkStyle(),
		TTL:        cfg.Cache.TTL.Duration,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Keymap is the interpreted keymap table.
	Keymap *keymap.Keymap

	// TableHash is the content hash of the table.
	TableHash string

	// Geometry is the name of the geometry that was drawn.
	Geometry string

	// Layout contains the positioned shapes.
	Layout layout.Result

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Keycodes      int
	Keys          int
	InterpretTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !render.Format(format).Valid() {
		return kerrors.New(kerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateGeometry checks that a geometry is registered.
func ValidateGeometry(name string) error {
	_, err := geometry.Lookup(name)
	return err
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForInterpret(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForInterpret checks that exactly one input is set.
func (o *Options) ValidateForInterpret() error {
	switch {
	case o.Path == "" && o.Source == "":
		return kerrors.New(kerrors.ErrCodeInvalidInput, "keymap path or source is required")
	case o.Path != "" && o.Source != "":
		return kerrors.New(kerrors.ErrCodeInvalidInput, "keymap path and source are mutually exclusive")
	}
	if o.SourceName == "" {
		o.SourceName = o.Path
		if o.SourceName == "" {
			o.SourceName = DefaultSourceName
		}
	}
	if o.IncludeDir == "" {
		o.IncludeDir = keymap.DefaultIncludeDir
	}
	o.setLogger()
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.Geometry == "" {
		o.Geometry = geometry.Default
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Margin == 0 {
		o.Margin = layout.DefaultMargin
	}
	if o.LineHeight == 0 {
		o.LineHeight = layout.DefaultLineHeight
	}
	o.setLogger()
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if o.Scale < 0 {
		return kerrors.New(kerrors.ErrCodeInvalidInput, "scale must be positive, got %g", o.Scale)
	}
	if o.Margin < 0 {
		return kerrors.New(kerrors.ErrCodeInvalidInput, "margin must not be negative, got %g", o.Margin)
	}
	return ValidateGeometry(o.Geometry)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{string(render.FormatSVG)}
	}
	if o.Style == (sink.Style{}) {
		o.Style = sink.DefaultStyle()
	}
	if o.PNGScale == 0 {
		o.PNGScale = DefaultPNGScale
	}
	if o.TTL == 0 {
		o.TTL = DefaultTTL
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// LayoutContext returns the context the geometry tree is drawn with.
func (o *Options) LayoutContext(km *keymap.Keymap) layout.Context {
	ctx := layout.NewContext(km, o.Scale).At(o.OriginX, o.OriginY)
	ctx.Margin = o.Margin
	ctx.LineHeight = o.LineHeight
	if len(o.Labels) > 0 {
		ctx.Resolver = keysym.NewResolver(o.Labels)
	}
	return ctx
}

// ArtifactKeyOpts returns cache key options for one artifact.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Geometry:  o.Geometry,
		Scale:     o.Scale,
		Format:    format,
		StyleHash: o.styleHash(format),
	}
}

// styleHash covers the remaining options that change an artifact's bytes.
func (o *Options) styleHash(format string) string {
	parts := struct {
		Style      sink.Style
		Labels     map[string]string
		Origin     [2]float64
		Margin     float64
		LineHeight float64
		Title      string
		NoScript   bool
		PNGScale   float64
	}{o.Style, o.Labels, [2]float64{o.OriginX, o.OriginY}, o.Margin, o.LineHeight, o.Title, o.NoScript, 0}
	if format == string(render.FormatPNG) {
		parts.PNGScale = o.PNGScale
	}
	return cache.HashJSON(parts)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
