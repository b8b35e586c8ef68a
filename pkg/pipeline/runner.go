package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/kbdlayout/pkg/cache"
	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/layout"
	"github.com/matzehuels/kbdlayout/pkg/layout/geometry"
	"github.com/matzehuels/kbdlayout/pkg/observability"
)

const artifactKeyType = "artifact"

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use it so their cache entries are interchangeable.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete interpret → layout → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		Geometry:  opts.Geometry,
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Interpret
	interpretStart := time.Now()
	km, err := r.Interpret(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("interpret: %w", err)
	}
	result.Keymap = km
	result.Stats.InterpretTime = time.Since(interpretStart)
	result.Stats.Keycodes = km.Len()

	tableHash, err := TableHash(km)
	if err != nil {
		return nil, fmt.Errorf("interpret: %w", err)
	}
	result.TableHash = tableHash

	r.Logger.Info("interpreted keymap",
		"source", opts.SourceName,
		"keycodes", km.Len(),
		"duration", result.Stats.InterpretTime)

	// Stage 2: Layout
	layoutStart := time.Now()
	res, err := r.Layout(ctx, km, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = res
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Keys = len(res.Shapes)

	r.Logger.Info("computed layout",
		"geometry", opts.Geometry,
		"keys", len(res.Shapes),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, res, tableHash, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Interpret reads the keymap source named by opts.
func (r *Runner) Interpret(ctx context.Context, opts Options) (km *keymap.Keymap, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForInterpret(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnInterpretStart(ctx, opts.SourceName)
	start := time.Now()
	defer func() {
		n := 0
		if km != nil {
			n = km.Len()
		}
		hooks.OnInterpretComplete(ctx, opts.SourceName, n, time.Since(start), err)
	}()

	interpOpts := []keymap.Option{
		keymap.WithIncludeDir(opts.IncludeDir),
		keymap.WithLogger(opts.Logger),
	}
	if opts.FS != nil {
		interpOpts = append(interpOpts, keymap.WithFS(opts.FS))
	}
	in := keymap.NewInterpreter(interpOpts...)

	if opts.Path != "" {
		return in.Load(opts.Path)
	}
	b := keymap.NewBuilder()
	if err := in.InterpretReader(opts.SourceName, strings.NewReader(opts.Source), b); err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// Layout draws the geometry named by opts against km.
func (r *Runner) Layout(ctx context.Context, km *keymap.Keymap, opts Options) (res layout.Result, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return layout.Result{}, err
	}
	g, err := geometry.Lookup(opts.Geometry)
	if err != nil {
		return layout.Result{}, err
	}

	hooks := observability.Pipeline()
	hooks.OnLayoutStart(ctx, g.Name)
	start := time.Now()
	defer func() {
		hooks.OnLayoutComplete(ctx, g.Name, len(res.Shapes), time.Since(start), err)
	}()

	return layout.Render(g.Tree(), opts.LayoutContext(km))
}

// RenderWithCacheInfo generates artifacts with caching and reports whether
// every requested format came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, res layout.Result, tableHash string, opts Options) (artifacts map[string][]byte, hit bool, err error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForLayout(); err != nil {
		return nil, false, err
	}
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	}()

	cacheHooks := observability.Cache()

	// Try to get all formats from cache
	if !opts.Refresh && tableHash != "" {
		artifacts = make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(tableHash, opts.ArtifactKeyOpts(format))
			data, ok, err := r.Cache.Get(ctx, key)
			if err != nil {
				opts.Logger.Warn("cache read failed", "key", key, "err", err)
			}
			if err != nil || !ok {
				cacheHooks.OnCacheMiss(ctx, artifactKeyType)
				break
			}
			cacheHooks.OnCacheHit(ctx, artifactKeyType)
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered, err := RenderArtifacts(ctx, res, opts)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	if tableHash != "" {
		for format, data := range rendered {
			key := r.Keyer.ArtifactKey(tableHash, opts.ArtifactKeyOpts(format))
			if err := r.Cache.Set(ctx, key, data, opts.TTL); err != nil {
				opts.Logger.Warn("cache write failed", "key", key, "err", err)
				continue
			}
			cacheHooks.OnCacheSet(ctx, artifactKeyType, len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, res layout.Result, tableHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, res, tableHash, opts)
	return artifacts, err
}

// TableHash returns the content hash of an interpreted table. Two sources
// that interpret to the same table share a hash.
func TableHash(km *keymap.Keymap) (string, error) {
	data, err := km.MarshalJSON()
	if err != nil {
		return "", fmt.Errorf("serialize keymap for cache key: %w", err)
	}
	return cache.Hash(data), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
