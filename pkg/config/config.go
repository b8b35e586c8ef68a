// Package config loads kbdlayout settings from a TOML file.
//
// Every setting has a default, so a missing file is not an error. The file
// is looked up at --config, then $XDG_CONFIG_HOME/kbdlayout/config.toml,
// then ~/.config/kbdlayout/config.toml:
//
//	scale = 40
//	geometry = "iso"
//
//	[style]
//	font_family = "DejaVu Sans"
//
//	[labels]
//	Return = "ENTER"
//
//	[cache]
//	ttl = "24h"
//	redis_addr = "localhost:6379"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/keysym"
	"github.com/matzehuels/kbdlayout/pkg/layout"
	"github.com/matzehuels/kbdlayout/pkg/layout/geometry"
	"github.com/matzehuels/kbdlayout/pkg/render/sink"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

// Config holds every setting.
type Config struct {
	Scale      float64           `toml:"scale"`
	OriginX    float64           `toml:"origin_x"`
	OriginY    float64           `toml:"origin_y"`
	Margin     float64           `toml:"margin"`
	LineHeight float64           `toml:"line_height"`
	Geometry   string            `toml:"geometry"`
	IncludeDir string            `toml:"include_dir"`
	Style      Style             `toml:"style"`
	Labels     map[string]string `toml:"labels"`
	Cache      Cache             `toml:"cache"`
	Server     Server            `toml:"server"`
}

// Style mirrors sink.Style.
type Style struct {
	FontFamily   string  `toml:"font_family"`
	FontSize     float64 `toml:"font_size"`
	KeyFill      string  `toml:"key_fill"`
	KeyStroke    string  `toml:"key_stroke"`
	ModifierFill string  `toml:"modifier_fill"`
	HeldFill     string  `toml:"held_fill"`
	TextFill     string  `toml:"text_fill"`
}

// Cache configures artifact caching.
type Cache struct {
	TTL       Duration `toml:"ttl"`
	Dir       string   `toml:"dir"`
	RedisAddr string   `toml:"redis_addr"`
	Disabled  bool     `toml:"disabled"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// Duration is a time.Duration written as a string such as "24h".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Default returns the built-in settings.
func Default() Config {
	s := sink.DefaultStyle()
	return Config{
		Scale:      40,
		Margin:     layout.DefaultMargin,
		LineHeight: layout.DefaultLineHeight,
		Geometry:   geometry.Default,
		IncludeDir: keymap.DefaultIncludeDir,
		Style: Style{
			FontFamily:   s.FontFamily,
			FontSize:     s.FontSize,
			KeyFill:      s.KeyFill,
			KeyStroke:    s.KeyStroke,
			ModifierFill: s.ModifierFill,
			HeldFill:     s.HeldFill,
			TextFill:     s.TextFill,
		},
		Cache:  Cache{TTL: Duration{24 * time.Hour}},
		Server: Server{Addr: ":8080", MaxBodyBytes: 1 << 20},
	}
}

// Load reads path over the defaults. Keys the file sets replace defaults;
// unknown keys are an error so typos do not go unnoticed.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, kerrors.Wrap(kerrors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return Config{}, kerrors.Wrap(kerrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, kerrors.New(kerrors.ErrCodeInvalidConfig,
			"config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, kerrors.Wrap(kerrors.ErrCodeInvalidConfig, err, "config %s", path)
	}
	return cfg, nil
}

// Resolve loads the file at path, or when path is empty the first file
// found at the default locations, or the defaults when there is none.
// It also returns the path that was read ("" for defaults).
func Resolve(path string) (Config, string, error) {
	if path != "" {
		cfg, err := Load(path)
		return cfg, path, err
	}
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			cfg, err := Load(p)
			return cfg, p, err
		}
	}
	return Default(), "", nil
}

func searchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "kbdlayout", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "kbdlayout", "config.toml"))
	}
	return paths
}

// Validate checks values that would make rendering fail later.
func (c Config) Validate() error {
	switch {
	case c.Scale <= 0:
		return kerrors.New(kerrors.ErrCodeInvalidConfig, "scale must be positive, got %g", c.Scale)
	case c.Margin < 0:
		return kerrors.New(kerrors.ErrCodeInvalidConfig, "margin must not be negative, got %g", c.Margin)
	case c.LineHeight <= 0:
		return kerrors.New(kerrors.ErrCodeInvalidConfig, "line_height must be positive, got %g", c.LineHeight)
	case c.Cache.TTL.Duration < 0:
		return kerrors.New(kerrors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if _, err := geometry.Lookup(c.Geometry); err != nil {
		return err
	}
	return nil
}

// SinkStyle converts the style section for the SVG sink.
func (c Config) SinkStyle() sink.Style {
	return sink.Style{
		FontFamily:   c.Style.FontFamily,
		FontSize:     c.Style.FontSize,
		KeyFill:      c.Style.KeyFill,
		KeyStroke:    c.Style.KeyStroke,
		ModifierFill: c.Style.ModifierFill,
		HeldFill:     c.Style.HeldFill,
		TextFill:     c.Style.TextFill,
	}
}

// Resolver returns a symbol resolver with the [labels] overrides applied.
func (c Config) Resolver() *keysym.Resolver {
	if len(c.Labels) == 0 {
		return keysym.Default
	}
	return keysym.NewResolver(c.Labels)
}

// RenderContext returns the layout context these settings describe.
func (c Config) RenderContext(km *keymap.Keymap) layout.Context {
	ctx := layout.NewContext(km, c.Scale).At(c.OriginX, c.OriginY)
	ctx.Margin = c.Margin
	ctx.LineHeight = c.LineHeight
	ctx.Resolver = c.Resolver()
	return ctx
}
