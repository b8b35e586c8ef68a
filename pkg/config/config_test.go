package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/kbdlayout/pkg/keymap"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Scale != 40 || cfg.Margin != 1 || cfg.LineHeight != 10 || cfg.Geometry != "iso" || cfg.IncludeDir != "keymaps" {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.Cache.TTL.Duration != 24*time.Hour {
		t.Errorf("cache ttl = %v", cfg.Cache.TTL)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
scale = 20
geometry = "ansi"
origin_x = 5

[style]
font_family = "DejaVu Sans"

[labels]
Return = "ENTER"

[cache]
ttl = "90m"
redis_addr = "localhost:6379"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scale != 20 || cfg.Geometry != "ansi" || cfg.OriginX != 5 {
		t.Errorf("top-level = %+v", cfg)
	}
	if cfg.Style.FontFamily != "DejaVu Sans" || cfg.Style.KeyFill != "#eee" {
		t.Errorf("style = %+v, want overridden font and default fill", cfg.Style)
	}
	if cfg.Cache.TTL.Duration != 90*time.Minute || cfg.Cache.RedisAddr != "localhost:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Margin != 1 {
		t.Errorf("margin = %g, want default 1", cfg.Margin)
	}

	if got, _ := cfg.Resolver().Label("Return"); got != "ENTER" {
		t.Errorf("Resolver().Label(Return) = %q, want ENTER", got)
	}
	ctx := cfg.RenderContext(keymap.New(nil))
	if ctx.X != 5 || ctx.Scale != 20 || ctx.Margin != 1 {
		t.Errorf("RenderContext() = %+v", ctx)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code kerrors.Code
		msg  string
	}{
		{"syntax", "scale = = 1", kerrors.ErrCodeInvalidConfig, ""},
		{"unknown key", "scael = 40", kerrors.ErrCodeInvalidConfig, "scael"},
		{"zero scale", "scale = 0", kerrors.ErrCodeInvalidConfig, "scale"},
		{"negative margin", "margin = -1", kerrors.ErrCodeInvalidConfig, "margin"},
		{"bad geometry", `geometry = "dvorak"`, kerrors.ErrCodeInvalidConfig, "dvorak"},
		{"bad duration", "[cache]\nttl = \"soon\"", kerrors.ErrCodeInvalidConfig, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !kerrors.Is(err, tt.code) {
				t.Fatalf("Load() error = %v, want %s", err, tt.code)
			}
			if !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("error %q should mention %q", err, tt.msg)
			}
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !kerrors.Is(err, kerrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, kerrors.ErrCodeFileNotFound)
	}
}

func TestResolve(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv("HOME", t.TempDir())

	cfg, path, err := Resolve("")
	if err != nil || path != "" || cfg.Scale != 40 {
		t.Errorf("Resolve() without files = %v, %q, %v", cfg.Scale, path, err)
	}

	want := filepath.Join(xdg, "kbdlayout", "config.toml")
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(want, []byte("scale = 25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, path, err = Resolve("")
	if err != nil || path != want || cfg.Scale != 25 {
		t.Errorf("Resolve() = %v, %q, %v; want 25 from %s", cfg.Scale, path, err, want)
	}

	explicit := writeConfig(t, "scale = 30\n")
	if cfg, path, _ := Resolve(explicit); cfg.Scale != 30 || path != explicit {
		t.Errorf("Resolve(explicit) = %v, %q", cfg.Scale, path)
	}
}

func TestSinkStyle(t *testing.T) {
	cfg := Default()
	cfg.Style.ModifierFill = "#abc"
	if got := cfg.SinkStyle(); got.ModifierFill != "#abc" || got.FontFamily != "Arial" {
		t.Errorf("SinkStyle() = %+v", got)
	}
}
