package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

func TestBasePath(t *testing.T) {
	tests := []struct {
		output, input, want string
	}{
		{"", "de.map", "de"},
		{"", "keymaps/de-latin1.map", "keymaps/de-latin1"},
		{"out.svg", "de.map", "out"},
		{"out/de.png", "de.map", "out/de"},
		{"out/de", "de.map", "out/de"},
		{"out.txt", "de.map", "out.txt"},
	}
	for _, tt := range tests {
		if got := basePath(tt.output, tt.input); got != tt.want {
			t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name            string
		output, input   string
		geometry        string
		format          string
		nGeom, nFormats int
		want            string
	}{
		{"derived", "", "de.map", "iso", "svg", 1, 1, "de.svg"},
		{"explicit single", "board.svg", "de.map", "iso", "svg", 1, 1, "board.svg"},
		{"several formats", "board.svg", "de.map", "iso", "png", 1, 2, "board.png"},
		{"several geometries", "", "de.map", "ansi", "svg", 2, 1, "de_ansi.svg"},
		{"base path", "out/de", "x.map", "iso", "json", 2, 2, "out/de_iso.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPath(tt.output, tt.input, tt.geometry, tt.format, tt.nGeom, tt.nFormats)
			if got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNeedsConversion(t *testing.T) {
	if needsConversion([]string{"svg", "json"}) {
		t.Error("svg and json need no conversion")
	}
	if !needsConversion([]string{"svg", "pdf"}) {
		t.Error("pdf needs conversion")
	}
}

func TestRenderCommand(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeKeymap(t, "de.map", testKeymap)
	dir := filepath.Dir(input)

	if err := execute(c, "render", input, "-g", "iso,ansi", "-f", "svg,json", "--no-cache"); err != nil {
		t.Fatalf("render error: %v", err)
	}

	for _, name := range []string{"de_iso.svg", "de_iso.json", "de_ansi.svg", "de_ansi.json"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing output %s: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("%s is empty", name)
		}
	}
	if !strings.Contains(out.String(), "de_ansi.svg") {
		t.Errorf("output should list written files: %s", out)
	}
	if !strings.Contains(out.String(), "3 keycodes") {
		t.Errorf("output should report stats: %s", out)
	}
}

func TestRenderCommandStdout(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeKeymap(t, "de.map", testKeymap)

	if err := execute(c, "render", input, "-f", "svg", "-o", "-", "--no-script"); err != nil {
		t.Fatalf("render error: %v", err)
	}
	svg := out.String()
	if !strings.HasPrefix(svg, "<?xml") {
		t.Errorf("stdout should carry the SVG, got %.60q", svg)
	}
	if strings.Contains(svg, "<script") {
		t.Error("--no-script should drop the script")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	input := writeKeymap(t, "bad.map", "keycode 2 = one\nfrobnicate\n")
	good := writeKeymap(t, "de.map", testKeymap)

	tests := []struct {
		name string
		args []string
		code kerrors.Code
	}{
		{"parse error", []string{"render", input, "--no-cache"}, kerrors.ErrCodeUnrecognizedDirective},
		{"bad format", []string{"render", good, "-f", "gif"}, kerrors.ErrCodeInvalidFormat},
		{"bad geometry", []string{"render", good, "-g", "jis"}, kerrors.ErrCodeInvalidGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI(t)
			err := execute(c, tt.args...)
			if !kerrors.Is(err, tt.code) {
				t.Errorf("render error = %v, want %s", err, tt.code)
			}
		})
	}

	c, _ := newTestCLI(t)
	if err := execute(c, "render", good, "-g", "iso,ansi", "-o", "-"); err == nil {
		t.Error("-o - with two geometries should be rejected")
	}
}

func TestRenderCommandCaches(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeKeymap(t, "de.map", testKeymap)

	if err := execute(c, "render", input, "-f", "json"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), iconFresh) {
		t.Errorf("first render should be fresh: %s", out)
	}
	out.Reset()
	if err := execute(c, "render", input, "-f", "json"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), iconCached) {
		t.Errorf("second render should be cached: %s", out)
	}
}
