package sink

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/layout"
)

func renderSample(t *testing.T) layout.Result {
	t.Helper()
	km := keymap.New(map[int][]string{
		28: {"Return"},
		40: {"apostrophe", "quotedbl"},
		42: {"Shift"},
		58: {"Caps_Lock"},
		86: {"less", "greater"},
		29: {"Control"},
	})
	tree := layout.NewVGroup(
		layout.NewRow(layout.KeyOf(42).Wide(1.25), layout.KeyOf(86), layout.KeyOf(29).Wide(1.25)),
		layout.ISOEnter(
			layout.NewRow(layout.KeyOf(40).Wide(2)),
			layout.NewRow(layout.KeyOf(58).Wide(2.25)),
			28, 1.5, 1.25,
		),
		layout.NewRow(layout.Text("WIN").Wide(3.5)),
	)
	res, err := layout.Render(tree, layout.NewContext(km, 40))
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return res
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(renderSample(t)))

	wants := []string{
		`<?xml version="1.0" encoding="UTF-8" standalone="no"?>`,
		`<svg width="143" height="163" viewBox="-1 -1 142 162"`,
		`<g font-family="Arial" font-size="10px"`,
		`<g class="key mod" data-keycode="42" data-modbit="1" data-labels='["SHIFT"]'><rect x="1" y="1" width="48" height="38"/>`,
		`<g class="key mod" data-keycode="29" data-modbit="4" data-labels='["CTRL"]'>`,
		`data-keycode="86" data-labels='["&lt;","&gt;"]'><rect x="51" y="1" width="38" height="38"/><text x="70" y="20" data-line-height="10">&lt;</text>`,
		`data-labels='["&#39;","\""]'`,
		`<polygon points="81,41 139,41 139,119 91,119 91,79 81,79 81,41"/>`,
		`<tspan x="45" y="100">CAPS</tspan><tspan x="45" y="110">LOCK</tspan>`,
		`<g class="key" data-labels='["WIN"]'>`,
		`.key.mod rect, .key.mod polygon { fill: #ddd; }`,
		`<script type="text/javascript">`,
		"</svg>\n",
	}
	for _, want := range wants {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %s", want)
		}
	}
	if strings.Contains(svg, `data-keycode="58" data-modbit`) {
		t.Error("CAPS LOCK should be styled as a modifier without a column bit")
	}
}

func TestRenderSVGOptions(t *testing.T) {
	style := Style{FontFamily: "DejaVu Sans", KeyFill: "#fff"}
	svg := string(RenderSVG(renderSample(t), WithStyle(style), WithoutScript(), WithTitle("cz & sk")))

	if strings.Contains(svg, "<script") {
		t.Error("WithoutScript() should omit the script")
	}
	for _, want := range []string{
		`font-family="DejaVu Sans" font-size="10px"`,
		`.key rect, .key polygon { fill: #fff; stroke: #ccc;`,
		`<title>cz &amp; sk</title>`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %s", want)
		}
	}
}

func TestRenderSVGEmpty(t *testing.T) {
	svg := string(RenderSVG(layout.Result{}))
	if !strings.Contains(svg, `<svg width="3" height="3" viewBox="-1 -1 2 2"`) {
		t.Errorf("empty SVG header wrong:\n%s", svg)
	}
}

func TestNum(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{41, "41"},
		{0.5, "0.5"},
		{33.300000000000004, "33.3"},
		{-1, "-1"},
		{1.0 / 3, "0.33"},
	}
	for _, tt := range tests {
		if got := num(tt.in); got != tt.want {
			t.Errorf("num(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(renderSample(t), "iso")
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if doc.Geometry != "iso" || doc.Keys != 7 || doc.Width != 140 || doc.Height != 160 {
		t.Errorf("doc = %s %d keys %gx%g", doc.Geometry, doc.Keys, doc.Width, doc.Height)
	}

	var enter *layout.Shape
	for i := range doc.Shapes {
		if doc.Shapes[i].Keycode == 28 {
			enter = &doc.Shapes[i]
		}
	}
	if enter == nil || enter.Kind != layout.ShapePolygon || len(enter.Points) != 7 {
		t.Fatalf("enter key = %+v", enter)
	}
	if !strings.Contains(string(data), `"role": "modifier"`) {
		t.Error("JSON should name modifier roles")
	}
}
