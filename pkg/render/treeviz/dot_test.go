package treeviz

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/layout"
)

func sampleTree() layout.Node {
	return layout.NewVGroup(
		layout.NewRow(layout.KeyOf(1), layout.Space(1, 1), layout.Text("WIN")),
		layout.ISOEnter(layout.NewRow(layout.KeyOf(16).Wide(2)), layout.NewRow(layout.KeyOf(30).Wide(2.25)), 28, 1.5, 1.25),
	)
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleTree(), Options{})

	for _, want := range []string{
		"digraph G {",
		`n0 [label="VGroup (2)", fillcolor="#eef2f7"];`,
		`n1 [label="Row (3)", fillcolor="#eef2f7"];`,
		`n2 [label="Key(1)"];`,
		`n3 [label="Spacer()", style="rounded,filled,dashed", fillcolor=lightgrey];`,
		`n4 [label="Key(\"WIN\")"];`,
		`n5 [label="StackedPair enter 1.5+1.25"`,
		`n10 [label="SpecialKey(28, 1.5, 1.25, 1, 1)", shape=hexagon];`,
		"n0 -> n1;",
		"n5 -> n10;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s\n%s", want, dot)
		}
	}
	if got := strings.Count(dot, "->"); got != 10 {
		t.Errorf("edges = %d, want 10", got)
	}
}

func TestToDOTWithKeymap(t *testing.T) {
	km := keymap.New(map[int][]string{1: {"Escape"}, 28: {"Return"}, 30: {"Meta_Cyrillic_a"}})
	dot := ToDOT(sampleTree(), Options{Keymap: km})

	for _, want := range []string{
		`label="Key(1)\nESC"`,
		`label="SpecialKey(28, 1.5, 1.25, 1, 1)\n↵"`,
		`label="Key(30, width=2.25)\n(invalid)"`,
		`label="Key(16, width=2)"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %s", want)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(sampleTree(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	s := string(svg)
	if !strings.Contains(s, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 `) {
		t.Errorf("root element not normalized: %.200s", s)
	}
	if !strings.Contains(s, "VGroup (2)") {
		t.Error("SVG should contain node labels")
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Errorf("normalizeViewBox() without viewBox changed input: %s", got)
	}
}
