package cli

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/keysym"
)

func TestDumpColumns(t *testing.T) {
	wide := keymap.New(map[int][]string{1: {"a", "b", "c", "d", "e", "f"}})
	narrow := keymap.New(map[int][]string{1: {"a", "b"}})

	tests := []struct {
		name string
		spec string
		km   *keymap.Keymap
		want []int
	}{
		{"default capped", "", wide, []int{0, 1, 2, 3}},
		{"default narrow", "", narrow, []int{0, 1}},
		{"default empty", "", keymap.New(nil), []int{0}},
		{"explicit", "0,2-3,8", narrow, []int{0, 2, 3, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dumpColumns(tt.spec, tt.km)
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("dumpColumns() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := dumpColumns("3-1", narrow); err == nil {
		t.Error("descending range should be rejected")
	}
}

func TestDumpRows(t *testing.T) {
	km := keymap.New(map[int][]string{
		2:  {"one", "exclam"},
		42: {"Shift"},
	})

	rows, modifiers, err := dumpRows(km, []int{0, 1}, keysym.Default, false)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"2", "1", "!"}, {"42", "SHIFT", ""}}
	if len(rows) != len(want) {
		t.Fatalf("rows = %v, want %v", rows, want)
	}
	for i := range want {
		if !slices.Equal(rows[i], want[i]) {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
	if modifiers[0] || !modifiers[1] {
		t.Errorf("modifiers = %v, want only row 1", modifiers)
	}

	raw, _, err := dumpRows(km, []int{1}, keysym.Default, true)
	if err != nil {
		t.Fatal(err)
	}
	if raw[0][1] != "exclam" {
		t.Errorf("raw row = %v, want keysym names", raw[0])
	}
}

func TestDumpRowsInvalidMeta(t *testing.T) {
	km := keymap.New(map[int][]string{16: {"Meta_adiaeresis"}})
	if _, _, err := dumpRows(km, []int{0}, keysym.Default, false); err == nil {
		t.Error("Meta over a non-ASCII keysym should fail")
	}
}

func TestDumpCommand(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeKeymap(t, "de.map", testKeymap)

	if err := execute(c, "dump", input); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	for _, want := range []string{"keycode", "plain", "shift", "SHIFT", "!", "3 keycodes"} {
		if !strings.Contains(text, want) {
			t.Errorf("dump output missing %q:\n%s", want, text)
		}
	}
}

func TestDumpCommandJSON(t *testing.T) {
	c, out := newTestCLI(t)
	input := writeKeymap(t, "de.map", testKeymap)

	if err := execute(c, "dump", input, "--json"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), `"30": [`) {
		t.Errorf("json dump = %s", out)
	}
}
