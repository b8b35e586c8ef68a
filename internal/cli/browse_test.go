package cli

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFindKeymaps(t *testing.T) {
	fsys := fstest.MapFS{
		"i386/qwertz/de.map":     {Data: []byte("keycode 30 = a")},
		"i386/qwerty/us.map":     {Data: []byte("keycode 30 = a")},
		"i386/include/linux.inc": {Data: []byte("")},
		"README":                 {Data: []byte("")},
	}

	got, err := findKeymaps(fsys)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"i386/qwerty/us.map", "i386/qwertz/de.map"}
	if !slices.Equal(got, want) {
		t.Errorf("findKeymaps() = %v, want %v", got, want)
	}
}

func TestSystemIncludeDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "i386", "include"), 0o755); err != nil {
		t.Fatal(err)
	}

	if got, want := systemIncludeDir(filepath.Join(root, "i386", "qwertz", "de.map")), filepath.Join(root, "i386", "include"); got != want {
		t.Errorf("systemIncludeDir() = %q, want %q", got, want)
	}
	if got := systemIncludeDir(filepath.Join(root, "de.map")); got != "" {
		t.Errorf("systemIncludeDir() without include dir = %q, want empty", got)
	}
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func update(t *testing.T, m KeymapListModel, msgs ...tea.Msg) (KeymapListModel, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(KeymapListModel)
	}
	return m, cmd
}

func TestKeymapListNavigation(t *testing.T) {
	m := NewKeymapListModel([]string{"de.map", "fr.map", "us.map"})

	m, _ = update(t, m, key(tea.KeyUp))
	if m.Cursor != 0 {
		t.Errorf("cursor moved above the first entry: %d", m.Cursor)
	}
	m, _ = update(t, m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown))
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want 2 (clamped at last entry)", m.Cursor)
	}

	m, cmd := update(t, m, key(tea.KeyEnter))
	if m.Selected != "us.map" {
		t.Errorf("Selected = %q, want us.map", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit")
	}
}

func TestKeymapListFilter(t *testing.T) {
	m := NewKeymapListModel([]string{"qwertz/de.map", "qwertz/de-latin1.map", "qwerty/us.map"})

	m, _ = update(t, m, key(tea.KeyDown), runes("de"))
	if m.Cursor != 0 {
		t.Errorf("typing should reset the cursor, got %d", m.Cursor)
	}
	if got := m.Visible(); len(got) != 2 {
		t.Errorf("Visible() = %v, want the two de maps", got)
	}

	m, _ = update(t, m, runes("-"))
	if got := m.Visible(); !slices.Equal(got, []string{"qwertz/de-latin1.map"}) {
		t.Errorf("Visible() = %v", got)
	}
	if !strings.Contains(m.View(), "filter: de-") {
		t.Error("view should show the active filter")
	}

	m, _ = update(t, m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace))
	if m.Filter != "" || len(m.Visible()) != 3 {
		t.Errorf("filter %q should be cleared", m.Filter)
	}
}

func TestKeymapListQuit(t *testing.T) {
	m := NewKeymapListModel([]string{"de.map"})
	m, cmd := update(t, m, key(tea.KeyEsc))
	if cmd == nil || m.Selected != "" {
		t.Error("esc should quit without a selection")
	}

	empty := NewKeymapListModel(nil)
	if _, cmd := update(t, empty, key(tea.KeyEnter)); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
}

func TestKeymapListScroll(t *testing.T) {
	files := make([]string, 20)
	for i := range files {
		files[i] = filepath.Join("maps", string(rune('a'+i))+".map")
	}
	m := NewKeymapListModel(files)
	m, _ = update(t, m, tea.WindowSizeMsg{Height: 11})
	if m.Height != 5 {
		t.Fatalf("Height = %d, want 5", m.Height)
	}
	for range 7 {
		m, _ = update(t, m, key(tea.KeyDown))
	}
	if m.Offset != 3 {
		t.Errorf("Offset = %d, want 3", m.Offset)
	}
	if !strings.Contains(m.View(), "[8/20]") {
		t.Error("view should show the position")
	}
}
