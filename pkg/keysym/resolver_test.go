package keysym

import (
	"strings"
	"testing"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

func TestCanonicalIsFixedPoint(t *testing.T) {
	for from, to := range synonyms {
		if got := Canonical(to); got != to {
			t.Errorf("Canonical(%q) = %q, want fixed point %q (reached from %q)", to, got, to, from)
		}
		if got := Canonical(Canonical(from)); got != Canonical(from) {
			t.Errorf("Canonical twice on %q = %q, want %q", from, got, Canonical(from))
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		name   string
		keysym string
		want   string
	}{
		{"lowercase letter drawn as keycap", "a", "A"},
		{"case lock marker kept", "+a", "+A"},
		{"uppercase letter", "+A", "+A"},
		{"digit name", "one", "1"},
		{"synonym to navigation", "Home", "HOME"},
		{"canonical navigation", "Find", "HOME"},
		{"synonym to modifier", "Shift_L", "SHIFTL"},
		{"control synonym", "Control_h", "BS"},
		{"control letter", "Control_a", "C-a"},
		{"lock", "Caps_Lock", "CAPS LOCK"},
		{"keypad", "KP_Enter", "Enter (KP)"},
		{"accented letter", "rcaron", "ř"},
		{"console", "Console_12", "VT12"},
		{"last console", "Console_63", "VT63"},
		{"code point", "U+00e9", "é"},
		{"code point with marker", "+U+0161", "+š"},
		{"meta letter", "Meta_a", "M-a"},
		{"meta uppercase", "Meta_A", "M-A"},
		{"meta control", "Meta_Control_a", "M-C-a"},
		{"meta through synonym", "Meta_Control_h", "M-BS"},
		{"meta punctuation", "Meta_comma", "M-,"},
		{"unknown passes through", "F13", "F13"},
		{"unknown verbatim", "Frobnicate_Key", "Frobnicate_Key"},
		{"malformed code point falls back", "U+zzzz", "U+zzzz"},
		{"void", "VoidSymbol", "VOID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Default.Label(tt.keysym)
			if err != nil {
				t.Fatalf("Label(%q) error: %v", tt.keysym, err)
			}
			if got != tt.want {
				t.Errorf("Label(%q) = %q, want %q", tt.keysym, got, tt.want)
			}
		})
	}
}

func TestLabelInvalidMeta(t *testing.T) {
	for _, ks := range []string{"Meta_F1", "Meta_rcaron", "Meta_", "Meta_KP_Add"} {
		t.Run(ks, func(t *testing.T) {
			_, err := Default.Label(ks)
			if err == nil {
				t.Fatalf("Label(%q) expected error", ks)
			}
			if !kerrors.Is(err, kerrors.ErrCodeInvalidMetaCombination) {
				t.Errorf("Label(%q) error = %v, want code %s", ks, err, kerrors.ErrCodeInvalidMetaCombination)
			}
		})
	}
}

func TestLabelsPropagatesError(t *testing.T) {
	_, err := Default.Labels([]string{"a", "Meta_Up"})
	if !kerrors.Is(err, kerrors.ErrCodeInvalidMetaCombination) {
		t.Fatalf("Labels() error = %v, want %s", err, kerrors.ErrCodeInvalidMetaCombination)
	}
	if got := kerrors.GetCode(err); got != kerrors.ErrCodeInvalidMetaCombination {
		t.Errorf("GetCode() = %s, want the code Label raised", got)
	}
	if !strings.Contains(err.Error(), "column 1") {
		t.Errorf("Labels() error = %q, want the failing column", err)
	}

	got, err := Default.Labels([]string{"+a", "+A", "Control_a", "Meta_a"})
	if err != nil {
		t.Fatalf("Labels() error: %v", err)
	}
	want := []string{"+A", "+A", "C-a", "M-a"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Labels()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDefaultMatchesNewResolver(t *testing.T) {
	fresh := NewResolver(nil)
	for _, ks := range []string{"Console_0", "Console_1", "Console_63", "a", "Z", "Return", "Meta_a"} {
		want, _ := fresh.Label(ks)
		if got, _ := Default.Label(ks); got != want {
			t.Errorf("Default.Label(%q) = %q, NewResolver(nil) gives %q", ks, got, want)
		}
	}
}

func TestOverrides(t *testing.T) {
	r := NewResolver(map[string]string{"Return": "ENTER", "Meta_x": "ignored"})

	if got, _ := r.Label("Return"); got != "ENTER" {
		t.Errorf("Label(Return) = %q, want ENTER", got)
	}
	// Meta combinations still use the plain ASCII table.
	if got, _ := r.Label("Meta_Return"); got != "M-↵" {
		t.Errorf("Label(Meta_Return) = %q, want M-↵", got)
	}
	if got, _ := Default.Label("Return"); got != "↵" {
		t.Errorf("Default.Label(Return) = %q, want ↵ (overrides leaked)", got)
	}
}

func TestMainLabel(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"empty", nil, ""},
		{"strips marker", []string{"+A", "+A"}, "A"},
		{"plain", []string{"ESC"}, "ESC"},
		{"only column zero", []string{"1", "!"}, "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MainLabel(tt.labels); got != tt.want {
				t.Errorf("MainLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRoleOf(t *testing.T) {
	tests := []struct {
		label string
		want  Role
	}{
		{"SHIFT", RoleModifier},
		{"CTRL", RoleModifier},
		{"ALTGR", RoleModifier},
		{"CAPSSHIFT", RoleModifier},
		{"CAPS LOCK", RoleModifier},
		{"SHIFT LOCK", RoleModifier},
		{"CTRLL LOCK", RoleModifier},
		{"NUM LOCK", RolePlain},
		{"SCROLL LOCK", RolePlain},
		{"A", RolePlain},
		{"", RolePlain},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := RoleOf(tt.label); got != tt.want {
				t.Errorf("RoleOf(%q) = %v, want %v", tt.label, got, tt.want)
			}
		})
	}
}
