package keysym

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

const (
	// CaseLockPrefix marks letters produced without regard to case lock.
	CaseLockPrefix = "+"

	metaPrefix      = "Meta_"
	metaLabelPrefix = "M-"
	codePointPrefix = "U+"
)

// Resolver turns keysym names into display labels. The zero value is not
// usable; create one with [NewResolver]. A Resolver is read-only after
// construction and safe for concurrent use.
type Resolver struct {
	labels map[string]string
}

// Default resolves with the built-in tables only.
var Default = NewResolver(nil)

// NewResolver returns a Resolver using the built-in tables with overrides
// applied on top of the label table. Overrides never affect Meta_
// resolution, which is defined over the plain ASCII table alone.
func NewResolver(overrides map[string]string) *Resolver {
	labels := defaultLabels()
	for k, v := range overrides {
		labels[k] = v
	}
	return &Resolver{labels: labels}
}

// Canonical applies the synonym table once. Canonical names are fixed points.
func Canonical(name string) string {
	if c, ok := synonyms[name]; ok {
		return c
	}
	return name
}

// Label resolves a single keysym. Unknown names are returned verbatim; the
// only error is a Meta_ combination over a non-ASCII inner keysym.
func (r *Resolver) Label(keysym string) (string, error) {
	name, prefix := keysym, ""
	if strings.HasPrefix(name, CaseLockPrefix) {
		name, prefix = name[len(CaseLockPrefix):], CaseLockPrefix
	}

	if s, ok := decodeCodePoint(name); ok {
		return prefix + s, nil
	}

	name = Canonical(name)

	if inner, ok := strings.CutPrefix(name, metaPrefix); ok {
		label, found := asciiLabels[Canonical(inner)]
		if !found {
			return "", kerrors.New(kerrors.ErrCodeInvalidMetaCombination,
				"%q: Meta is only defined over plain ASCII keysyms, not %q", keysym, inner)
		}
		return prefix + metaLabelPrefix + label, nil
	}

	if label, ok := r.labels[name]; ok {
		return prefix + label, nil
	}
	return prefix + name, nil
}

// Labels resolves every keysym of a keycode, preserving column order.
func (r *Resolver) Labels(keysyms []string) ([]string, error) {
	out := make([]string, len(keysyms))
	for i, ks := range keysyms {
		label, err := r.Label(ks)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		out[i] = label
	}
	return out, nil
}

// decodeCodePoint handles the "U+XXXX" literal form.
func decodeCodePoint(name string) (string, bool) {
	hex, ok := strings.CutPrefix(name, codePointPrefix)
	if !ok || hex == "" || len(hex) > 6 {
		return "", false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return "", false
	}
	return string(rune(v)), true
}

// MainLabel returns the label drawn on a key: the plain column with the
// case-lock marker removed, or "" when the keycode has no meanings.
func MainLabel(labels []string) string {
	if len(labels) == 0 {
		return ""
	}
	return strings.TrimPrefix(labels[0], CaseLockPrefix)
}
