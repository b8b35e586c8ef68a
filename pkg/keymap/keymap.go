package keymap

import (
	"encoding/json"
	"maps"
	"slices"
)

// Void is the keysym of a column with no meaning.
const Void = "VoidSymbol"

// Keymap maps keycodes to keysyms indexed by modifier column. It is
// immutable; build one with a [Builder] or [Load].
type Keymap struct {
	entries map[int][]string
}

// New returns a Keymap holding a copy of entries.
func New(entries map[int][]string) *Keymap {
	return &Keymap{entries: cloneEntries(entries)}
}

// Keysyms returns the keysyms of keycode by column. The slice is a copy.
// ok is false when no directive mentioned the keycode.
func (k *Keymap) Keysyms(keycode int) (syms []string, ok bool) {
	if k == nil {
		return nil, false
	}
	syms, ok = k.entries[keycode]
	return slices.Clone(syms), ok
}

// Keycodes returns all keycodes with an entry, ascending.
func (k *Keymap) Keycodes() []int {
	if k == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(k.entries))
}

// Len returns the number of keycodes with an entry.
func (k *Keymap) Len() int {
	if k == nil {
		return 0
	}
	return len(k.entries)
}

// Columns returns the length of the longest keysym list.
func (k *Keymap) Columns() int {
	n := 0
	if k == nil {
		return n
	}
	for _, syms := range k.entries {
		n = max(n, len(syms))
	}
	return n
}

// MarshalJSON encodes the table as {"keycode": [keysyms...]}. Output is
// deterministic, which the artifact cache relies on.
func (k *Keymap) MarshalJSON() ([]byte, error) {
	if k == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(k.entries)
}

// UnmarshalJSON decodes the format written by MarshalJSON.
func (k *Keymap) UnmarshalJSON(data []byte) error {
	entries := make(map[int][]string)
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	k.entries = entries
	return nil
}

// Builder accumulates directives into a table. Includes are interpreted
// into the same Builder as the file that includes them.
// A Builder is not safe for concurrent use.
type Builder struct {
	entries map[int][]string
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make(map[int][]string)}
}

// Set assigns keysym to one column of keycode, padding skipped columns
// with [Void].
func (b *Builder) Set(keycode, column int, keysym string) {
	syms := b.entries[keycode]
	for len(syms) <= column {
		syms = append(syms, Void)
	}
	syms[column] = keysym
	b.entries[keycode] = syms
}

// Clear records keycode as producing no meanings.
func (b *Builder) Clear(keycode int) {
	b.entries[keycode] = []string{}
}

// Build snapshots the accumulated table. The Builder stays usable.
func (b *Builder) Build() *Keymap {
	return &Keymap{entries: cloneEntries(b.entries)}
}

func cloneEntries(entries map[int][]string) map[int][]string {
	out := make(map[int][]string, len(entries))
	for code, syms := range entries {
		out[code] = slices.Clone(syms)
	}
	return out
}
