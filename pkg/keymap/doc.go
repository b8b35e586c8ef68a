// Package keymap interprets Linux console keymap sources (the loadkeys
// format) into a [Keymap]: a table from keycode to the keysyms it produces
// under each modifier column.
//
// # Directives
//
// The interpreter understands the subset of the format that affects the
// table:
//
//	include "name"           interpret keymaps/name.inc into the same table
//	keymaps 0-2,4-6,8        select the columns bare keycode lines populate
//	keycode 30 = a           assign keysyms to the selected columns
//	shift altgr keycode 30 = Aacute
//	                         assign one column explicitly
//
// charset, alt_is_meta, string(s) and compose lines are accepted and
// ignored. Anything else is an error.
//
// # Single Letters
//
// A keycode line with exactly one ASCII letter expands the way loadkeys
// expands it: the letter and its uppercase with the case-lock marker,
// Control_x, Meta_ and Meta_Control_ forms, repeating every 16 columns.
//
// # Usage
//
//	km, err := keymap.Load("cz.map")
//	syms, ok := km.Keysyms(30) // ["+a", "+A", ...]
//
// Includes share one [Builder], so later lines for the same keycode and
// column overwrite earlier ones no matter which file they came from.
package keymap
