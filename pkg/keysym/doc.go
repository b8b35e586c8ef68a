// Package keysym resolves Linux console keysym names into the labels drawn on
// keyboard diagrams.
//
// # Pipeline
//
// [Resolver.Label] applies, in order:
//
//  1. Strip a leading "+" (the case-lock marker loadkeys emits for letters)
//     and keep it as a prefix of the result.
//  2. Decode the literal code point form "U+XXXX" directly.
//  3. Canonicalize the name through the synonym table (at most one step).
//  4. Resolve "Meta_<inner>" as "M-" plus the plain-ASCII label of inner;
//     a Meta combination over anything else is an error.
//  5. Look the name up in the label table, falling back to the name itself.
//
// # Keys
//
// [MainLabel] picks the label drawn on a key (the plain column without the
// "+" marker) and [RoleOf] decides whether the key is styled as a modifier.
package keysym
