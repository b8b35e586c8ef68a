// Package sink writes rendered keyboard layouts as documents.
//
// [RenderSVG] produces a standalone SVG: one group per key holding its
// outline and word-wrapped label, with the labels of every modifier column
// attached as a JSON array in a data-labels attribute. An embedded script
// lets viewers click modifier keys to switch which column is shown.
//
// [RenderJSON] exports the same shapes as JSON for other tools.
package sink
