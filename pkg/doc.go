// Package pkg provides the core libraries for kbdlayout keyboard diagrams.
//
// # Overview
//
// kbdlayout turns a Linux console keymap into a picture of a physical
// keyboard: every key is drawn where it sits on the board and labelled with
// the symbols the keymap assigns to it. The pkg directory is organized into
// four main areas:
//
//  1. [keymap] and [keysym] - Keymap interpretation and label resolution
//  2. [layout] - Keyboard geometry trees and the layout computation
//  3. [render] - Output formats (SVG, JSON, PNG, PDF, layout-tree graphs)
//  4. [pipeline] - Orchestration (interpret → layout → render)
//
// # Architecture
//
// The typical data flow:
//
//	keymap source (de.map + includes)
//	         ↓
//	    [keymap] package (keycode → keysyms table)
//	         ↓
//	    [layout] package (geometry tree + context → positioned shapes)
//	         ↓
//	    [render/sink] package (SVG document or JSON)
//	         ↓
//	    SVG/PDF/PNG/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/kbdlayout/pkg/keymap"
//	    "github.com/matzehuels/kbdlayout/pkg/layout"
//	    "github.com/matzehuels/kbdlayout/pkg/layout/geometry"
//	    "github.com/matzehuels/kbdlayout/pkg/render/sink"
//	)
//
//	// 1. Interpret the keymap
//	km, _ := keymap.NewInterpreter().Load("de.map")
//
//	// 2. Pick a geometry and compute the layout
//	g, _ := geometry.Lookup("iso")
//	res, _ := layout.Render(g.Tree(), layout.NewContext(km, 40))
//
//	// 3. Render to SVG
//	svg := sink.RenderSVG(res)
//
// # Main Packages
//
// [keymap] - Interpreter for the loadkeys format: include, keymaps and
// keycode directives, modifier-prefixed assignments and the implicit
// CapsLock behavior of single letters.
//
// [keysym] - Keysym to label resolution with Unicode, Meta and control
// handling, plus the role (plain or modifier) that drives styling.
//
// [layout] - The node types a keyboard is built from and [layout.Render],
// which sizes and positions every key. [layout/geometry] holds the built-in
// ISO and ANSI boards.
//
// [render] - SVG to PNG/PDF conversion. [render/sink] writes the SVG and
// JSON documents; [render/treeviz] draws the layout tree itself through
// Graphviz.
//
// [pipeline] - The complete interpret → layout → render flow shared by the
// CLI and the HTTP server, with artifact caching.
//
// [cache] - File, Redis and null caches plus the key scheme for rendered
// artifacts.
//
// [config] - TOML configuration: defaults, label overrides, styling.
//
// [server] - HTTP API for rendering keymaps.
//
// [errors] - Coded errors with user-facing messages.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/layout/...   # Specific package
//	go test -run Example       # Examples only
//
// [keymap]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/keymap
// [keysym]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/keysym
// [layout]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/layout
// [layout/geometry]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/layout/geometry
// [render]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/render/sink
// [render/treeviz]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/render/treeviz
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/kbdlayout/pkg/observability
package pkg
