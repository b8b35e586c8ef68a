package layout

import (
	"github.com/matzehuels/kbdlayout/pkg/keymap"
	"github.com/matzehuels/kbdlayout/pkg/keysym"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

const (
	// DefaultMargin is the inset between a key's cell and its outline.
	DefaultMargin = 1.0
	// DefaultLineHeight is the vertical distance between wrapped label lines.
	DefaultLineHeight = 10.0
)

// Context is the immutable state threaded through a render: the absolute
// origin, the scale from key units to output units, drawing constants and
// the keymap labels come from. Shift returns a translated copy.
type Context struct {
	X, Y       float64
	Scale      float64
	Margin     float64
	LineHeight float64
	Keymap     *keymap.Keymap
	Resolver   *keysym.Resolver
}

// NewContext returns a context at the origin with default margin, line
// height and resolver.
func NewContext(km *keymap.Keymap, scale float64) Context {
	return Context{
		Scale:      scale,
		Margin:     DefaultMargin,
		LineHeight: DefaultLineHeight,
		Keymap:     km,
		Resolver:   keysym.Default,
	}
}

// Shift returns ctx translated by (dx, dy).
func (c Context) Shift(dx, dy float64) Context {
	c.X += dx
	c.Y += dy
	return c
}

// At returns ctx moved to the absolute origin (x, y).
func (c Context) At(x, y float64) Context {
	c.X, c.Y = x, y
	return c
}

func (c Context) resolver() *keysym.Resolver {
	if c.Resolver == nil {
		return keysym.Default
	}
	return c.Resolver
}

// labels resolves what a key shows: the labels for every modifier column
// and the main label drawn on the keycap.
func (c Context) labels(content KeyContent) (all []string, main string, err error) {
	switch v := content.(type) {
	case LiteralText:
		return []string{string(v)}, string(v), nil
	case KeycodeRef:
		syms, _ := c.Keymap.Keysyms(int(v))
		all, err = c.resolver().Labels(syms)
		if err != nil {
			return nil, "", kerrors.Wrap(kerrors.ErrCodeInvalidMetaCombination, err, "keycode %d", int(v))
		}
		return all, keysym.MainLabel(all), nil
	case nil:
		return nil, "", nil
	default:
		return nil, "", kerrors.New(kerrors.ErrCodeInternal, "unknown key content %T", content)
	}
}
