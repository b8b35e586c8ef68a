package layout

import (
	"github.com/matzehuels/kbdlayout/pkg/keysym"

	kerrors "github.com/matzehuels/kbdlayout/pkg/errors"
)

// Render lays out n with its top-left corner at ctx's origin. Shapes are
// returned in tree order; Width and Height are the occupied size in output
// units.
func Render(n Node, ctx Context) (Result, error) {
	if ctx.Scale <= 0 {
		return Result{}, kerrors.New(kerrors.ErrCodeInvalidLayout, "scale must be positive, got %g", ctx.Scale)
	}
	return render(n, ctx)
}

func render(n Node, ctx Context) (Result, error) {
	switch v := n.(type) {
	case Key:
		return renderKey(v, ctx)
	case SpecialKey:
		return renderSpecialKey(v, ctx)
	case Spacer:
		return Result{Width: v.Width * ctx.Scale, Height: v.Height * ctx.Scale}, nil
	case Row:
		return renderRow(v.Children, ctx, "row")
	case HGroup:
		return renderRow(v.Children, ctx, "horizontal group")
	case VGroup:
		return renderColumn(v.Children, ctx)
	case StackedPair:
		return renderStackedPair(v, ctx)
	case nil:
		return Result{}, kerrors.New(kerrors.ErrCodeInvalidLayout, "nil node")
	default:
		return Result{}, kerrors.New(kerrors.ErrCodeInternal, "unknown node type %T", n)
	}
}

func renderKey(k Key, ctx Context) (Result, error) {
	labels, main, err := ctx.labels(k.Content)
	if err != nil {
		return Result{}, err
	}
	width, height := k.Width*ctx.Scale, k.Height*ctx.Scale
	m := ctx.Margin

	shape := Shape{
		Kind:    ShapeRect,
		X:       ctx.X + m,
		Y:       ctx.Y + m,
		Width:   width - 2*m,
		Height:  height - 2*m,
		Keycode: keycodeOf(k.Content),
		Label:   main,
		Lines:   wrapLabel(main, ctx.X+width/2, ctx.Y+height/2, ctx.LineHeight),
		Labels:  labels,
		Role:    keysym.RoleOf(main),
	}
	return Result{Shapes: []Shape{shape}, Width: width, Height: height}, nil
}

func renderSpecialKey(k SpecialKey, ctx Context) (Result, error) {
	labels, main, err := ctx.labels(k.Content)
	if err != nil {
		return Result{}, err
	}
	w1, w2 := k.Width1*ctx.Scale, k.Width2*ctx.Scale
	h1, h2 := k.Height1*ctx.Scale, k.Height2*ctx.Scale
	m := ctx.Margin

	// Walk the outline clockwise from the top-left corner; each vertex is
	// pulled inward by the margin.
	deltas := []Point{{w1, 0}, {0, h1 + h2}, {-w2, 0}, {0, -h2}, {-w1 + w2, 0}, {0, -h1}}
	insets := []Point{{m, m}, {-m, m}, {-m, -m}, {m, -m}, {m, -m}, {m, -m}, {m, m}}

	points := make([]Point, 0, len(insets))
	p := Point{ctx.X, ctx.Y}
	points = append(points, Point{p.X + insets[0].X, p.Y + insets[0].Y})
	for i, d := range deltas {
		p = Point{p.X + d.X, p.Y + d.Y}
		points = append(points, Point{p.X + insets[i+1].X, p.Y + insets[i+1].Y})
	}

	shape := Shape{
		Kind:    ShapePolygon,
		Points:  points,
		Keycode: keycodeOf(k.Content),
		Label:   main,
		Lines:   wrapLabel(main, ctx.X+w1/2, ctx.Y+h1/2, ctx.LineHeight),
		Labels:  labels,
		Role:    keysym.RoleOf(main),
	}
	return Result{Shapes: []Shape{shape}, Width: w1, Height: h1 + h2}, nil
}

// renderRow places children left to right; all must match the first
// child's height.
func renderRow(children []Node, ctx Context, what string) (Result, error) {
	if len(children) == 0 {
		return Result{}, kerrors.New(kerrors.ErrCodeInvalidLayout, "empty %s", what)
	}
	var out Result
	for i, child := range children {
		r, err := render(child, ctx.Shift(out.Width, 0))
		if err != nil {
			return Result{}, err
		}
		if i == 0 {
			out.Height = r.Height
		} else if !sameSize(r.Height, out.Height) {
			return Result{}, mismatch(AxisHeight, children[0].String(), out.Height, child.String(), r.Height)
		}
		out.Shapes = append(out.Shapes, r.Shapes...)
		out.Width += r.Width
	}
	return out, nil
}

// renderColumn stacks children top to bottom; all must match the first
// child's width.
func renderColumn(children []Node, ctx Context) (Result, error) {
	if len(children) == 0 {
		return Result{}, kerrors.New(kerrors.ErrCodeInvalidLayout, "empty vertical group")
	}
	var out Result
	for i, child := range children {
		r, err := render(child, ctx.Shift(0, out.Height))
		if err != nil {
			return Result{}, err
		}
		if i == 0 {
			out.Width = r.Width
		} else if !sameSize(r.Width, out.Width) {
			return Result{}, mismatch(AxisWidth, children[0].String(), out.Width, child.String(), r.Width)
		}
		out.Shapes = append(out.Shapes, r.Shapes...)
		out.Height += r.Height
	}
	return out, nil
}

func renderStackedPair(p StackedPair, ctx Context) (Result, error) {
	r1, err := render(p.Row1, ctx)
	if err != nil {
		return Result{}, err
	}
	r2, err := render(p.Row2, ctx.Shift(0, r1.Height))
	if err != nil {
		return Result{}, err
	}

	extra1, extra2 := p.Width1*ctx.Scale, p.Width2*ctx.Scale
	total1, total2 := r1.Width+extra1, r2.Width+extra2
	if !sameSize(total1, total2) {
		return Result{}, mismatch(AxisWidth,
			p.Row1.String()+"+"+formatUnits(extra1), total1,
			p.Row2.String()+"+"+formatUnits(extra2), total2)
	}

	var trailing Node
	switch p.Variant {
	case EnterHexagon:
		trailing = SpecialKey{
			Content: p.Content,
			Width1:  p.Width1,
			Width2:  p.Width2,
			Height1: r1.Height / ctx.Scale,
			Height2: r2.Height / ctx.Scale,
		}
	case TallKey:
		if p.Width1 != p.Width2 {
			return Result{}, kerrors.New(kerrors.ErrCodeInvalidLayout,
				"tall key beside %s needs equal widths, got %g and %g", p.Row1, p.Width1, p.Width2)
		}
		trailing = Key{Content: p.Content, Width: p.Width1, Height: (r1.Height + r2.Height) / ctx.Scale}
	default:
		return Result{}, kerrors.New(kerrors.ErrCodeInternal, "unknown stacked variant %d", int(p.Variant))
	}

	k, err := render(trailing, ctx.Shift(r1.Width, 0))
	if err != nil {
		return Result{}, err
	}

	shapes := make([]Shape, 0, len(r1.Shapes)+len(r2.Shapes)+len(k.Shapes))
	shapes = append(shapes, r1.Shapes...)
	shapes = append(shapes, r2.Shapes...)
	shapes = append(shapes, k.Shapes...)
	return Result{Shapes: shapes, Width: total1, Height: r1.Height + r2.Height}, nil
}

func keycodeOf(c KeyContent) int {
	if code, ok := c.(KeycodeRef); ok {
		return int(code)
	}
	return -1
}
