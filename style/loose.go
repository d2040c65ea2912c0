package style

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/modifier"
	"github.com/decor-cli/decor/tuple"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"go.uber.org/multierr"
)

// Loose mirrors Flat with untyped fields. Each field accepts the Go shapes
// documented on its resolver as well as values decoded from TOML, YAML or
// JSON (numbers, lists and tables).
type Loose struct {
	Padding    any
	Background any
	Border     any
	OnClick    func()

	Width  any
	Height any

	FillMaxWidth  any
	FillMaxHeight any
	FillMaxSize   any
}

// Flat resolves every field. All malformed fields are reported together.
func (l Loose) Flat() (*Flat, error) {
	var (
		f    = Flat{OnClick: l.OnClick}
		errs error
		err  error
	)

	f.Padding, err = ResolvePadding("padding", l.Padding)
	errs = multierr.Append(errs, err)
	f.Background, err = ResolveBackground("background", l.Background)
	errs = multierr.Append(errs, err)
	f.Border, err = ResolveBorder("border", l.Border)
	errs = multierr.Append(errs, err)

	f.Width, err = resolveCells("width", l.Width)
	errs = multierr.Append(errs, err)
	f.Height, err = resolveCells("height", l.Height)
	errs = multierr.Append(errs, err)

	f.FillMaxWidth, err = resolveFraction("fill_max_width", l.FillMaxWidth)
	errs = multierr.Append(errs, err)
	f.FillMaxHeight, err = resolveFraction("fill_max_height", l.FillMaxHeight)
	errs = multierr.Append(errs, err)
	f.FillMaxSize, err = resolveFraction("fill_max_size", l.FillMaxSize)
	errs = multierr.Append(errs, err)

	if errs != nil {
		return nil, errs
	}
	return &f, nil
}

// ResolvePadding accepts a Padding variant, modifier.Edges, a distance,
// lo.Tuple2[int, int] (horizontal, vertical), tuple.Nested[int]
// (((left, top), right), bottom), lo.Tuple2[any, any], a list of 1, 2 or 4
// distances, or a table of left/top/right/bottom. A nil value means unset.
func ResolvePadding(field string, v any) (Padding, error) {
	switch p := v.(type) {
	case nil:
		return nil, nil
	case Padding:
		return p, nil
	case modifier.Edges:
		return PaddingStructured{Edges: p}, nil
	case lo.Tuple2[int, int]:
		return PaddingAxes{Horizontal: p.A, Vertical: p.B}, nil
	case tuple.Nested[int]:
		return PaddingFour{
			Left:   tuple.First(p),
			Top:    tuple.Second(p),
			Right:  tuple.Third(p),
			Bottom: tuple.Fourth(p),
		}, nil
	case lo.Tuple2[any, any]:
		return paddingPair(field, v, p.A, p.B)
	case []int:
		return paddingList(field, v, lo.ToAnySlice(p))
	case []any:
		return paddingList(field, v, p)
	case map[string]any:
		return paddingTable(field, p)
	}

	if d, ok := cells(v); ok {
		return PaddingUniform{Distance: d}, nil
	}
	if _, ok := number(v); ok {
		return nil, newConfigError(field, v, ErrShapeMismatch, "distance must be a whole number of cells")
	}
	return nil, newConfigError(field, v, ErrUnrecognizedShape, "")
}

func paddingPair(field string, raw, first, second any) (Padding, error) {
	if h, ok := cells(first); ok {
		vert, ok := cells(second)
		if !ok {
			return nil, newConfigError(field, raw, ErrShapeMismatch, "vertical distance must be whole cells, got %T", second)
		}
		return PaddingAxes{Horizontal: h, Vertical: vert}, nil
	}

	inner, ok := asPair(first)
	if !ok {
		return nil, newConfigError(field, raw, ErrUnrecognizedShape, "")
	}
	innermost, ok := asPair(inner.A)
	if !ok {
		return nil, newConfigError(field, raw, ErrShapeMismatch, "expected (((left, top), right), bottom), got %T innermost", inner.A)
	}

	edges := []any{innermost.A, innermost.B, inner.B, second}
	return paddingList(field, raw, edges)
}

func paddingList(field string, raw any, items []any) (Padding, error) {
	ds := make([]int, len(items))
	for i, item := range items {
		d, ok := cells(item)
		if !ok {
			return nil, newConfigError(field, raw, ErrShapeMismatch, "element %d must be whole cells, got %T", i, item)
		}
		ds[i] = d
	}

	switch len(ds) {
	case 1:
		return PaddingUniform{Distance: ds[0]}, nil
	case 2:
		return PaddingAxes{Horizontal: ds[0], Vertical: ds[1]}, nil
	case 4:
		return PaddingFour{Left: ds[0], Top: ds[1], Right: ds[2], Bottom: ds[3]}, nil
	default:
		return nil, newConfigError(field, raw, ErrUnrecognizedShape, "expected 1, 2 or 4 distances, got %d", len(ds))
	}
}

func paddingTable(field string, table map[string]any) (Padding, error) {
	var edges modifier.Edges
	sides := map[string]*int{
		"left":   &edges.Left,
		"top":    &edges.Top,
		"right":  &edges.Right,
		"bottom": &edges.Bottom,
	}

	for name, value := range table {
		side, ok := sides[name]
		if !ok {
			return nil, newConfigError(field, table, ErrShapeMismatch, "unknown side %q", name)
		}
		d, ok := cells(value)
		if !ok {
			return nil, newConfigError(field, table, ErrShapeMismatch, "side %q must be whole cells, got %T", name, value)
		}
		*side = d
	}

	return PaddingStructured{Edges: edges}, nil
}

// ResolveBackground accepts a Background variant, a color (lipgloss.Color
// or a palette name / color string), lo.Tuple2[lipgloss.Color, modifier.Shape],
// lo.Tuple2[any, any], a [color, shape] list, or a table with color and
// optional shape. A nil value means unset.
func ResolveBackground(field string, v any) (Background, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case Background:
		return b, nil
	case lo.Tuple2[lipgloss.Color, modifier.Shape]:
		return ShapedBackground{Color: b.A, Shape: b.B}, nil
	case lo.Tuple2[any, any]:
		return backgroundPair(field, v, b.A, b.B)
	case []any:
		if len(b) != 2 {
			return nil, newConfigError(field, v, ErrUnrecognizedShape, "expected [color, shape], got %d elements", len(b))
		}
		return backgroundPair(field, v, b[0], b[1])
	case map[string]any:
		return backgroundTable(field, b)
	}

	if c, ok := asColor(v); ok {
		return Solid{Color: c}, nil
	}
	if s, ok := v.(string); ok {
		return nil, newConfigError(field, v, ErrUnrecognizedShape, "unknown color %q", s)
	}
	return nil, newConfigError(field, v, ErrUnrecognizedShape, "")
}

func backgroundPair(field string, raw, first, second any) (Background, error) {
	c, ok := asColor(first)
	if !ok {
		return nil, newConfigError(field, raw, ErrUnrecognizedShape, "first element must be a color, got %T", first)
	}
	shape, ok := asShape(second)
	if !ok {
		return nil, newConfigError(field, raw, ErrShapeMismatch, "second element must be a shape, got %v", second)
	}
	return ShapedBackground{Color: c, Shape: shape}, nil
}

func backgroundTable(field string, table map[string]any) (Background, error) {
	if err := onlyKeys(field, table, "color", "shape"); err != nil {
		return nil, err
	}

	rawColor, present := table["color"]
	if !present {
		return nil, newConfigError(field, table, ErrShapeMismatch, "color is required")
	}
	c, ok := asColor(rawColor)
	if !ok {
		return nil, newConfigError(field, table, ErrShapeMismatch, "unknown color %v", rawColor)
	}

	raw, present := table["shape"]
	if !present {
		return Solid{Color: c}, nil
	}
	shape, ok := asShape(raw)
	if !ok {
		return nil, newConfigError(field, table, ErrShapeMismatch, "unknown shape %v", raw)
	}
	return ShapedBackground{Color: c, Shape: shape}, nil
}

// ResolveBorder accepts a Border variant, modifier.Stroke,
// lo.Tuple2[int, lipgloss.Color], lo.Tuple2[modifier.Stroke, modifier.Shape],
// lo.Tuple2[lo.Tuple2[int, lipgloss.Color|color.Brush|modifier.Fill], modifier.Shape],
// lo.Tuple2[any, any], a [width, color] or [width, color, shape] list, or a
// table of width, color or brush, and shape. A nil value means unset.
func ResolveBorder(field string, v any) (Border, error) {
	switch b := v.(type) {
	case nil:
		return nil, nil
	case Border:
		return b, nil
	case modifier.Stroke:
		return StrokeBorder{Stroke: b}, nil
	case lo.Tuple2[int, lipgloss.Color]:
		return WidthColorBorder{Width: b.A, Color: b.B}, nil
	case lo.Tuple2[modifier.Stroke, modifier.Shape]:
		return ShapedStrokeBorder{Stroke: b.A, Shape: b.B}, nil
	case lo.Tuple2[lo.Tuple2[int, lipgloss.Color], modifier.Shape]:
		return ColorBorder(b.A.A, b.A.B, b.B), nil
	case lo.Tuple2[lo.Tuple2[int, color.Brush], modifier.Shape]:
		return BrushBorder(b.A.A, b.A.B, b.B), nil
	case lo.Tuple2[lo.Tuple2[int, modifier.Fill], modifier.Shape]:
		return FilledBorder{Width: b.A.A, Fill: b.A.B, Shape: b.B}, nil
	case lo.Tuple2[any, any]:
		return borderPair(field, v, b.A, b.B)
	case []any:
		switch len(b) {
		case 2:
			return borderPair(field, v, b[0], b[1])
		case 3:
			return borderPair(field, v, lo.T2(b[0], b[1]), b[2])
		default:
			return nil, newConfigError(field, v, ErrUnrecognizedShape, "expected [width, color] or [width, color, shape], got %d elements", len(b))
		}
	case map[string]any:
		return borderTable(field, b)
	}

	return nil, newConfigError(field, v, ErrUnrecognizedShape, "")
}

func borderPair(field string, raw, first, second any) (Border, error) {
	if width, ok := cells(first); ok {
		c, ok := asColor(second)
		if !ok {
			return nil, newConfigError(field, raw, ErrShapeMismatch, "second element must be a color, got %T", second)
		}
		return WidthColorBorder{Width: width, Color: c}, nil
	}

	if stroke, ok := first.(modifier.Stroke); ok {
		shape, ok := asShape(second)
		if !ok {
			return nil, newConfigError(field, raw, ErrShapeMismatch, "second element must be a shape, got %v", second)
		}
		return ShapedStrokeBorder{Stroke: stroke, Shape: shape}, nil
	}

	inner, ok := asPair(first)
	if !ok {
		return nil, newConfigError(field, raw, ErrUnrecognizedShape, "")
	}
	width, ok := cells(inner.A)
	if !ok {
		return nil, newConfigError(field, raw, ErrShapeMismatch, "width must be whole cells, got %T", inner.A)
	}
	fill, ok := asFill(inner.B)
	if !ok {
		return nil, newConfigError(field, raw, ErrShapeMismatch, "fill must be a color or brush, got %T", inner.B)
	}
	shape, ok := asShape(second)
	if !ok {
		return nil, newConfigError(field, raw, ErrShapeMismatch, "second element must be a shape, got %v", second)
	}
	return FilledBorder{Width: width, Fill: fill, Shape: shape}, nil
}

func borderTable(field string, table map[string]any) (Border, error) {
	if err := onlyKeys(field, table, "width", "color", "brush", "shape"); err != nil {
		return nil, err
	}

	width := 1
	if raw, present := table["width"]; present {
		w, ok := cells(raw)
		if !ok {
			return nil, newConfigError(field, table, ErrShapeMismatch, "width must be whole cells, got %T", raw)
		}
		width = w
	}

	rawColor, hasColor := table["color"]
	rawBrush, hasBrush := table["brush"]

	var fill modifier.Fill
	switch {
	case hasColor && hasBrush:
		return nil, newConfigError(field, table, ErrShapeMismatch, "color and brush are mutually exclusive")
	case hasColor:
		c, ok := asColor(rawColor)
		if !ok {
			return nil, newConfigError(field, table, ErrShapeMismatch, "unknown color %v", rawColor)
		}
		fill = modifier.ColorFill(c)
	case hasBrush:
		b, ok := asBrush(rawBrush)
		if !ok {
			return nil, newConfigError(field, table, ErrShapeMismatch, "brush must list at least 2 colors, got %v", rawBrush)
		}
		fill = modifier.BrushFill(b)
	default:
		return nil, newConfigError(field, table, ErrShapeMismatch, "one of color or brush is required")
	}

	rawShape, hasShape := table["shape"]
	if !hasShape {
		if c, ok := fill.Left(); ok {
			return WidthColorBorder{Width: width, Color: c}, nil
		}
		return FilledBorder{Width: width, Fill: fill, Shape: modifier.Rectangle}, nil
	}

	shape, ok := asShape(rawShape)
	if !ok {
		return nil, newConfigError(field, table, ErrShapeMismatch, "unknown shape %v", rawShape)
	}
	return FilledBorder{Width: width, Fill: fill, Shape: shape}, nil
}

func resolveCells(field string, v any) (mo.Option[int], error) {
	if v == nil {
		return mo.None[int](), nil
	}
	d, ok := cells(v)
	if !ok {
		return mo.None[int](), newConfigError(field, v, ErrShapeMismatch, "must be a whole number of cells")
	}
	return mo.Some(d), nil
}

func resolveFraction(field string, v any) (mo.Option[float64], error) {
	if v == nil {
		return mo.None[float64](), nil
	}
	fr, ok := number(v)
	if !ok {
		return mo.None[float64](), newConfigError(field, v, ErrUnrecognizedShape, "")
	}
	if fr < 0 || fr > 1 {
		return mo.None[float64](), newConfigError(field, v, ErrShapeMismatch, "fraction %g outside [0, 1]", fr)
	}
	return mo.Some(fr), nil
}

func onlyKeys(field string, table map[string]any, allowed ...string) error {
	for name := range table {
		if !lo.Contains(allowed, name) {
			return newConfigError(field, table, ErrShapeMismatch, "unknown key %q", name)
		}
	}
	return nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func cells(v any) (int, bool) {
	n, ok := number(v)
	if !ok || n != math.Trunc(n) {
		return 0, false
	}
	return int(n), true
}

// asColor accepts palette names, hex colors and ANSI indices, typed or not.
func asColor(v any) (lipgloss.Color, bool) {
	switch c := v.(type) {
	case lipgloss.Color:
		_, err := color.Parse(string(c))
		return c, err == nil
	case string:
		parsed, err := color.Parse(c)
		return parsed, err == nil
	default:
		return "", false
	}
}

func asShape(v any) (modifier.Shape, bool) {
	switch s := v.(type) {
	case modifier.Shape:
		return s, true
	case string:
		shape, err := modifier.ParseShape(s)
		return shape, err == nil
	default:
		return modifier.Rectangle, false
	}
}

func asBrush(v any) (color.Brush, bool) {
	var stops []any
	switch b := v.(type) {
	case color.Brush:
		return b, len(b.Stops) >= 2
	case []string:
		stops = lo.ToAnySlice(b)
	case []any:
		stops = b
	default:
		return color.Brush{}, false
	}

	colors := make([]lipgloss.Color, 0, len(stops))
	for _, stop := range stops {
		c, ok := asColor(stop)
		if !ok {
			return color.Brush{}, false
		}
		colors = append(colors, c)
	}

	brush, err := color.Linear(colors...)
	return brush, err == nil
}

func asFill(v any) (modifier.Fill, bool) {
	switch f := v.(type) {
	case modifier.Fill:
		return f, true
	case color.Brush:
		return modifier.BrushFill(f), len(f.Stops) >= 2
	}
	if c, ok := asColor(v); ok {
		return modifier.ColorFill(c), true
	}
	if b, ok := asBrush(v); ok {
		return modifier.BrushFill(b), true
	}
	return modifier.Fill{}, false
}

func asPair(v any) (lo.Tuple2[any, any], bool) {
	switch p := v.(type) {
	case lo.Tuple2[any, any]:
		return p, true
	case []any:
		if len(p) == 2 {
			return lo.T2(p[0], p[1]), true
		}
	}
	return lo.Tuple2[any, any]{}, false
}
