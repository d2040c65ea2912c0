package modifier

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/util"
)

// Kind groups ops by the concern they decorate.
type Kind int

const (
	KindPadding Kind = iota
	KindBackground
	KindBorder
	KindClickable
	KindSize
)

func (k Kind) String() string {
	switch k {
	case KindPadding:
		return "padding"
	case KindBackground:
		return "background"
	case KindBorder:
		return "border"
	case KindClickable:
		return "clickable"
	case KindSize:
		return "size"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Frame is the size of the area a chain is rendered into. Fill ops resolve
// their fractions against it; a zero dimension leaves fills on that axis unresolved.
type Frame struct {
	Width, Height int
}

// Op is one atomic decoration. The set of ops is closed.
type Op interface {
	fmt.Stringer
	Kind() Kind
	apply(st lipgloss.Style, f Frame) lipgloss.Style
}

// Edges holds a distance per side, in cells.
type Edges struct {
	Left, Top, Right, Bottom int
}

// pad adds to the padding already present, so stacked padding ops accumulate.
func pad(st lipgloss.Style, e Edges) lipgloss.Style {
	return st.
		PaddingLeft(st.GetPaddingLeft() + e.Left).
		PaddingTop(st.GetPaddingTop() + e.Top).
		PaddingRight(st.GetPaddingRight() + e.Right).
		PaddingBottom(st.GetPaddingBottom() + e.Bottom)
}

// PaddingValues applies a structured padding value as is.
type PaddingValues struct{ Edges Edges }

func (PaddingValues) Kind() Kind { return KindPadding }
func (o PaddingValues) String() string {
	return fmt.Sprintf("padding(%+v)", o.Edges)
}
func (o PaddingValues) apply(st lipgloss.Style, _ Frame) lipgloss.Style { return pad(st, o.Edges) }

// PaddingAll pads every side by the same distance.
type PaddingAll struct{ All int }

func (PaddingAll) Kind() Kind { return KindPadding }
func (o PaddingAll) String() string {
	return fmt.Sprintf("padding(%d)", o.All)
}
func (o PaddingAll) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return pad(st, Edges{o.All, o.All, o.All, o.All})
}

// PaddingAxis pads left and right by Horizontal, top and bottom by Vertical.
type PaddingAxis struct{ Horizontal, Vertical int }

func (PaddingAxis) Kind() Kind { return KindPadding }
func (o PaddingAxis) String() string {
	return fmt.Sprintf("padding(h=%d, v=%d)", o.Horizontal, o.Vertical)
}
func (o PaddingAxis) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return pad(st, Edges{o.Horizontal, o.Vertical, o.Horizontal, o.Vertical})
}

// PaddingEdges pads each side independently.
type PaddingEdges struct{ Left, Top, Right, Bottom int }

func (PaddingEdges) Kind() Kind { return KindPadding }
func (o PaddingEdges) String() string {
	return fmt.Sprintf("padding(l=%d, t=%d, r=%d, b=%d)", o.Left, o.Top, o.Right, o.Bottom)
}
func (o PaddingEdges) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return pad(st, Edges{o.Left, o.Top, o.Right, o.Bottom})
}

// BackgroundColor fills the background with a solid color.
type BackgroundColor struct{ Color lipgloss.Color }

func (BackgroundColor) Kind() Kind { return KindBackground }
func (o BackgroundColor) String() string {
	return fmt.Sprintf("background(%s)", o.Color)
}
func (o BackgroundColor) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return st.Background(o.Color)
}

// BackgroundShaped fills the background and outlines it with the shape in the same color.
type BackgroundShaped struct {
	Color lipgloss.Color
	Shape Shape
}

func (BackgroundShaped) Kind() Kind { return KindBackground }
func (o BackgroundShaped) String() string {
	return fmt.Sprintf("background(%s, %s)", o.Color, o.Shape)
}
func (o BackgroundShaped) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	st = st.Background(o.Color)
	if o.Shape == Rectangle {
		return st
	}
	return st.Border(o.Shape.Border(1)).BorderForeground(o.Color)
}

func border(st lipgloss.Style, width int, fill Fill, shape Shape) lipgloss.Style {
	if width <= 0 {
		return st
	}
	return paint(st.Border(shape.Border(width)), fill)
}

// BorderStroke draws a pre-built stroke around a rectangle.
type BorderStroke struct{ Stroke Stroke }

func (BorderStroke) Kind() Kind { return KindBorder }
func (o BorderStroke) String() string {
	return fmt.Sprintf("border(%s)", o.Stroke)
}
func (o BorderStroke) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return border(st, o.Stroke.Width, o.Stroke.Fill, Rectangle)
}

// BorderWidthColor draws a flat colored border of the given width.
type BorderWidthColor struct {
	Width int
	Color lipgloss.Color
}

func (BorderWidthColor) Kind() Kind { return KindBorder }
func (o BorderWidthColor) String() string {
	return fmt.Sprintf("border(%d, %s)", o.Width, o.Color)
}
func (o BorderWidthColor) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return border(st, o.Width, ColorFill(o.Color), Rectangle)
}

// BorderStrokeShape draws a pre-built stroke along a shape.
type BorderStrokeShape struct {
	Stroke Stroke
	Shape  Shape
}

func (BorderStrokeShape) Kind() Kind { return KindBorder }
func (o BorderStrokeShape) String() string {
	return fmt.Sprintf("border(%s, %s)", o.Stroke, o.Shape)
}
func (o BorderStrokeShape) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return border(st, o.Stroke.Width, o.Stroke.Fill, o.Shape)
}

// BorderFillShape draws a border of the given width, fill and shape.
type BorderFillShape struct {
	Width int
	Fill  Fill
	Shape Shape
}

func (BorderFillShape) Kind() Kind { return KindBorder }
func (o BorderFillShape) String() string {
	return fmt.Sprintf("border(%d, %s, %s)", o.Width, fillString(o.Fill), o.Shape)
}
func (o BorderFillShape) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return border(st, o.Width, o.Fill, o.Shape)
}

// Clickable registers a handler invoked when the decorated element is activated.
// It does not change how the element looks.
type Clickable struct{ OnClick func() }

func (Clickable) Kind() Kind                                      { return KindClickable }
func (Clickable) String() string                                  { return "clickable" }
func (Clickable) apply(st lipgloss.Style, _ Frame) lipgloss.Style { return st }

// Width sets an explicit width in cells.
type Width struct{ Cells int }

func (Width) Kind() Kind { return KindSize }
func (o Width) String() string {
	return fmt.Sprintf("width(%d)", o.Cells)
}
func (o Width) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return st.Width(max(o.Cells, 0))
}

// Height sets an explicit height in cells.
type Height struct{ Cells int }

func (Height) Kind() Kind { return KindSize }
func (o Height) String() string {
	return fmt.Sprintf("height(%d)", o.Cells)
}
func (o Height) apply(st lipgloss.Style, _ Frame) lipgloss.Style {
	return st.Height(max(o.Cells, 0))
}

// share converts a fraction of the frame into cells, leaving room for the border drawn outside.
func share(fraction float64, total, border int) int {
	cells := int(math.Round(util.Clamp(fraction, 0, 1) * float64(total)))
	return max(cells-border, 0)
}

// FillMaxWidth takes a fraction of the frame's width.
type FillMaxWidth struct{ Fraction float64 }

func (FillMaxWidth) Kind() Kind { return KindSize }
func (o FillMaxWidth) String() string {
	return fmt.Sprintf("fillMaxWidth(%g)", o.Fraction)
}
func (o FillMaxWidth) apply(st lipgloss.Style, f Frame) lipgloss.Style {
	if f.Width <= 0 {
		return st
	}
	return st.Width(share(o.Fraction, f.Width, st.GetHorizontalBorderSize()))
}

// FillMaxHeight takes a fraction of the frame's height.
type FillMaxHeight struct{ Fraction float64 }

func (FillMaxHeight) Kind() Kind { return KindSize }
func (o FillMaxHeight) String() string {
	return fmt.Sprintf("fillMaxHeight(%g)", o.Fraction)
}
func (o FillMaxHeight) apply(st lipgloss.Style, f Frame) lipgloss.Style {
	if f.Height <= 0 {
		return st
	}
	return st.Height(share(o.Fraction, f.Height, st.GetVerticalBorderSize()))
}

// FillMaxSize takes a fraction of both frame dimensions.
type FillMaxSize struct{ Fraction float64 }

func (FillMaxSize) Kind() Kind { return KindSize }
func (o FillMaxSize) String() string {
	return fmt.Sprintf("fillMaxSize(%g)", o.Fraction)
}
func (o FillMaxSize) apply(st lipgloss.Style, f Frame) lipgloss.Style {
	st = FillMaxWidth(o).apply(st, f)
	return FillMaxHeight(o).apply(st, f)
}
