package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/color"
	"github.com/decor-cli/decor/modifier"
)

// Padding is one of PaddingUniform, PaddingAxes, PaddingFour or PaddingStructured.
type Padding interface {
	fmt.Stringer
	paddingOp() modifier.Op
}

// PaddingUniform pads every side by Distance.
type PaddingUniform struct{ Distance int }

// PaddingAxes pads left/right by Horizontal and top/bottom by Vertical.
type PaddingAxes struct{ Horizontal, Vertical int }

// PaddingFour pads each side independently.
type PaddingFour struct{ Left, Top, Right, Bottom int }

// PaddingStructured passes a prebuilt edges value through.
type PaddingStructured struct{ Edges modifier.Edges }

func (p PaddingUniform) paddingOp() modifier.Op { return modifier.PaddingAll{All: p.Distance} }
func (p PaddingAxes) paddingOp() modifier.Op {
	return modifier.PaddingAxis{Horizontal: p.Horizontal, Vertical: p.Vertical}
}
func (p PaddingFour) paddingOp() modifier.Op {
	return modifier.PaddingEdges{Left: p.Left, Top: p.Top, Right: p.Right, Bottom: p.Bottom}
}
func (p PaddingStructured) paddingOp() modifier.Op { return modifier.PaddingValues{Edges: p.Edges} }

func (p PaddingUniform) String() string    { return p.paddingOp().String() }
func (p PaddingAxes) String() string       { return p.paddingOp().String() }
func (p PaddingFour) String() string       { return p.paddingOp().String() }
func (p PaddingStructured) String() string { return p.paddingOp().String() }

// Background is one of Solid or ShapedBackground.
type Background interface {
	fmt.Stringer
	backgroundOp() modifier.Op
}

// Solid fills with one color.
type Solid struct{ Color lipgloss.Color }

// ShapedBackground fills with a color inside a shape.
type ShapedBackground struct {
	Color lipgloss.Color
	Shape modifier.Shape
}

func (b Solid) backgroundOp() modifier.Op { return modifier.BackgroundColor{Color: b.Color} }
func (b ShapedBackground) backgroundOp() modifier.Op {
	return modifier.BackgroundShaped{Color: b.Color, Shape: b.Shape}
}

func (b Solid) String() string            { return b.backgroundOp().String() }
func (b ShapedBackground) String() string { return b.backgroundOp().String() }

// Border is one of StrokeBorder, WidthColorBorder, ShapedStrokeBorder or FilledBorder.
type Border interface {
	fmt.Stringer
	borderOp() modifier.Op
}

// StrokeBorder passes a prebuilt stroke through.
type StrokeBorder struct{ Stroke modifier.Stroke }

// WidthColorBorder draws a flat color border around a rectangle.
type WidthColorBorder struct {
	Width int
	Color lipgloss.Color
}

// ShapedStrokeBorder draws a prebuilt stroke along a shape.
type ShapedStrokeBorder struct {
	Stroke modifier.Stroke
	Shape  modifier.Shape
}

// FilledBorder draws a border with an explicit width, fill and shape.
type FilledBorder struct {
	Width int
	Fill  modifier.Fill
	Shape modifier.Shape
}

// ColorBorder is a FilledBorder painted with a flat color.
func ColorBorder(width int, c lipgloss.Color, shape modifier.Shape) FilledBorder {
	return FilledBorder{Width: width, Fill: modifier.ColorFill(c), Shape: shape}
}

// BrushBorder is a FilledBorder painted with a gradient.
func BrushBorder(width int, b color.Brush, shape modifier.Shape) FilledBorder {
	return FilledBorder{Width: width, Fill: modifier.BrushFill(b), Shape: shape}
}

func (b StrokeBorder) borderOp() modifier.Op { return modifier.BorderStroke{Stroke: b.Stroke} }
func (b WidthColorBorder) borderOp() modifier.Op {
	return modifier.BorderWidthColor{Width: b.Width, Color: b.Color}
}
func (b ShapedStrokeBorder) borderOp() modifier.Op {
	return modifier.BorderStrokeShape{Stroke: b.Stroke, Shape: b.Shape}
}
func (b FilledBorder) borderOp() modifier.Op {
	return modifier.BorderFillShape{Width: b.Width, Fill: b.Fill, Shape: b.Shape}
}

func (b StrokeBorder) String() string       { return b.borderOp().String() }
func (b WidthColorBorder) String() string   { return b.borderOp().String() }
func (b ShapedStrokeBorder) String() string { return b.borderOp().String() }
func (b FilledBorder) String() string       { return b.borderOp().String() }
