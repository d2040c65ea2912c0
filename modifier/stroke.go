package modifier

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/decor-cli/decor/color"
	"github.com/samber/mo"
)

// Fill is what a border is painted with: a flat color or a gradient brush.
type Fill = mo.Either[lipgloss.Color, color.Brush]

// ColorFill paints with a flat color.
func ColorFill(c lipgloss.Color) Fill {
	return mo.Left[lipgloss.Color, color.Brush](c)
}

// BrushFill paints with a gradient.
func BrushFill(b color.Brush) Fill {
	return mo.Right[lipgloss.Color, color.Brush](b)
}

// Stroke is a pre-built border: a width in cells and a fill.
type Stroke struct {
	Width int
	Fill  Fill
}

// NewStroke creates a flat colored stroke.
func NewStroke(width int, c lipgloss.Color) Stroke {
	return Stroke{Width: width, Fill: ColorFill(c)}
}

func (s Stroke) String() string {
	return fmt.Sprintf("%d/%s", s.Width, fillString(s.Fill))
}

func fillString(f Fill) string {
	if b, ok := f.Right(); ok {
		return b.String()
	}
	return string(f.LeftOrEmpty())
}

// paint applies a fill to the four border sides. Brushes run clockwise from the top.
func paint(st lipgloss.Style, f Fill) lipgloss.Style {
	if b, ok := f.Right(); ok {
		sides := b.Sample(4)
		return st.
			BorderTopForeground(sides[0]).
			BorderRightForeground(sides[1]).
			BorderBottomForeground(sides[2]).
			BorderLeftForeground(sides[3])
	}
	return st.BorderForeground(f.LeftOrEmpty())
}
