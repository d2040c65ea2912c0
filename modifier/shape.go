package modifier

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Shape is the outline a background or border is drawn with.
type Shape int

const (
	Rectangle Shape = iota
	Rounded
	Circle
	Double
	Thick
)

var shapeNames = map[Shape]string{
	Rectangle: "rectangle",
	Rounded:   "rounded",
	Circle:    "circle",
	Double:    "double",
	Thick:     "thick",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ParseShape resolves a shape by name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for shape, n := range shapeNames {
		if n == name {
			return shape, nil
		}
	}
	return Rectangle, fmt.Errorf("unknown shape %q", name)
}

// Border returns the lipgloss border set drawing this shape with a stroke of the given width.
// Terminal borders are one cell wide, so heavier strokes switch to heavier glyphs.
func (s Shape) Border(width int) lipgloss.Border {
	switch {
	case width >= 3 || s == Double:
		return lipgloss.DoubleBorder()
	case width == 2 || s == Thick:
		return lipgloss.ThickBorder()
	case s == Rounded || s == Circle:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}
