package color

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Brush is a linear gradient over two or more color stops.
//
// Hex stops are blended in the Lab color space. When any stop is not a hex
// color the brush steps between stops without blending.
type Brush struct {
	Stops []lipgloss.Color
}

// Linear creates a gradient brush from the given stops.
func Linear(stops ...lipgloss.Color) (Brush, error) {
	if len(stops) < 2 {
		return Brush{}, fmt.Errorf("brush needs at least 2 stops, got %d", len(stops))
	}
	return Brush{Stops: append([]lipgloss.Color(nil), stops...)}, nil
}

// At samples the brush at position t in [0, 1].
func (b Brush) At(t float64) lipgloss.Color {
	switch len(b.Stops) {
	case 0:
		return ""
	case 1:
		return b.Stops[0]
	}

	t = math.Max(0, math.Min(1, t))
	segments := float64(len(b.Stops) - 1)
	i := int(math.Min(math.Floor(t*segments), segments-1))
	local := t*segments - float64(i)

	from, errFrom := colorful.Hex(string(b.Stops[i]))
	to, errTo := colorful.Hex(string(b.Stops[i+1]))
	if errFrom != nil || errTo != nil {
		if local < 0.5 {
			return b.Stops[i]
		}
		return b.Stops[i+1]
	}

	return lipgloss.Color(from.BlendLab(to, local).Clamped().Hex())
}

// Sample returns n evenly spaced colors along the brush.
func (b Brush) Sample(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{b.At(0)}
	}

	out := make([]lipgloss.Color, n)
	for i := range out {
		out[i] = b.At(float64(i) / float64(n-1))
	}
	return out
}

func (b Brush) String() string {
	return fmt.Sprintf("brush%v", b.Stops)
}
