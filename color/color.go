// Package color provides a curated palette of terminal colors and gradient brushes.
package color

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// New initializes a lipgloss.Color from a string value.
// Accepts ANSI indices ("4"), 256-color indices ("62") and hex ("#89b4fa").
func New(value string) lipgloss.Color {
	return lipgloss.Color(value)
}

// Standard ANSI 8-color palette.
var (
	Red    = New("1")
	Green  = New("2")
	Yellow = New("3")
	Blue   = New("4")
	Purple = New("5")
	Cyan   = New("6")
	White  = New("7")
	Black  = New("8")
)

// High-intensity ANSI 16-color palette extension.
var (
	HiRed    = New("9")
	HiGreen  = New("10")
	HiYellow = New("11")
	HiBlue   = New("12")
	HiPurple = New("13")
	HiCyan   = New("14")
	HiWhite  = New("15")
)

// Hex-defined surface colors, used by the bundled sample styles.
var (
	Base     = New("#1e1e2e")
	Surface  = New("#313244")
	Overlay  = New("#6c7086")
	Text     = New("#cdd6f4")
	Mauve    = New("#cba6f7")
	Sapphire = New("#74c7ec")
	Peach    = New("#fab387")
)

// Named maps the lower-case names accepted in style sheets onto palette entries.
var Named = map[string]lipgloss.Color{
	"red":      Red,
	"green":    Green,
	"yellow":   Yellow,
	"blue":     Blue,
	"purple":   Purple,
	"cyan":     Cyan,
	"white":    White,
	"black":    Black,
	"base":     Base,
	"surface":  Surface,
	"overlay":  Overlay,
	"text":     Text,
	"mauve":    Mauve,
	"sapphire": Sapphire,
	"peach":    Peach,
}

// ErrUnknownColor is returned for values that are not a palette name, a hex
// color or an ANSI color index.
var ErrUnknownColor = errors.New("unknown color")

// Parse resolves a palette name, a hex color (#rgb or #rrggbb) or an ANSI
// color index between 0 and 255.
func Parse(value string) (lipgloss.Color, error) {
	value = strings.TrimSpace(value)
	if c, ok := Named[strings.ToLower(value)]; ok {
		return c, nil
	}

	if strings.HasPrefix(value, "#") {
		if _, err := colorful.Hex(value); err != nil {
			return "", fmt.Errorf("%w %q: %s", ErrUnknownColor, value, err)
		}
		return New(value), nil
	}

	if n, err := strconv.Atoi(value); err == nil && n >= 0 && n <= 255 {
		return New(value), nil
	}

	return "", fmt.Errorf("%w %q", ErrUnknownColor, value)
}
