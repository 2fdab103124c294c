package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#rgb", "#rrggbb" or a W3C color name such as
// "lime".
func ParseColor(s string) (colorful.Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
		}
		return c, nil
	}
	tc, ok := tcell.ColorNames[name]
	if !ok || !tc.Valid() {
		return colorful.Color{}, fmt.Errorf("%q: %w", s, ErrUnknownColor)
	}
	r, g, b := tc.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, nil
}

// MustColor is ParseColor falling back to def for invalid input.
func MustColor(s string, def colorful.Color) colorful.Color {
	c, err := ParseColor(s)
	if err != nil {
		return def
	}
	return c
}
