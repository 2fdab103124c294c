package app

import (
	"strings"

	"github.com/dshills/gridmouse/internal/config"
	"github.com/dshills/gridmouse/internal/renderer"
)

// StyleFrom converts the style section. Colors that do not parse keep
// the default; Validate has already reported them.
func StyleFrom(sc config.StyleConfig) renderer.Style {
	s := renderer.DefaultStyle()
	s.Alpha = sc.Alpha
	s.Background = config.MustColor(sc.Background, s.Background)
	s.Grid = config.MustColor(sc.GridColor, s.Grid)
	s.Highlight = config.MustColor(sc.HighlightColor, s.Highlight)
	s.Text = config.MustColor(sc.TextColor, s.Text)

	if sc.GridLineWidth > 0 {
		s.LineWidth = sc.GridLineWidth
	}
	if sc.HighlightWidth > 0 {
		s.HighlightWidth = sc.HighlightWidth
	}
	if sc.GridLineStyle == config.LineDashes {
		s.Line = renderer.LineDashed
	}

	if sc.FontFamily != "" {
		s.FontFamily = sc.FontFamily
	}
	if sc.FontSizeBehavior == config.FontFixed {
		s.FontSizing = renderer.FontFixed
	}
	if sc.FontFixedSize > 0 {
		s.FontFixedSize = sc.FontFixedSize
	}
	s.FontBold = strings.EqualFold(sc.FontWeight, "bold")
	return s
}
