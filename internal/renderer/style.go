package renderer

import (
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// LineStyle selects how grid lines are drawn.
type LineStyle uint8

const (
	// LineSolid draws continuous lines.
	LineSolid LineStyle = iota
	// LineDashed draws broken lines.
	LineDashed
)

// FontSizing selects how label sizes are chosen.
type FontSizing uint8

const (
	// FontDynamic scales labels with the cell size.
	FontDynamic FontSizing = iota
	// FontFixed uses Style.FontFixedSize for every label.
	FontFixed
)

// MinLabelSize is the smallest dynamic label size in points.
const MinLabelSize = 6

// Style controls the look of the overlay.
type Style struct {
	// Alpha is the overlay opacity in [0, 1].
	Alpha float64

	Background colorful.Color
	Grid       colorful.Color
	Highlight  colorful.Color
	Text       colorful.Color

	LineWidth      int
	Line           LineStyle
	HighlightWidth int

	FontFamily    string
	FontSizing    FontSizing
	FontFixedSize int
	FontBold      bool
}

// DefaultStyle returns the built-in look: a translucent black overlay
// with white lines and labels and a lime highlight.
func DefaultStyle() Style {
	return Style{
		Alpha:          0.4,
		Background:     colorful.Color{R: 0, G: 0, B: 0},
		Grid:           colorful.Color{R: 1, G: 1, B: 1},
		Highlight:      colorful.Color{R: 0, G: 1, B: 0},
		Text:           colorful.Color{R: 1, G: 1, B: 1},
		LineWidth:      1,
		Line:           LineSolid,
		HighlightWidth: 3,
		FontFamily:     "Consolas",
		FontSizing:     FontDynamic,
		FontFixedSize:  10,
	}
}

// LabelSize returns the font size for a label in a cell of the given
// pixel size. Dynamic sizing fits the label to a third of the cell height
// or to its width, whichever is smaller, and never goes below
// MinLabelSize.
func LabelSize(cellW, cellH float64, label string, s Style) int {
	if s.FontSizing == FontFixed {
		return s.FontFixedSize
	}
	n := float64(utf8.RuneCountInString(label))
	size := math.Min(cellH/3, cellW/(n+1)*1.5)
	return max(MinLabelSize, int(size))
}

// terminal has no translucency; the overlay is emulated by mixing the
// tinted parts toward a black desktop by Alpha.
var desktop = colorful.Color{}

func (s Style) tint(c colorful.Color) colorful.Color {
	a := math.Max(0, math.Min(1, s.Alpha))
	return desktop.BlendRgb(c, a).Clamped()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cellStyle is the background of every overlay cell.
func (s Style) cellStyle() tcell.Style {
	return tcell.StyleDefault.Background(tcellColor(s.tint(s.Background)))
}

func (s Style) lineStyle() tcell.Style {
	st := s.cellStyle().Foreground(tcellColor(s.tint(s.Grid)))
	if s.LineWidth > 1 {
		st = st.Bold(true)
	}
	return st
}

// Labels and the highlight are drawn opaque so they stay legible at low
// alpha.
func (s Style) textStyle() tcell.Style {
	return s.cellStyle().Foreground(tcellColor(s.Text)).Bold(s.FontBold)
}

func (s Style) highlightStyle() tcell.Style {
	st := s.cellStyle().Foreground(tcellColor(s.Highlight))
	if s.HighlightWidth > 1 {
		st = st.Bold(true)
	}
	return st
}
