package renderer

import (
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Surface is the overlay window.
type Surface interface {
	// Show makes the overlay visible with the last drawn grid.
	Show()

	// Hide withdraws the overlay.
	Hide()

	// DrawGrid replaces the displayed grid.
	DrawGrid(spec GridSpec)

	// Close releases the surface. It is safe to call more than once.
	Close() error
}

// GridSpec describes one grid in screen pixels.
type GridSpec struct {
	// Cols and Rows divide Bounds into equal cells.
	Cols, Rows int

	// Bounds is the area the grid covers.
	Bounds mouse.Rect

	// Label returns the text drawn in a cell. Nil draws no labels.
	Label func(keymap.Cell) string

	// Highlight is outlined when set.
	Highlight *keymap.Cell
}

// CellRect returns the pixel rectangle of a cell.
func (g GridSpec) CellRect(c keymap.Cell) mouse.Rect {
	return mouse.CellRect(c.Row, c.Col, g.Cols, g.Rows, g.Bounds)
}

// LabelOf returns the label of a cell, or "" without a label function.
func (g GridSpec) LabelOf(c keymap.Cell) string {
	if g.Label == nil {
		return ""
	}
	return g.Label(c)
}

// CoarseGrid describes the full screen grid of m.
func CoarseGrid(m *keymap.GridMap, bounds mouse.Rect) GridSpec {
	return GridSpec{
		Cols:   m.Cols(),
		Rows:   m.Rows(),
		Bounds: bounds,
		Label:  labels(m),
	}
}

// FineGrid describes the sub-grid of m drawn inside rect, with its center
// cell highlighted.
func FineGrid(m *keymap.GridMap, rect mouse.Rect) GridSpec {
	center := m.Center()
	return GridSpec{
		Cols:      m.Cols(),
		Rows:      m.Rows(),
		Bounds:    rect,
		Label:     labels(m),
		Highlight: &center,
	}
}

func labels(m *keymap.GridMap) func(keymap.Cell) string {
	return func(c keymap.Cell) string {
		combo, ok := m.Label(c)
		if !ok {
			return ""
		}
		return combo.String()
	}
}

// Styler is implemented by surfaces whose style can change while shown.
type Styler interface {
	SetStyle(s Style)
}
