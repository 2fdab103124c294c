package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/gridmouse/internal/input/key"
)

// Cell identifies a grid cell by zero-based row and column.
type Cell struct {
	Row int
	Col int
}

// String returns "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GridMap is an immutable, injective mapping between combos and cells.
type GridMap struct {
	name     string
	cols     int
	rows     int
	comboLen int
	byCombo  map[key.Combo]Cell
	byCell   map[Cell]key.Combo
}

// Name returns the map's name, used in error messages.
func (m *GridMap) Name() string {
	return m.name
}

// Cols returns the number of grid columns.
func (m *GridMap) Cols() int {
	return m.cols
}

// Rows returns the number of grid rows.
func (m *GridMap) Rows() int {
	return m.rows
}

// ComboLen returns the number of characters per combo.
func (m *GridMap) ComboLen() int {
	return m.comboLen
}

// Len returns the number of mapped combos.
func (m *GridMap) Len() int {
	return len(m.byCombo)
}

// Complete reports whether every cell of the grid is addressable.
func (m *GridMap) Complete() bool {
	return len(m.byCombo) == m.rows*m.cols
}

// Resolve returns the cell addressed by combo. The combo is normalized
// before lookup.
func (m *GridMap) Resolve(combo key.Combo) (Cell, bool) {
	if m == nil {
		return Cell{}, false
	}
	c, ok := m.byCombo[key.NormalizeCombo(string(combo))]
	return c, ok
}

// Label returns the combo that addresses cell.
func (m *GridMap) Label(cell Cell) (key.Combo, bool) {
	if m == nil {
		return "", false
	}
	c, ok := m.byCell[cell]
	return c, ok
}

// Cells returns all mapped cells in row-major order.
func (m *GridMap) Cells() []Cell {
	cells := make([]Cell, 0, len(m.byCell))
	for c := range m.byCell {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Row != cells[j].Row {
			return cells[i].Row < cells[j].Row
		}
		return cells[i].Col < cells[j].Col
	})
	return cells
}

// Center returns the middle cell of the grid, (rows/2, cols/2).
func (m *GridMap) Center() Cell {
	return Cell{Row: m.rows / 2, Col: m.cols / 2}
}

// Builder accumulates entries for a GridMap and records every problem it
// encounters instead of stopping at the first.
type Builder struct {
	m        *GridMap
	reserved map[key.Combo]struct{}
	errs     []error
}

// NewBuilder starts a map for a grid of cols x rows addressed by combos of
// comboLen characters.
func NewBuilder(name string, cols, rows, comboLen int) *Builder {
	size := max(cols, 0) * max(rows, 0)
	b := &Builder{
		m: &GridMap{
			name:     name,
			cols:     cols,
			rows:     rows,
			comboLen: comboLen,
			byCombo:  make(map[key.Combo]Cell, size),
			byCell:   make(map[Cell]key.Combo, size),
		},
		reserved: make(map[key.Combo]struct{}),
	}
	if cols <= 0 || rows <= 0 {
		b.errs = append(b.errs, fmt.Errorf("%s map %dx%d: %w", name, cols, rows, ErrInvalidDimensions))
	}
	return b
}

// Reserve marks a combo that may not be assigned to any cell.
func (b *Builder) Reserve(combo key.Combo) *Builder {
	b.reserved[key.NormalizeCombo(string(combo))] = struct{}{}
	return b
}

// Add assigns combo to cell. A rejected entry is recorded and returned;
// the first assignment of a combo or cell always wins.
func (b *Builder) Add(combo key.Combo, cell Cell) error {
	combo = key.NormalizeCombo(string(combo))
	err := b.check(combo, cell)
	if err != nil {
		b.errs = append(b.errs, err)
		return err
	}
	b.m.byCombo[combo] = cell
	b.m.byCell[cell] = combo
	return nil
}

func (b *Builder) check(combo key.Combo, cell Cell) error {
	if combo.Len() != b.m.comboLen {
		return fmt.Errorf("%s map combo %q: %w (want %d)", b.m.name, combo.String(), ErrComboLength, b.m.comboLen)
	}
	if _, ok := b.reserved[combo]; ok {
		return fmt.Errorf("%s map combo %q: %w", b.m.name, combo.String(), ErrReservedCombo)
	}
	if cell.Row < 0 || cell.Row >= b.m.rows || cell.Col < 0 || cell.Col >= b.m.cols {
		return fmt.Errorf("%s map cell %s: %w", b.m.name, cell, ErrOutOfRange)
	}
	if existing, ok := b.m.byCombo[combo]; ok {
		return &CollisionError{Combo: combo, Cell: cell, ExistingCombo: combo, ExistingCell: existing}
	}
	if existing, ok := b.m.byCell[cell]; ok {
		return &CollisionError{Combo: combo, Cell: cell, ExistingCombo: existing, ExistingCell: cell}
	}
	return nil
}

// Build returns the map and every error recorded while building it,
// including an *IncompleteError when some cells remain unaddressed.
// The map is returned even when the error is non-nil.
func (b *Builder) Build() (*GridMap, error) {
	errs := b.errs
	if want := b.m.rows * b.m.cols; want > 0 && len(b.m.byCombo) < want {
		errs = append(errs, &IncompleteError{Name: b.m.name, Want: want, Got: len(b.m.byCombo)})
	}
	return b.m, errors.Join(errs...)
}
