package keymap

import (
	"fmt"

	"github.com/dshills/gridmouse/internal/input/key"
)

// Default fine grid dimensions.
const (
	DefaultFineCols = 8
	DefaultFineRows = 3
)

// CenterCombo is the fine-grid combo for the center cell. It is resolved
// outside the table and may not be assigned to a cell.
const CenterCombo key.Combo = " "

// FineSpec describes the fine map as one string of keys per row.
type FineSpec struct {
	Cols     int
	Rows     int
	RowsKeys []string
}

// DefaultFineSpec returns the 8x3 layout taken from both hands' home
// position, skipping the index-finger inner columns.
func DefaultFineSpec() FineSpec {
	return FineSpec{
		Cols:     DefaultFineCols,
		Rows:     DefaultFineRows,
		RowsKeys: []string{"QWERUIOP", "ASDFJKL;", "ZXCVNM,."},
	}
}

// GenerateFine builds the one-character fine map from the row table.
// Rows or keys beyond the grid dimensions are reported as errors.
func GenerateFine(spec FineSpec) (*GridMap, error) {
	b := NewBuilder("fine", spec.Cols, spec.Rows, 1).Reserve(CenterCombo)
	if len(spec.RowsKeys) > spec.Rows && spec.Rows > 0 {
		b.errs = append(b.errs, fmt.Errorf("fine map: %d key rows for %d grid rows: %w",
			len(spec.RowsKeys), spec.Rows, ErrOutOfRange))
	}
	for r, row := range spec.RowsKeys {
		for c, ch := range []rune(row) {
			_ = b.Add(key.ComboOf(ch), Cell{Row: r, Col: c})
		}
	}
	return b.Build()
}

// ResolveFine resolves a single fine-grid character. The center combo
// always resolves to the grid's center cell.
func ResolveFine(m *GridMap, ch rune) (Cell, bool) {
	if m == nil {
		return Cell{}, false
	}
	if ch == ' ' {
		return m.Center(), true
	}
	return m.Resolve(key.ComboOf(ch))
}
