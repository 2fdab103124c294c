package keymap

import (
	"errors"
	"fmt"

	"github.com/dshills/gridmouse/internal/input/key"
)

// Keymap construction errors.
var (
	// ErrIncomplete indicates the map addresses fewer cells than the grid has.
	ErrIncomplete = errors.New("grid key map incomplete")

	// ErrInvalidDimensions indicates a grid with no rows or columns.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")

	// ErrReservedCombo indicates a combo that is reserved for another purpose.
	ErrReservedCombo = errors.New("reserved combo")

	// ErrOutOfRange indicates a cell outside the grid.
	ErrOutOfRange = errors.New("cell out of range")

	// ErrComboLength indicates a combo of the wrong length for the map.
	ErrComboLength = errors.New("wrong combo length")
)

// CollisionError reports a combo that would address two cells, or a cell
// that would be addressed by two combos.
type CollisionError struct {
	// Combo is the combo being added.
	Combo key.Combo

	// Cell is the cell being added.
	Cell Cell

	// ExistingCombo and ExistingCell describe the entry already present.
	ExistingCombo key.Combo
	ExistingCell  Cell
}

func (e *CollisionError) Error() string {
	if e.Combo == e.ExistingCombo {
		return fmt.Sprintf("combo %q assigned to %s and %s", e.Combo.String(), e.ExistingCell, e.Cell)
	}
	return fmt.Sprintf("cell %s assigned combos %q and %q", e.Cell, e.ExistingCombo.String(), e.Combo.String())
}

// IncompleteError reports how many cells a map failed to address.
type IncompleteError struct {
	Name string
	Want int
	Got  int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s map: expected %d combos, built %d", e.Name, e.Want, e.Got)
}

func (e *IncompleteError) Unwrap() error {
	return ErrIncomplete
}

// IsCollision reports whether err contains a *CollisionError.
func IsCollision(err error) bool {
	var ce *CollisionError
	return errors.As(err, &ce)
}
