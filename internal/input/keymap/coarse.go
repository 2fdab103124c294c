package keymap

import (
	"fmt"

	"github.com/dshills/gridmouse/internal/input/key"
)

// Default coarse grid dimensions.
const (
	DefaultCoarseCols = 25
	DefaultCoarseRows = 36
)

// CoarseSpec describes how the coarse map is generated.
type CoarseSpec struct {
	Cols       int
	Rows       int
	FirstSets  []string
	SecondSets []string
}

// DefaultCoarseSpec returns the 25x36 layout built from six home-row
// oriented character sets.
func DefaultCoarseSpec() CoarseSpec {
	sets := []string{"QWERT", "ASDFG", "ZXCVB", "YUIOP", "HJKL;", "NM,./"}
	return CoarseSpec{
		Cols:       DefaultCoarseCols,
		Rows:       DefaultCoarseRows,
		FirstSets:  append([]string(nil), sets...),
		SecondSets: append([]string(nil), sets...),
	}
}

// GenerateCoarse builds the two-character coarse map.
//
// Row r belongs to block r / len(SecondSets) and pairs FirstSets[block]
// with SecondSets[r mod len(SecondSets)]. Column c is the combo
// (first[c / W], second[c mod W]) where W is the length of the row's
// second set. Rows that run out of characters are left short and reported
// through the incomplete error.
func GenerateCoarse(spec CoarseSpec) (*GridMap, error) {
	b := NewBuilder("coarse", spec.Cols, spec.Rows, 2)
	if spec.Cols <= 0 || spec.Rows <= 0 {
		return b.Build()
	}
	if len(spec.SecondSets) == 0 {
		b.errs = append(b.errs, fmt.Errorf("coarse map: no second-character sets: %w", ErrIncomplete))
		return b.Build()
	}

	blockSize := len(spec.SecondSets)
	for r := 0; r < spec.Rows; r++ {
		block := r / blockSize
		if block >= len(spec.FirstSets) {
			// Not enough first sets for the remaining rows.
			break
		}
		first := []rune(spec.FirstSets[block])
		second := []rune(spec.SecondSets[r%blockSize])
		w := len(second)
		if w == 0 {
			continue
		}
		for c := 0; c < spec.Cols; c++ {
			i := c / w
			if i >= len(first) {
				break
			}
			_ = b.Add(key.ComboOf(first[i], second[c%w]), Cell{Row: r, Col: c})
		}
	}
	return b.Build()
}
