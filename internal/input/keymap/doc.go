// Package keymap maps typed key combos to grid cells.
//
// A GridMap is an injective table from a Combo (one or two normalized
// characters) to a Cell (row, column). Two instances are used at runtime:
//
//   - Coarse: a full-screen grid addressed by two-character combos,
//     generated from character sets (see GenerateCoarse)
//   - Fine: a small sub-grid addressed by single characters, defined by an
//     explicit table of row strings (see GenerateFine)
//
// # Coarse Generation
//
// Rows are grouped into consecutive blocks, one block per second-character
// set. Block b draws its first characters from FirstSets[b], and row r
// pairs them with SecondSets[r mod len(SecondSets)]. Columns enumerate the
// first character in the outer position and the second character in the
// inner position, so with 5-character sets the row "QWERT"/"QWERT" reads
// QQ QW QE QR QT WQ WW ... TT.
//
// # Configuration Errors
//
// Construction never silently drops or renames a combo. Cells that cannot
// be addressed are reported with ErrIncomplete, combos assigned to two
// cells (or cells given two combos) are reported as *CollisionError. The
// returned map still contains every entry that could be built, so callers
// may log the error and continue with a partially usable grid.
//
// # Usage
//
//	coarse, err := keymap.GenerateCoarse(keymap.DefaultCoarseSpec())
//	if err != nil {
//	    log.Warn(err)
//	}
//	cell, ok := coarse.Resolve(key.ComboOf('q', 'w'))
package keymap
