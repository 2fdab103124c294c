package keymap

import "errors"

// Set holds the coarse and fine maps of one configuration snapshot.
type Set struct {
	Coarse *GridMap
	Fine   *GridMap
}

// Build generates both maps. The returned Set is always usable; err joins
// the problems found in either map.
func Build(coarse CoarseSpec, fine FineSpec) (*Set, error) {
	c, cerr := GenerateCoarse(coarse)
	f, ferr := GenerateFine(fine)
	return &Set{Coarse: c, Fine: f}, errors.Join(cerr, ferr)
}

// Default builds the default coarse and fine maps.
func Default() *Set {
	s, err := Build(DefaultCoarseSpec(), DefaultFineSpec())
	if err != nil {
		panic("keymap: default maps invalid: " + err.Error())
	}
	return s
}
