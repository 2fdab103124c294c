package mode

import "github.com/dshills/gridmouse/internal/input/key"

// Suppressor tracks keys whose further key-down events are auto-repeat.
type Suppressor struct {
	held map[key.Code]struct{}
}

// NewSuppressor creates an empty set.
func NewSuppressor() *Suppressor {
	return &Suppressor{held: make(map[key.Code]struct{})}
}

// Mark records code as held.
func (s *Suppressor) Mark(code key.Code) {
	s.held[code] = struct{}{}
}

// Release forgets code.
func (s *Suppressor) Release(code key.Code) {
	delete(s.held, code)
}

// Held reports whether code is marked.
func (s *Suppressor) Held(code key.Code) bool {
	_, ok := s.held[code]
	return ok
}

// Clear forgets every key.
func (s *Suppressor) Clear() {
	clear(s.held)
}

// Len returns the number of marked keys.
func (s *Suppressor) Len() int {
	return len(s.held)
}

// Observe updates the set from an event and reports whether a key-down is
// a repeat of a key already held. Key-up events always return false.
func (s *Suppressor) Observe(ev key.Event) (repeat bool) {
	code := ev.Code()
	if ev.IsUp() {
		s.Release(code)
		return false
	}
	if s.Held(code) {
		return true
	}
	s.Mark(code)
	return false
}

// Rearm clears the set and marks only code, which is still physically
// down.
func (s *Suppressor) Rearm(code key.Code) {
	s.Clear()
	s.Mark(code)
}
