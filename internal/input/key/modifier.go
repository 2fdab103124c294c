package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasMeta() {
		parts = append(parts, "Meta")
	}
	return strings.Join(parts, "+")
}

// HeldSet tracks which modifier keys are physically held, keyed by the
// sided key so that releasing left shift does not clear a held right shift.
type HeldSet struct {
	held map[Key]struct{}
}

// NewHeldSet creates an empty held-modifier tracker.
func NewHeldSet() *HeldSet {
	return &HeldSet{held: make(map[Key]struct{})}
}

// Observe updates the tracker from any event. Non-modifier events are ignored.
func (h *HeldSet) Observe(e Event) {
	if !e.Key.IsModifier() {
		return
	}
	if e.IsDown() {
		h.held[e.Key] = struct{}{}
	} else {
		delete(h.held, e.Key)
	}
}

// Modifiers returns the combined modifier mask of all held keys.
func (h *HeldSet) Modifiers() Modifier {
	var m Modifier
	for k := range h.held {
		m = m.With(k.Modifier())
	}
	return m
}

// Reset forgets all held keys.
func (h *HeldSet) Reset() {
	clear(h.held)
}
