package mode

import (
	"fmt"

	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Kind identifies which variant a Mode holds.
type Kind uint8

const (
	// KindHidden means the overlay is not shown.
	KindHidden Kind = iota
	// KindCoarse means the full-screen grid is shown.
	KindCoarse
	// KindFine means the sub-grid is shown inside a coarse cell.
	KindFine
	// KindFree means keys move the pointer directly.
	KindFree
)

// String returns the mode name used in logs.
func (k Kind) String() string {
	switch k {
	case KindHidden:
		return "hidden"
	case KindCoarse:
		return "coarse"
	case KindFine:
		return "fine"
	case KindFree:
		return "free"
	default:
		return "unknown"
	}
}

// Mode is the complete input mode. Only the fields belonging to Kind are
// meaningful: Pending for Coarse, Rect for Fine.
type Mode struct {
	Kind Kind

	// Pending is the first character of a coarse combo; zero when none.
	Pending rune

	// Rect is the selected coarse cell the fine grid subdivides.
	Rect mouse.Rect
}

// Hidden returns the hidden mode.
func Hidden() Mode {
	return Mode{Kind: KindHidden}
}

// Coarse returns the coarse mode with no pending character.
func Coarse() Mode {
	return Mode{Kind: KindCoarse}
}

// CoarsePending returns the coarse mode waiting for the second character.
func CoarsePending(first rune) Mode {
	return Mode{Kind: KindCoarse, Pending: first}
}

// Fine returns the fine mode subdividing rect.
func Fine(rect mouse.Rect) Mode {
	return Mode{Kind: KindFine, Rect: rect}
}

// Free returns the free mode.
func Free() Mode {
	return Mode{Kind: KindFree}
}

// OverlayVisible reports whether the grid is on screen.
func (m Mode) OverlayVisible() bool {
	return m.Kind == KindCoarse || m.Kind == KindFine
}

// IsHidden reports whether the mode is Hidden.
func (m Mode) IsHidden() bool {
	return m.Kind == KindHidden
}

// IsFree reports whether free mode is active.
func (m Mode) IsFree() bool {
	return m.Kind == KindFree
}

// HasPending reports whether a coarse first character is stored.
func (m Mode) HasPending() bool {
	return m.Kind == KindCoarse && m.Pending != 0
}

// String returns a description such as "coarse(Q)" or "fine[...]".
func (m Mode) String() string {
	switch m.Kind {
	case KindCoarse:
		if m.Pending != 0 {
			return fmt.Sprintf("coarse(%c)", m.Pending)
		}
		return "coarse"
	case KindFine:
		return "fine" + m.Rect.String()
	default:
		return m.Kind.String()
	}
}
