package key

import (
	"fmt"
	"time"
	"unicode"
)

// EventType distinguishes key presses from releases.
type EventType uint8

const (
	// Down is a key press, including operating system auto-repeat.
	Down EventType = iota
	// Up is a key release.
	Up
)

// String returns "down" or "up".
func (t EventType) String() string {
	if t == Up {
		return "up"
	}
	return "down"
}

// Event represents a single key press or release.
type Event struct {
	// Key identifies the key.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Type is Down or Up.
	Type EventType

	// Modifiers contains the modifier keys the source reported as held.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewDown creates a key-down event for a special key.
func NewDown(k Key, at time.Time) Event {
	return Event{Key: k, Type: Down, Timestamp: at}
}

// NewUp creates a key-up event for a special key.
func NewUp(k Key, at time.Time) Event {
	return Event{Key: k, Type: Up, Timestamp: at}
}

// NewRuneDown creates a key-down event for a character.
func NewRuneDown(r rune, at time.Time) Event {
	return Event{Key: KeyRune, Rune: r, Type: Down, Timestamp: at}
}

// NewRuneUp creates a key-up event for a character.
func NewRuneUp(r rune, at time.Time) Event {
	return Event{Key: KeyRune, Rune: r, Type: Up, Timestamp: at}
}

// IsDown reports whether this is a press.
func (e Event) IsDown() bool {
	return e.Type == Down
}

// IsUp reports whether this is a release.
func (e Event) IsUp() bool {
	return e.Type == Up
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsEscape returns true if this is the Escape key.
func (e Event) IsEscape() bool {
	return e.Key == KeyEscape
}

// IsModifier returns true if the key itself is a modifier key.
func (e Event) IsModifier() bool {
	return e.Key.IsModifier()
}

// Char returns the normalized grid character for this event.
// Letters are upper-cased and the space key yields ' '. Events that do not
// produce a printable character return false.
func (e Event) Char() (rune, bool) {
	switch {
	case e.Key == KeySpace:
		return ' ', true
	case e.IsRune() && unicode.IsPrint(e.Rune):
		return NormalizeRune(e.Rune), true
	default:
		return 0, false
	}
}

// Code returns the identity of the physical key, ignoring case, type and
// timestamp. Two events for the same key always share a Code.
func (e Event) Code() Code {
	if e.Key == KeyRune {
		return Code{Key: KeyRune, Rune: NormalizeRune(e.Rune)}
	}
	if e.Key == KeySpace {
		return Code{Key: KeySpace}
	}
	return Code{Key: e.Key}
}

// Matches reports whether the event is for the key identified by c.
func (e Event) Matches(c Code) bool {
	return c != (Code{}) && e.Code() == c
}

// String returns a compact representation such as "Q down" or "Escape up".
func (e Event) String() string {
	return e.Code().String() + " " + e.Type.String()
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Type: %s, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Type, e.Modifiers.String())
}

// NormalizeRune folds a character to its grid form.
func NormalizeRune(r rune) rune {
	return unicode.ToUpper(r)
}

// Code identifies a physical key independent of press state.
type Code struct {
	Key  Key
	Rune rune
}

// String returns the key name, or the character for rune keys.
func (c Code) String() string {
	if c.Key == KeyRune {
		return string(c.Rune)
	}
	return c.Key.String()
}

// IsZero reports whether the code identifies no key.
func (c Code) IsZero() bool {
	return c == Code{}
}

// Covers reports whether c matches o, treating an unsided modifier as
// matching its left and right keys. AltGr is only matched by itself.
func (c Code) Covers(o Code) bool {
	if c == o {
		return true
	}
	switch c.Key {
	case KeyShift, KeyCtrl, KeyAlt, KeyMeta:
		return o.Key.IsModifier() && o.Key != KeyAltGr && o.Key.Modifier() == c.Key.Modifier()
	default:
		return false
	}
}
