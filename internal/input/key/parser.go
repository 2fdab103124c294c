package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// ParseError describes a key name that could not be normalized.
type ParseError struct {
	Spec string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("key %q: %v", e.Spec, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse normalizes a key name from configuration into a Code.
//
// Supported formats:
//   - Single character: "a", "A", "`", ";"
//   - Named keys: "space", "esc", "alt", "left shift", "shift_r"
//   - Vim-style brackets: "<Space>", "<Esc>"
//
// A literal " " is the space key.
func Parse(spec string) (Code, error) {
	if spec == " " {
		return Code{Key: KeySpace}, nil
	}
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return Code{}, &ParseError{Spec: spec, Err: ErrEmptySpec}
	}
	if len(trimmed) > 2 && strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		trimmed = trimmed[1 : len(trimmed)-1]
	}

	k, r := Normalize(trimmed)
	if k == KeyNone {
		return Code{}, &ParseError{Spec: spec, Err: ErrInvalidSpec}
	}
	if k == KeyRune {
		return Code{Key: KeyRune, Rune: NormalizeRune(r)}, nil
	}
	return Code{Key: k}, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// package-level defaults.
func MustParse(spec string) Code {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Normalize converts a raw key name as reported by a platform source into
// a Key and, for character keys, its rune. A single printable character is
// a rune key; anything longer is looked up by name. Unknown names return
// KeyNone.
func Normalize(raw string) (Key, rune) {
	if raw == " " {
		return KeySpace, 0
	}
	if utf8.RuneCountInString(raw) == 1 {
		r, _ := utf8.DecodeRuneInString(raw)
		switch r {
		case '\x1b':
			return KeyEscape, 0
		case '\r', '\n':
			return KeyEnter, 0
		case '\t':
			return KeyTab, 0
		case '\b', 0x7f:
			return KeyBackspace, 0
		}
		if unicode.IsPrint(r) {
			return KeyRune, r
		}
		return KeyNone, 0
	}
	return KeyFromName(raw), 0
}

// EventFromName builds an event from a raw key name. Unknown names yield an
// event with KeyNone, which downstream handlers treat as a non-character key.
func EventFromName(raw string, typ EventType, mods Modifier) Event {
	k, r := Normalize(raw)
	return Event{Key: k, Rune: r, Type: typ, Modifiers: mods}
}
