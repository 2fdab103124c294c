package key

import "strings"

// Combo is the sequence of normalized characters typed to address a grid
// cell. Coarse combos have two characters, fine combos one.
type Combo string

// ComboOf concatenates characters in typing order after normalization.
func ComboOf(chars ...rune) Combo {
	var b strings.Builder
	for _, r := range chars {
		b.WriteRune(NormalizeRune(r))
	}
	return Combo(b.String())
}

// NormalizeCombo upper-cases a combo read from configuration.
func NormalizeCombo(s string) Combo {
	return Combo(strings.ToUpper(s))
}

// Len returns the number of characters in the combo.
func (c Combo) Len() int {
	return len([]rune(string(c)))
}

// Runes returns the characters of the combo.
func (c Combo) Runes() []rune {
	return []rune(string(c))
}

// String returns the combo text; the space combo renders as "Space".
func (c Combo) String() string {
	if c == " " {
		return "Space"
	}
	return string(c)
}
