package key

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeySpace, "Space"},
		{KeyShiftLeft, "ShiftLeft"},
		{KeyAltGr, "AltGr"},
		{KeyRune, "Rune"},
		{Key(999), "Key(999)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.key.String())
		})
	}
}

func TestKeyIsModifier(t *testing.T) {
	for _, k := range []Key{KeyShift, KeyShiftLeft, KeyShiftRight, KeyCtrl, KeyCtrlLeft,
		KeyCtrlRight, KeyAlt, KeyAltLeft, KeyAltRight, KeyAltGr, KeyMeta, KeyMetaLeft, KeyMetaRight} {
		assert.True(t, k.IsModifier(), k.String())
	}
	for _, k := range []Key{KeyNone, KeySpace, KeyEscape, KeyCapsLock, KeyRune, KeyF1} {
		assert.False(t, k.IsModifier(), k.String())
	}
}

func TestKeyModifier(t *testing.T) {
	assert.Equal(t, ModShift, KeyShiftRight.Modifier())
	assert.Equal(t, ModCtrl, KeyCtrlLeft.Modifier())
	assert.Equal(t, ModAlt, KeyAltGr.Modifier())
	assert.Equal(t, ModMeta, KeyMeta.Modifier())
	assert.Equal(t, ModNone, KeySpace.Modifier())
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"esc", KeyEscape},
		{"Escape", KeyEscape},
		{"space", KeySpace},
		{"alt", KeyAlt},
		{"left shift", KeyShiftLeft},
		{"Left_Shift", KeyShiftLeft},
		{"shift_r", KeyShiftRight},
		{"right ctrl", KeyCtrlRight},
		{"alt gr", KeyAltGr},
		{"cmd", KeyMeta},
		{"F10", KeyF10},
		{"nonsense", KeyNone},
		{"", KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KeyFromName(tt.name))
		})
	}
}

func TestKeyIsSpecial(t *testing.T) {
	assert.False(t, KeyNone.IsSpecial())
	assert.False(t, KeyRune.IsSpecial())
	assert.True(t, KeyEscape.IsSpecial())
	assert.True(t, KeyF1.IsFunctionKey())
	assert.True(t, KeyLeft.IsArrowKey())
	assert.False(t, KeySpace.IsArrowKey())
}
