package key

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Code
	}{
		{"a", Code{Key: KeyRune, Rune: 'A'}},
		{"`", Code{Key: KeyRune, Rune: '`'}},
		{",", Code{Key: KeyRune, Rune: ','}},
		{" ", Code{Key: KeySpace}},
		{"space", Code{Key: KeySpace}},
		{"<Space>", Code{Key: KeySpace}},
		{"<Esc>", Code{Key: KeyEscape}},
		{"alt", Code{Key: KeyAlt}},
		{"  Alt  ", Code{Key: KeyAlt}},
		{"right shift", Code{Key: KeyShiftRight}},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := Parse(tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptySpec))

	_, err = Parse("hyperkey")
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "hyperkey", pe.Spec)
	assert.ErrorIs(t, err, ErrInvalidSpec)
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParse("") })
	assert.NotPanics(t, func() { MustParse("i") })
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw      string
		wantKey  Key
		wantRune rune
	}{
		{" ", KeySpace, 0},
		{"q", KeyRune, 'q'},
		{"\x1b", KeyEscape, 0},
		{"\r", KeyEnter, 0},
		{"esc", KeyEscape, 0},
		{"shift_l", KeyShiftLeft, 0},
		{"\x02", KeyNone, 0},
		{"mystery", KeyNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			k, r := Normalize(tt.raw)
			assert.Equal(t, tt.wantKey, k)
			assert.Equal(t, tt.wantRune, r)
		})
	}
}

func TestEventFromName(t *testing.T) {
	ev := EventFromName("left alt", Up, ModAlt)
	assert.Equal(t, KeyAltLeft, ev.Key)
	assert.Equal(t, Up, ev.Type)
	assert.Equal(t, ModAlt, ev.Modifiers)
}
