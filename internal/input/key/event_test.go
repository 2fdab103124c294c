package key

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventChar(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name   string
		ev     Event
		want   rune
		wantOK bool
	}{
		{"lower letter", NewRuneDown('q', now), 'Q', true},
		{"upper letter", NewRuneDown('Q', now), 'Q', true},
		{"punctuation", NewRuneDown(';', now), ';', true},
		{"space key", NewDown(KeySpace, now), ' ', true},
		{"escape", NewDown(KeyEscape, now), 0, false},
		{"modifier", NewDown(KeyShiftLeft, now), 0, false},
		{"unknown", Event{Type: Down}, 0, false},
		{"control rune", NewRuneDown('\x01', now), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ev.Char()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventCodeIgnoresCaseAndType(t *testing.T) {
	now := time.Now()
	down := NewRuneDown('q', now)
	up := NewRuneUp('Q', now.Add(time.Second))

	assert.Equal(t, down.Code(), up.Code())
	assert.True(t, up.Matches(down.Code()))
	assert.False(t, up.Matches(Code{}))
	assert.NotEqual(t, down.Code(), NewRuneDown('w', now).Code())
	assert.NotEqual(t, NewDown(KeyShiftLeft, now).Code(), NewDown(KeyShiftRight, now).Code())
}

func TestEventPredicates(t *testing.T) {
	now := time.Now()
	assert.True(t, NewDown(KeyEscape, now).IsEscape())
	assert.True(t, NewDown(KeyEscape, now).IsDown())
	assert.True(t, NewUp(KeyAlt, now).IsUp())
	assert.True(t, NewUp(KeyAlt, now).IsModifier())
	assert.True(t, NewRuneUp('a', now).IsRune())
	assert.False(t, NewDown(KeySpace, now).IsRune())
}

func TestEventString(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "Q down", NewRuneDown('q', now).String())
	assert.Equal(t, "Escape up", NewUp(KeyEscape, now).String())
	assert.Contains(t, Event{Key: KeyAlt, Modifiers: ModAlt}.GoString(), "Alt")
}

func TestComboOf(t *testing.T) {
	assert.Equal(t, Combo("QW"), ComboOf('q', 'w'))
	assert.Equal(t, Combo(" "), ComboOf(' '))
	assert.Equal(t, 2, ComboOf('h', ';').Len())
	assert.Equal(t, "Space", Combo(" ").String())
	assert.Equal(t, Combo("ZX"), NormalizeCombo("zx"))
}

func TestCodeCovers(t *testing.T) {
	alt := Code{Key: KeyAlt}
	assert.True(t, alt.Covers(Code{Key: KeyAlt}))
	assert.True(t, alt.Covers(Code{Key: KeyAltLeft}))
	assert.True(t, alt.Covers(Code{Key: KeyAltRight}))
	assert.False(t, alt.Covers(Code{Key: KeyAltGr}))
	assert.False(t, alt.Covers(Code{Key: KeyCtrlLeft}))

	left := Code{Key: KeyAltLeft}
	assert.True(t, left.Covers(Code{Key: KeyAltLeft}))
	assert.False(t, left.Covers(Code{Key: KeyAltRight}))

	tick := MustParse("`")
	assert.True(t, tick.Covers(NewRuneDown('`', time.Now()).Code()))
	assert.False(t, tick.Covers(Code{Key: KeyAlt}))
}
