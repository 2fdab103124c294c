package key

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModShift

	assert.True(t, m.HasCtrl())
	assert.True(t, m.HasShift())
	assert.False(t, m.HasAlt())
	assert.False(t, m.HasMeta())
	assert.False(t, ModNone.Has(ModShift))
}

func TestModifierWithWithout(t *testing.T) {
	m := ModNone.With(ModAlt).With(ModMeta)
	assert.True(t, m.HasAlt())
	assert.True(t, m.HasMeta())

	m = m.Without(ModAlt)
	assert.False(t, m.HasAlt())
	assert.True(t, m.HasMeta())
	assert.True(t, m.Without(ModMeta).IsEmpty())
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModShift, "Shift"},
		{ModCtrl | ModAlt, "Ctrl+Alt"},
		{ModCtrl | ModAlt | ModShift | ModMeta, "Ctrl+Alt+Shift+Meta"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mod.String())
		})
	}
}

func TestHeldSetTracksSidedKeys(t *testing.T) {
	now := time.Now()
	h := NewHeldSet()

	h.Observe(NewDown(KeyShiftLeft, now))
	h.Observe(NewDown(KeyShiftRight, now))
	assert.True(t, h.Modifiers().HasShift())

	h.Observe(NewUp(KeyShiftLeft, now))
	assert.True(t, h.Modifiers().HasShift(), "right shift still held")

	h.Observe(NewUp(KeyShiftRight, now))
	assert.False(t, h.Modifiers().HasShift())
}

func TestHeldSetIgnoresCharacters(t *testing.T) {
	h := NewHeldSet()
	h.Observe(NewRuneDown('a', time.Now()))
	assert.True(t, h.Modifiers().IsEmpty())

	h.Observe(NewDown(KeyCtrl, time.Now()))
	h.Reset()
	assert.True(t, h.Modifiers().IsEmpty())
}
