package hook

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	gohook "github.com/robotn/gohook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/platform"
)

func TestTranslate(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		ev   gohook.Event
		want key.Event
		ok   bool
	}{
		{"letter press", gohook.Event{Kind: gohook.KeyHold, Keycode: 0x0010, When: at}, key.NewRuneDown('Q', at), true},
		{"letter release", gohook.Event{Kind: gohook.KeyUp, Keycode: 0x0010, When: at}, key.NewRuneUp('Q', at), true},
		{"semicolon", gohook.Event{Kind: gohook.KeyHold, Keycode: 0x0027, When: at}, key.NewRuneDown(';', at), true},
		{"backquote", gohook.Event{Kind: gohook.KeyHold, Keycode: 0x0029, When: at}, key.NewRuneDown('`', at), true},
		{"space", gohook.Event{Kind: gohook.KeyHold, Keycode: vcSpace, When: at}, key.NewDown(key.KeySpace, at), true},
		{"left alt", gohook.Event{Kind: gohook.KeyHold, Keycode: vcAltLeft, When: at}, key.NewDown(key.KeyAltLeft, at), true},
		{"right alt up", gohook.Event{Kind: gohook.KeyUp, Keycode: vcAltRight, When: at}, key.NewUp(key.KeyAltRight, at), true},
		{"escape", gohook.Event{Kind: gohook.KeyHold, Keycode: vcEscape, When: at}, key.NewDown(key.KeyEscape, at), true},
		{"f5", gohook.Event{Kind: gohook.KeyHold, Keycode: vcF1 + 4, When: at}, key.NewDown(key.KeyF5, at), true},
		{"typed char skipped", gohook.Event{Kind: gohook.KeyDown, Keychar: 'q', When: at}, key.Event{}, false},
		{"mouse skipped", gohook.Event{Kind: gohook.MouseDown, When: at}, key.Event{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := translate(tt.ev)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTranslateStampsMissingTime(t *testing.T) {
	ev, ok := translate(gohook.Event{Kind: gohook.KeyHold, Keycode: 0x0010})
	require.True(t, ok)
	assert.False(t, ev.Timestamp.IsZero())
}

func TestLookup(t *testing.T) {
	k, r, ok := lookup(0x0033)
	require.True(t, ok)
	assert.Equal(t, key.KeyRune, k)
	assert.Equal(t, ',', r)

	k, _, ok = lookup(vcF12)
	require.True(t, ok)
	assert.Equal(t, key.KeyF12, k)

	_, _, ok = lookup(0x7777)
	assert.False(t, ok)
}

func newFake() (*Source, chan gohook.Event, *atomic.Int32) {
	raw := make(chan gohook.Event, 8)
	var ended atomic.Int32
	s := New(withHook(func() chan gohook.Event { return raw }, func() { ended.Add(1) }))
	return s, raw, &ended
}

func TestSourceDelivers(t *testing.T) {
	s, raw, ended := newFake()

	events, err := s.Start(context.Background())
	require.NoError(t, err)

	_, err = s.Start(context.Background())
	assert.ErrorIs(t, err, platform.ErrStarted)

	raw <- gohook.Event{Kind: gohook.KeyHold, Keycode: vcShiftLeft}
	raw <- gohook.Event{Kind: gohook.KeyDown, Keychar: 'a'}
	raw <- gohook.Event{Kind: gohook.KeyHold, Keycode: 0x001E}

	ev := <-events
	assert.Equal(t, key.KeyShiftLeft, ev.Key)
	ev = <-events
	assert.Equal(t, 'A', ev.Rune)
	assert.True(t, s.ShiftHeld())

	raw <- gohook.Event{Kind: gohook.KeyUp, Keycode: vcShiftLeft}
	<-events
	assert.False(t, s.ShiftHeld())

	s.Stop()
	s.Stop()
	_, open := <-events
	assert.False(t, open)
	assert.Equal(t, int32(1), ended.Load())
}

func TestSourceStopsOnContext(t *testing.T) {
	s, _, ended := newFake()
	ctx, cancel := context.WithCancel(context.Background())

	events, err := s.Start(ctx)
	require.NoError(t, err)
	cancel()

	for range events {
	}
	assert.Equal(t, int32(1), ended.Load())
}

func TestStopBeforeStart(t *testing.T) {
	s, _, ended := newFake()
	s.Stop()
	assert.Equal(t, int32(0), ended.Load())
}
