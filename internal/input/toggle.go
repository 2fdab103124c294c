package input

import (
	"time"

	"github.com/dshills/gridmouse/internal/input/key"
)

// Default tap window for the overlay toggle key.
const (
	DefaultMinTap = 10 * time.Millisecond
	DefaultMaxTap = 700 * time.Millisecond
)

// TapArbiter distinguishes a quick tap of a key from a hold or a chord.
// A tap fires when the key is released strictly between MinTap and MaxTap
// after it was pressed, with no other key pressed in between.
type TapArbiter struct {
	code   key.Code
	minTap time.Duration
	maxTap time.Duration

	tracked   bool
	pressedAt time.Time
}

// NewTapArbiter creates an arbiter for code.
func NewTapArbiter(code key.Code, minTap, maxTap time.Duration) *TapArbiter {
	return &TapArbiter{code: code, minTap: minTap, maxTap: maxTap}
}

// Owns reports whether ev is for the arbiter's key.
func (t *TapArbiter) Owns(ev key.Event) bool {
	return !t.code.IsZero() && t.code.Covers(ev.Code())
}

// Tracking reports whether a press is being timed.
func (t *TapArbiter) Tracking() bool {
	return t.tracked
}

// Observe processes an event for the arbiter's key and reports whether it
// completed a tap. Repeated key-downs while tracking keep the original
// press time.
func (t *TapArbiter) Observe(ev key.Event) (fire bool) {
	if ev.IsDown() {
		if !t.tracked {
			t.tracked = true
			t.pressedAt = ev.Timestamp
		}
		return false
	}
	if !t.tracked {
		return false
	}
	elapsed := ev.Timestamp.Sub(t.pressedAt)
	t.Cancel()
	return elapsed > t.minTap && elapsed < t.maxTap
}

// Cancel forgets a pending press. Called when another key goes down while
// the toggle key is held.
func (t *TapArbiter) Cancel() {
	t.tracked = false
	t.pressedAt = time.Time{}
}

// Latch flips on the first key-down of its key and ignores auto-repeat
// until the key is released.
type Latch struct {
	code key.Code
	held bool
}

// NewLatch creates a latch for code.
func NewLatch(code key.Code) *Latch {
	return &Latch{code: code}
}

// Owns reports whether ev is for the latch's key.
func (l *Latch) Owns(ev key.Event) bool {
	return !l.code.IsZero() && l.code.Covers(ev.Code())
}

// Observe processes an event for the latch's key and reports whether it
// should flip.
func (l *Latch) Observe(ev key.Event) (flip bool) {
	if ev.IsUp() {
		l.held = false
		return false
	}
	if l.held {
		return false
	}
	l.held = true
	return true
}
