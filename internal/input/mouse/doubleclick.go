package mouse

import "time"

// DefaultDoubleClickInterval is the window for repeating a click.
const DefaultDoubleClickInterval = 350 * time.Millisecond

// Pending is the click a DoubleClick latch will repeat.
type Pending struct {
	// Trigger is the normalized character that resolved the click.
	Trigger rune

	// ArmedAt is the timestamp of the triggering key press.
	ArmedAt time.Time

	// Point is where the click was injected.
	Point Point

	// Button is the button that was clicked.
	Button Button
}

// DoubleClick detects a repeat of the key that produced the last grid
// click. It holds at most one pending click and fires at most once per arm.
//
// DoubleClick is not safe for concurrent use; it is owned by the
// dispatcher goroutine.
type DoubleClick struct {
	interval time.Duration
	pending  Pending
	armed    bool
}

// NewDoubleClick creates a disarmed latch. A non-positive interval uses
// DefaultDoubleClickInterval.
func NewDoubleClick(interval time.Duration) *DoubleClick {
	d := &DoubleClick{}
	d.SetInterval(interval)
	return d
}

// SetInterval changes the repeat window. It does not affect arming state.
func (d *DoubleClick) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	d.interval = interval
}

// Interval returns the repeat window.
func (d *DoubleClick) Interval() time.Duration {
	return d.interval
}

// Arm records a click that a repeat of trigger may double. Arming replaces
// any pending click.
func (d *DoubleClick) Arm(trigger rune, at time.Time, p Point, b Button) {
	d.pending = Pending{Trigger: trigger, ArmedAt: at, Point: p, Button: b}
	d.armed = true
}

// Disarm clears the pending click.
func (d *DoubleClick) Disarm() {
	d.pending = Pending{}
	d.armed = false
}

// Armed reports whether a click is pending.
func (d *DoubleClick) Armed() bool {
	return d.armed
}

// Pending returns the pending click, if any.
func (d *DoubleClick) Pending() (Pending, bool) {
	return d.pending, d.armed
}

// Expired reports whether the pending click can no longer be repeated at
// time now. A disarmed latch is always expired.
func (d *DoubleClick) Expired(now time.Time) bool {
	if !d.armed {
		return true
	}
	elapsed := now.Sub(d.pending.ArmedAt)
	return elapsed < 0 || elapsed >= d.interval
}

// Observe offers a key press to the latch. ch and isChar are the press's
// normalized character. When the press repeats the trigger within the
// interval the pending click is returned with fire set. Any press
// disarms the latch.
func (d *DoubleClick) Observe(ch rune, isChar bool, at time.Time) (p Pending, fire bool) {
	if !d.armed {
		return Pending{}, false
	}
	p = d.pending
	fire = isChar && ch == p.Trigger && !d.Expired(at)
	d.Disarm()
	return p, fire
}
