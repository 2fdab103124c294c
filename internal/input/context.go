package input

import (
	"time"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/mode"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Config configures the input handler.
type Config struct {
	// OverlayToggle is the key whose tap shows and hides the grid.
	// Default: alt (either side).
	OverlayToggle key.Code

	// MinTap and MaxTap bound the press duration of a toggle tap.
	// Both bounds are exclusive. Default: 10ms and 700ms.
	MinTap time.Duration
	MaxTap time.Duration

	// DoubleClickInterval is how long a grid click can be repeated.
	// Default: 350ms
	DoubleClickInterval time.Duration

	// FreeModeEnabled turns the free-mode toggle on.
	FreeModeEnabled bool

	// FreeModeToggle is the key that flips free mode. Default: backquote.
	FreeModeToggle key.Code

	// FreeBindings maps free-mode actions to keys.
	FreeBindings mode.FreeBindings

	// MoveStep is the pointer nudge in pixels. Default: 20
	MoveStep int

	// ScrollStep is the wheel amount per press. Default: 100
	ScrollStep int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		OverlayToggle:       key.Code{Key: key.KeyAlt},
		MinTap:              DefaultMinTap,
		MaxTap:              DefaultMaxTap,
		DoubleClickInterval: mouse.DefaultDoubleClickInterval,
		FreeModeEnabled:     true,
		FreeModeToggle:      key.MustParse("`"),
		FreeBindings:        mode.DefaultFreeBindings(),
		MoveStep:            mode.DefaultMoveStep,
		ScrollStep:          mode.DefaultScrollStep,
	}
}

// Context is all mutable input state. It is owned by one Handler and
// touched only from the dispatch goroutine.
type Context struct {
	// Modes holds the current Mode.
	Modes *mode.Manager

	// Overlay drives the coarse and fine grids.
	Overlay *mode.Overlay

	// Free maps free-mode keys; nil when free mode is disabled.
	Free *mode.FreeController

	// Held marks keys whose further key-downs are auto-repeat.
	Held *mode.Suppressor

	// Modifiers tracks physically held modifier keys.
	Modifiers *key.HeldSet

	// DoubleClick is the pending-click latch.
	DoubleClick *mouse.DoubleClick

	// Toggle times the overlay toggle key.
	Toggle *TapArbiter

	// FreeToggle flips free mode; nil when free mode is disabled.
	FreeToggle *Latch
}

// Mode returns the current mode.
func (c *Context) Mode() mode.Mode {
	return c.Modes.Current()
}

// ShiftHeld reports whether shift is down, combining the tracked modifier
// keys with the modifiers carried on ev.
func (c *Context) ShiftHeld(ev key.Event) bool {
	return c.Modifiers.Modifiers().HasShift() || ev.Modifiers.HasShift()
}
