package mode

import (
	"errors"
	"fmt"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Default free-mode steps.
const (
	DefaultMoveStep   = 20
	DefaultScrollStep = 100
)

// ErrDuplicateBinding indicates two free-mode actions share a key.
var ErrDuplicateBinding = errors.New("duplicate free-mode binding")

// FreeBindings names the key for each free-mode action.
type FreeBindings struct {
	Up          key.Code
	Down        key.Code
	Left        key.Code
	Right       key.Code
	ScrollUp    key.Code
	ScrollDown  key.Code
	ScrollLeft  key.Code
	ScrollRight key.Code
}

// DefaultFreeBindings returns i/k/j/l for movement and m/,/b/n for
// scrolling.
func DefaultFreeBindings() FreeBindings {
	return FreeBindings{
		Up:          key.MustParse("i"),
		Down:        key.MustParse("k"),
		Left:        key.MustParse("j"),
		Right:       key.MustParse("l"),
		ScrollUp:    key.MustParse("m"),
		ScrollDown:  key.MustParse(","),
		ScrollLeft:  key.MustParse("b"),
		ScrollRight: key.MustParse("n"),
	}
}

// FreeActionKind distinguishes pointer moves from scrolls.
type FreeActionKind uint8

const (
	// FreeMove nudges the pointer.
	FreeMove FreeActionKind = iota + 1
	// FreeScroll scrolls the wheel.
	FreeScroll
)

// FreeAction is a pointer action produced by a free-mode key.
type FreeAction struct {
	Kind FreeActionKind

	// DX and DY are the pixel offsets for FreeMove.
	DX, DY int

	// Scroll and Units describe FreeScroll. Units is signed; see
	// mouse.ScrollDirection.Units.
	Scroll mouse.ScrollDirection
	Units  int
}

type freeBinding struct {
	dir    mouse.Direction
	scroll mouse.ScrollDirection
}

// FreeController maps free-mode keys to pointer actions.
type FreeController struct {
	bindings   map[key.Code]freeBinding
	moveStep   int
	scrollStep int
}

// NewFreeController creates a controller. Unset bindings are skipped and
// non-positive steps use the defaults. A key bound twice is reported and
// keeps its first action.
func NewFreeController(b FreeBindings, moveStep, scrollStep int) (*FreeController, error) {
	if moveStep <= 0 {
		moveStep = DefaultMoveStep
	}
	if scrollStep <= 0 {
		scrollStep = DefaultScrollStep
	}
	f := &FreeController{
		bindings:   make(map[key.Code]freeBinding, 8),
		moveStep:   moveStep,
		scrollStep: scrollStep,
	}

	entries := []struct {
		name string
		code key.Code
		fb   freeBinding
	}{
		{"up", b.Up, freeBinding{dir: mouse.DirUp}},
		{"down", b.Down, freeBinding{dir: mouse.DirDown}},
		{"left", b.Left, freeBinding{dir: mouse.DirLeft}},
		{"right", b.Right, freeBinding{dir: mouse.DirRight}},
		{"scroll_up", b.ScrollUp, freeBinding{scroll: mouse.ScrollUp}},
		{"scroll_down", b.ScrollDown, freeBinding{scroll: mouse.ScrollDown}},
		{"scroll_left", b.ScrollLeft, freeBinding{scroll: mouse.ScrollLeft}},
		{"scroll_right", b.ScrollRight, freeBinding{scroll: mouse.ScrollRight}},
	}

	var errs []error
	for _, e := range entries {
		if e.code.IsZero() {
			continue
		}
		if _, dup := f.bindings[e.code]; dup {
			errs = append(errs, fmt.Errorf("%s on %s: %w", e.name, e.code, ErrDuplicateBinding))
			continue
		}
		f.bindings[e.code] = e.fb
	}
	return f, errors.Join(errs...)
}

// MoveStep returns the nudge distance in pixels.
func (f *FreeController) MoveStep() int {
	return f.moveStep
}

// ScrollStep returns the scroll amount per press.
func (f *FreeController) ScrollStep() int {
	return f.scrollStep
}

// Handle maps a key-down to an action. Auto-repeat presses are handled
// like fresh presses so a held key keeps moving. Unbound keys and key-up
// events return false.
func (f *FreeController) Handle(ev key.Event) (FreeAction, bool) {
	if !ev.IsDown() {
		return FreeAction{}, false
	}
	b, ok := f.bindings[ev.Code()]
	if !ok {
		return FreeAction{}, false
	}
	if b.dir != mouse.DirNone {
		dx, dy := b.dir.Delta(f.moveStep)
		return FreeAction{Kind: FreeMove, DX: dx, DY: dy}, true
	}
	return FreeAction{Kind: FreeScroll, Scroll: b.scroll, Units: b.scroll.Units(f.scrollStep)}, true
}
