// Package robot injects pointer actions and reads the screen size with
// robotgo.
package robot

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/dshills/gridmouse/internal/input/mouse"
	"github.com/dshills/gridmouse/internal/platform"
)

// driver is the subset of robotgo used here.
type driver interface {
	Move(x, y int)
	MoveRelative(dx, dy int)
	Click(button string, double bool)
	Scroll(x, y int)
	ScreenSize() (int, int)
}

type robotgoDriver struct{}

func (robotgoDriver) Move(x, y int)                    { robotgo.Move(x, y) }
func (robotgoDriver) MoveRelative(dx, dy int)          { robotgo.MoveRelative(dx, dy) }
func (robotgoDriver) Click(button string, double bool) { robotgo.Click(button, double) }
func (robotgoDriver) Scroll(x, y int)                  { robotgo.Scroll(x, y) }
func (robotgoDriver) ScreenSize() (int, int)           { return robotgo.GetScreenSize() }

// Robot implements platform.Injector and platform.Screen.
type Robot struct {
	d driver
}

// New returns a Robot driving the real pointer.
func New() *Robot {
	return &Robot{d: robotgoDriver{}}
}

// buttonName maps a button to robotgo's name for it.
func buttonName(b mouse.Button) (string, error) {
	switch b {
	case mouse.ButtonLeft:
		return "left", nil
	case mouse.ButtonRight:
		return "right", nil
	case mouse.ButtonMiddle:
		return "center", nil
	default:
		return "", fmt.Errorf("click with button %s: %w", b, platform.ErrUnavailable)
	}
}

// Click moves to (x, y) and clicks. A double click is one repeat click
// at the same point: the first click of the pair was already injected
// when the cell was picked.
func (r *Robot) Click(x, y int, button mouse.Button, count mouse.ClickType) error {
	name, err := buttonName(button)
	if err != nil {
		return err
	}
	r.d.Move(x, y)
	r.d.Click(name, false)
	return nil
}

// MoveRelative nudges the pointer.
func (r *Robot) MoveRelative(dx, dy int) error {
	r.d.MoveRelative(dx, dy)
	return nil
}

// Scroll turns the vertical wheel; positive is up.
func (r *Robot) Scroll(units int) error {
	r.d.Scroll(0, units)
	return nil
}

// HScroll turns the horizontal wheel; positive is right.
func (r *Robot) HScroll(units int) error {
	r.d.Scroll(units, 0)
	return nil
}

// Size returns the main display size.
func (r *Robot) Size() (int, int, error) {
	w, h := r.d.ScreenSize()
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("screen size %dx%d: %w", w, h, platform.ErrUnavailable)
	}
	return w, h, nil
}
