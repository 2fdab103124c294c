package input

import (
	"fmt"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Effect is an instruction produced by Handle. The concrete types are
// ShowOverlay, HideOverlay, DrawCoarse, DrawFine, Click, Move, Scroll,
// HScroll, FreeMode and Miss.
type Effect interface {
	effect()
	String() string
}

// ShowOverlay makes the overlay surface visible.
type ShowOverlay struct{}

// HideOverlay hides the overlay surface. It always precedes a grid Click.
type HideOverlay struct{}

// DrawCoarse draws the full-screen grid.
type DrawCoarse struct{}

// DrawFine draws the sub-grid inside Rect.
type DrawFine struct {
	Rect mouse.Rect
}

// Click injects a mouse click. The executor waits for the settle delay
// before injecting.
type Click struct {
	Point  mouse.Point
	Button mouse.Button
	Count  mouse.ClickType
}

// Move nudges the pointer by a relative offset.
type Move struct {
	DX, DY int
}

// Scroll turns the vertical wheel. Positive is up.
type Scroll struct {
	Units int
}

// HScroll turns the horizontal wheel. Positive is right.
type HScroll struct {
	Units int
}

// FreeMode reports that free mode was entered or left.
type FreeMode struct {
	Active bool
}

// Miss reports a combo that did not resolve.
type Miss struct {
	Combo key.Combo
	Fine  bool
}

func (ShowOverlay) effect() {}
func (HideOverlay) effect() {}
func (DrawCoarse) effect()  {}
func (DrawFine) effect()    {}
func (Click) effect()       {}
func (Move) effect()        {}
func (Scroll) effect()      {}
func (HScroll) effect()     {}
func (FreeMode) effect()    {}
func (Miss) effect()        {}

func (ShowOverlay) String() string { return "show" }
func (HideOverlay) String() string { return "hide" }
func (DrawCoarse) String() string  { return "draw-coarse" }

func (e DrawFine) String() string {
	return "draw-fine" + e.Rect.String()
}

func (e Click) String() string {
	return fmt.Sprintf("click(%s %s %s)", e.Button, e.Count, e.Point)
}

func (e Move) String() string {
	return fmt.Sprintf("move(%d,%d)", e.DX, e.DY)
}

func (e Scroll) String() string {
	return fmt.Sprintf("scroll(%d)", e.Units)
}

func (e HScroll) String() string {
	return fmt.Sprintf("hscroll(%d)", e.Units)
}

func (e FreeMode) String() string {
	if e.Active {
		return "free-mode(on)"
	}
	return "free-mode(off)"
}

func (e Miss) String() string {
	return fmt.Sprintf("miss(%q)", string(e.Combo))
}
