package mouse

import (
	"fmt"
	"math"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button.
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// ButtonFor returns ButtonRight when shift is held and ButtonLeft otherwise.
func ButtonFor(shift bool) Button {
	if shift {
		return ButtonRight
	}
	return ButtonLeft
}

// ClickType represents the number of clicks injected at once.
type ClickType uint8

const (
	// ClickSingle is a single click.
	ClickSingle ClickType = 1
	// ClickDouble is the repeat click that completes a double click.
	ClickDouble ClickType = 2
)

// String returns a string representation of the click type.
func (c ClickType) String() string {
	switch c {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	default:
		return "unknown"
	}
}

// Position represents an integer screen coordinate in pixels.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Point is a screen coordinate before rounding.
type Point struct {
	X float64
	Y float64
}

// Round converts the point to whole pixels, rounding half away from zero.
func (p Point) Round() Position {
	return Position{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
}

// String returns "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
}

// Rect is an axis-aligned rectangle from (X1, Y1) to (X2, Y2).
type Rect struct {
	X1, Y1 float64
	X2, Y2 float64
}

// RectOf returns the rectangle at the origin with the given size.
func RectOf(width, height float64) Rect {
	return Rect{X2: width, Y2: height}
}

// Width returns X2 - X1.
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// String returns "[x1,y1 - x2,y2]".
func (r Rect) String() string {
	return fmt.Sprintf("[%.1f,%.1f - %.1f,%.1f]", r.X1, r.Y1, r.X2, r.Y2)
}

// CellRect returns the rectangle of cell (row, col) when bounds is divided
// into cols x rows equal cells. Dimensions below one are treated as one.
func CellRect(row, col, cols, rows int, bounds Rect) Rect {
	cols = max(cols, 1)
	rows = max(rows, 1)
	w := bounds.Width() / float64(cols)
	h := bounds.Height() / float64(rows)
	x := bounds.X1 + float64(col)*w
	y := bounds.Y1 + float64(row)*h
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// CellCenter returns the click point for cell (row, col) within bounds.
func CellCenter(row, col, cols, rows int, bounds Rect) Point {
	return CellRect(row, col, cols, rows, bounds).Center()
}
