package mouse

// ScrollDirection represents the direction of a scroll event.
type ScrollDirection uint8

const (
	// ScrollNone indicates no scroll.
	ScrollNone ScrollDirection = iota
	// ScrollUp indicates scrolling up (content moves down).
	ScrollUp
	// ScrollDown indicates scrolling down (content moves up).
	ScrollDown
	// ScrollLeft indicates scrolling left.
	ScrollLeft
	// ScrollRight indicates scrolling right.
	ScrollRight
)

// String returns a string representation of the scroll direction.
func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	case ScrollLeft:
		return "left"
	case ScrollRight:
		return "right"
	default:
		return "none"
	}
}

// IsHorizontal returns true if the scroll is horizontal.
func (d ScrollDirection) IsHorizontal() bool {
	return d == ScrollLeft || d == ScrollRight
}

// IsVertical returns true if the scroll is vertical.
func (d ScrollDirection) IsVertical() bool {
	return d == ScrollUp || d == ScrollDown
}

// Units returns the signed wheel amount for scrolling step units in d.
// Up and right are positive.
func (d ScrollDirection) Units(step int) int {
	switch d {
	case ScrollUp, ScrollRight:
		return step
	case ScrollDown, ScrollLeft:
		return -step
	default:
		return 0
	}
}

// Direction identifies a cursor nudge direction.
type Direction uint8

const (
	// DirNone indicates no movement.
	DirNone Direction = iota
	// DirUp moves toward the top of the screen.
	DirUp
	// DirDown moves toward the bottom of the screen.
	DirDown
	// DirLeft moves toward the left edge.
	DirLeft
	// DirRight moves toward the right edge.
	DirRight
)

// String returns a string representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Delta returns the pixel offset for a nudge of step pixels. Screen y grows
// downward.
func (d Direction) Delta(step int) (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -step
	case DirDown:
		return 0, step
	case DirLeft:
		return -step, 0
	case DirRight:
		return step, 0
	default:
		return 0, 0
	}
}
