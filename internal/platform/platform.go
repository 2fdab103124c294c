package platform

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Default screen size used when the screen cannot be queried.
const (
	DefaultScreenWidth  = 1920
	DefaultScreenHeight = 1080
)

var (
	// ErrUnavailable indicates a platform facility could not be opened.
	ErrUnavailable = errors.New("platform facility unavailable")

	// ErrStarted is returned by a KeySource started twice.
	ErrStarted = errors.New("key source already started")
)

// KeySource delivers key events serially.
type KeySource interface {
	// Start begins delivery. The channel closes after Stop or when ctx
	// is done.
	Start(ctx context.Context) (<-chan key.Event, error)

	// Stop unhooks the source. It is safe to call more than once.
	Stop()

	// ShiftHeld reports whether a shift key is physically down.
	ShiftHeld() bool
}

// Injector performs pointer actions.
type Injector interface {
	// Click moves to (x, y) and clicks count times.
	Click(x, y int, button mouse.Button, count mouse.ClickType) error

	// MoveRelative nudges the pointer.
	MoveRelative(dx, dy int) error

	// Scroll turns the vertical wheel; positive is up.
	Scroll(units int) error

	// HScroll turns the horizontal wheel; positive is right.
	HScroll(units int) error
}

// Screen reports the size of the target screen in pixels.
type Screen interface {
	Size() (w, h int, err error)
}

// FixedScreen is a Screen of a known size.
type FixedScreen struct {
	Width, Height int
}

// Size returns the fixed dimensions.
func (s FixedScreen) Size() (int, int, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return 0, 0, fmt.Errorf("screen %dx%d: %w", s.Width, s.Height, ErrUnavailable)
	}
	return s.Width, s.Height, nil
}

// Bounds returns the screen rectangle, falling back to the default size
// with a warning when the screen cannot be queried.
func Bounds(s Screen, log *logrus.Entry) mouse.Rect {
	w, h, err := s.Size()
	if err != nil || w <= 0 || h <= 0 {
		if log != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"width":  DefaultScreenWidth,
				"height": DefaultScreenHeight,
			}).Warn("screen size unavailable, using default")
		}
		w, h = DefaultScreenWidth, DefaultScreenHeight
	}
	return mouse.RectOf(float64(w), float64(h))
}
