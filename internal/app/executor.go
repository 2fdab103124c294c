package app

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/feedback"
	"github.com/dshills/gridmouse/internal/input"
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mouse"
	"github.com/dshills/gridmouse/internal/platform"
	"github.com/dshills/gridmouse/internal/renderer"
)

// DefaultClickSettle is the pause between hiding the overlay and
// injecting a click.
const DefaultClickSettle = 50 * time.Millisecond

// Executor applies handler effects to the surface and the injector.
// It runs on the dispatch goroutine.
type Executor struct {
	surface  renderer.Surface
	injector platform.Injector
	feedback feedback.Player
	log      *logrus.Entry

	maps   *keymap.Set
	bounds mouse.Rect
	settle time.Duration
	sleep  func(time.Duration)
}

// NewExecutor creates an Executor.
func NewExecutor(surface renderer.Surface, injector platform.Injector, fb feedback.Player, log *logrus.Entry) *Executor {
	if fb == nil {
		fb = feedback.Silent{}
	}
	return &Executor{
		surface:  surface,
		injector: injector,
		feedback: fb,
		log:      log,
		settle:   DefaultClickSettle,
		sleep:    time.Sleep,
	}
}

// SetMaps sets the maps the grids are drawn from.
func (x *Executor) SetMaps(maps *keymap.Set) {
	x.maps = maps
}

// SetBounds sets the screen rectangle of the coarse grid.
func (x *Executor) SetBounds(bounds mouse.Rect) {
	x.bounds = bounds
}

// SetSettle sets the pause before each injected click. Negative values
// are treated as zero.
func (x *Executor) SetSettle(d time.Duration) {
	x.settle = max(d, 0)
}

// Execute applies effects in order. Injection failures are logged; the
// remaining effects still run.
func (x *Executor) Execute(effects []input.Effect) {
	for _, e := range effects {
		x.apply(e)
	}
}

func (x *Executor) apply(e input.Effect) {
	switch e := e.(type) {
	case input.ShowOverlay:
		x.surface.Show()
	case input.HideOverlay:
		x.surface.Hide()
	case input.DrawCoarse:
		if x.maps != nil {
			x.surface.DrawGrid(renderer.CoarseGrid(x.maps.Coarse, x.bounds))
		}
	case input.DrawFine:
		if x.maps != nil {
			x.surface.DrawGrid(renderer.FineGrid(x.maps.Fine, e.Rect))
		}
	case input.Click:
		x.click(e)
	case input.Move:
		if err := x.injector.MoveRelative(e.DX, e.DY); err != nil {
			x.log.WithError(err).Warn("move failed")
		}
	case input.Scroll:
		if err := x.injector.Scroll(e.Units); err != nil {
			x.log.WithError(err).Warn("scroll failed")
		}
	case input.HScroll:
		if err := x.injector.HScroll(e.Units); err != nil {
			x.log.WithError(err).Warn("horizontal scroll failed")
		}
	case input.FreeMode:
		x.log.WithField("active", e.Active).Info("free mode")
	case input.Miss:
		x.log.WithFields(logrus.Fields{"combo": string(e.Combo), "fine": e.Fine}).Debug("combo missed")
		x.feedback.Miss()
	}
}

// click waits for the overlay to withdraw, then injects.
func (x *Executor) click(e input.Click) {
	if x.settle > 0 {
		x.sleep(x.settle)
	}
	pos := e.Point.Round()
	fields := logrus.Fields{
		"x":      pos.X,
		"y":      pos.Y,
		"button": e.Button.String(),
		"count":  e.Count.String(),
	}
	if err := x.injector.Click(pos.X, pos.Y, e.Button, e.Count); err != nil {
		x.log.WithError(err).WithFields(fields).Warn("click failed")
		return
	}
	x.log.WithFields(fields).Debug("clicked")
	x.feedback.Click()
}
