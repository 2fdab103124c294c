package input

import (
	"errors"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mode"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// ErrOverlayActive is returned by Apply while the overlay or free mode is
// in use. The caller retries once the handler is Hidden.
var ErrOverlayActive = errors.New("input handler busy")

// Handler is the single entry point for key events.
type Handler struct {
	config  Config
	ctx     *Context
	metrics *Metrics
	log     *logrus.Entry
	now     func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for state transitions.
func WithLogger(log *logrus.Entry) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithMetrics shares a metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(h *Handler) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithClock overrides the clock used to measure handling latency.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

// NewHandler creates a handler in the Hidden mode. Problems with the free
// mode bindings are logged and the remaining bindings stay usable.
func NewHandler(cfg Config, maps *keymap.Set, bounds mouse.Rect, opts ...Option) *Handler {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	h := &Handler{
		metrics: NewMetrics(),
		log:     logrus.NewEntry(discard),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}

	mgr := mode.NewManager()
	held := mode.NewSuppressor()
	h.ctx = &Context{
		Modes:       mgr,
		Held:        held,
		Overlay:     mode.NewOverlay(mgr, held, maps, bounds),
		Modifiers:   key.NewHeldSet(),
		DoubleClick: mouse.NewDoubleClick(cfg.DoubleClickInterval),
	}
	h.configure(cfg)

	mgr.OnChange(func(from, to mode.Mode) {
		h.log.WithFields(logrus.Fields{"from": from.String(), "mode": to.String()}).Debug("mode changed")
	})
	return h
}

func (h *Handler) configure(cfg Config) {
	h.config = cfg
	h.ctx.Toggle = NewTapArbiter(cfg.OverlayToggle, cfg.MinTap, cfg.MaxTap)
	h.ctx.DoubleClick.SetInterval(cfg.DoubleClickInterval)
	h.ctx.Free = nil
	h.ctx.FreeToggle = nil
	if !cfg.FreeModeEnabled {
		return
	}
	free, err := mode.NewFreeController(cfg.FreeBindings, cfg.MoveStep, cfg.ScrollStep)
	if err != nil {
		h.log.WithError(err).Warn("free mode bindings")
	}
	h.ctx.Free = free
	h.ctx.FreeToggle = NewLatch(cfg.FreeModeToggle)
}

// Context returns the handler's state for inspection.
func (h *Handler) Context() *Context {
	return h.ctx
}

// Metrics returns the handler's metrics.
func (h *Handler) Metrics() *Metrics {
	return h.metrics
}

// Config returns the active configuration.
func (h *Handler) Config() Config {
	return h.config
}

// Apply swaps in a new configuration and key maps. It is refused with
// ErrOverlayActive unless the handler is Hidden.
func (h *Handler) Apply(cfg Config, maps *keymap.Set) error {
	if !h.ctx.Mode().IsHidden() {
		return ErrOverlayActive
	}
	h.configure(cfg)
	if maps != nil {
		h.ctx.Overlay.SetMaps(maps)
	}
	h.ctx.DoubleClick.Disarm()
	return nil
}

// SetBounds changes the screen rectangle the coarse grid covers.
func (h *Handler) SetBounds(bounds mouse.Rect) {
	h.ctx.Overlay.SetBounds(bounds)
}

// Handle processes one key event and returns the effects to apply in order.
func (h *Handler) Handle(ev key.Event) []Effect {
	start := h.now()
	effects := h.handle(ev)
	h.metrics.RecordKeyEvent(h.now().Sub(start))
	h.metrics.RecordEffects(effects)
	return effects
}

func (h *Handler) handle(ev key.Event) []Effect {
	c := h.ctx
	c.Modifiers.Observe(ev)

	if c.Toggle.Owns(ev) {
		if c.Toggle.Observe(ev) {
			return h.toggleOverlay()
		}
		return nil
	}
	if ev.IsDown() && c.Toggle.Tracking() {
		c.Toggle.Cancel()
	}

	if c.FreeToggle != nil && c.FreeToggle.Owns(ev) {
		if c.FreeToggle.Observe(ev) {
			return h.toggleFree()
		}
		return nil
	}

	repeat := c.Held.Observe(ev)
	if ev.IsUp() {
		return nil
	}
	if repeat {
		h.metrics.RecordRepeat()
	}

	cur := c.Mode()
	switch {
	case cur.IsFree():
		return h.handleFree(ev)
	case cur.IsHidden():
		if repeat {
			return nil
		}
		return h.handleHidden(ev)
	default:
		return h.handleOverlay(ev, repeat)
	}
}

// toggleOverlay shows the grid when hidden (leaving free mode first) and
// hides it when visible.
func (h *Handler) toggleOverlay() []Effect {
	c := h.ctx
	h.metrics.RecordToggle()
	if c.Mode().OverlayVisible() {
		c.Overlay.Hide()
		return []Effect{HideOverlay{}}
	}

	var effects []Effect
	if c.Mode().IsFree() {
		effects = append(effects, FreeMode{Active: false})
	}
	c.DoubleClick.Disarm()
	c.Overlay.Show()
	return append(effects, ShowOverlay{}, DrawCoarse{})
}

// toggleFree flips free mode. Entering it hides a visible overlay first.
func (h *Handler) toggleFree() []Effect {
	c := h.ctx
	h.metrics.RecordToggle()
	if c.Mode().IsFree() {
		c.Modes.Switch(mode.Hidden())
		return []Effect{FreeMode{Active: false}}
	}

	var effects []Effect
	if c.Mode().OverlayVisible() {
		c.Overlay.Hide()
		effects = append(effects, HideOverlay{})
	}
	c.DoubleClick.Disarm()
	c.Modes.Switch(mode.Free())
	return append(effects, FreeMode{Active: true})
}

func (h *Handler) handleFree(ev key.Event) []Effect {
	action, ok := h.ctx.Free.Handle(ev)
	if !ok {
		return nil
	}
	switch {
	case action.Kind == mode.FreeMove:
		return []Effect{Move{DX: action.DX, DY: action.DY}}
	case action.Scroll.IsHorizontal():
		return []Effect{HScroll{Units: action.Units}}
	default:
		return []Effect{Scroll{Units: action.Units}}
	}
}

// handleHidden offers a fresh key press to the double-click latch.
// Modifier keys neither fire nor disarm it.
func (h *Handler) handleHidden(ev key.Event) []Effect {
	dc := h.ctx.DoubleClick
	if !dc.Armed() || ev.IsModifier() {
		return nil
	}
	ch, isChar := ev.Char()
	p, fire := dc.Observe(ch, isChar, ev.Timestamp)
	if !fire {
		h.log.WithField("key", ev.Code().String()).Debug("double click disarmed")
		return nil
	}
	h.log.WithFields(logrus.Fields{
		"x":      p.Point.X,
		"y":      p.Point.Y,
		"button": p.Button.String(),
	}).Debug("double click")
	return []Effect{Click{Point: p.Point, Button: p.Button, Count: mouse.ClickDouble}}
}

func (h *Handler) handleOverlay(ev key.Event, repeat bool) []Effect {
	c := h.ctx
	r := c.Overlay.HandleKey(ev, repeat, c.ShiftHeld(ev))
	if r.Outcome != mode.OutcomeIgnored {
		h.log.WithFields(logrus.Fields{
			"outcome": r.Outcome.String(),
			"combo":   string(r.Combo),
			"cell":    r.Cell.String(),
		}).Debug("overlay key")
	}

	switch r.Outcome {
	case mode.OutcomeHidden:
		return []Effect{HideOverlay{}}
	case mode.OutcomeCoarseHit:
		return []Effect{DrawFine{Rect: r.Rect}}
	case mode.OutcomeCoarseMiss:
		return []Effect{Miss{Combo: r.Combo}}
	case mode.OutcomeFineMiss:
		return []Effect{DrawCoarse{}, Miss{Combo: r.Combo, Fine: true}}
	case mode.OutcomeFineHit:
		c.DoubleClick.Arm(r.Trigger, ev.Timestamp, r.Point, r.Button)
		h.log.WithFields(logrus.Fields{
			"x":      r.Point.X,
			"y":      r.Point.Y,
			"button": r.Button.String(),
		}).Debug("click")
		return []Effect{HideOverlay{}, Click{Point: r.Point, Button: r.Button, Count: mouse.ClickSingle}}
	default:
		return nil
	}
}
