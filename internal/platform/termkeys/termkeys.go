// Package termkeys turns terminal key events into press and release
// pairs so the grid can be driven from a terminal without a system hook.
//
// Terminals report only presses. Each press is followed by a synthetic
// release Hold later, which makes a quick tap of the toggle key read as a
// tap.
package termkeys

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/platform"
)

// DefaultHold is the delay between a press and its synthetic release.
const DefaultHold = 50 * time.Millisecond

const bufferSize = 64

// Source is a platform.KeySource fed from a tcell event loop.
type Source struct {
	mu      sync.Mutex
	started bool
	closed  bool
	out     chan key.Event
	timers  map[*time.Timer]struct{}

	hold      time.Duration
	interrupt func()
	log       *logrus.Entry

	shift atomic.Bool
}

// Option configures a Source.
type Option func(*Source)

// WithHold sets the delay before the synthetic release.
func WithHold(d time.Duration) Option {
	return func(s *Source) {
		if d > 0 {
			s.hold = d
		}
	}
}

// WithInterrupt sets the function called on Ctrl+C. Ctrl+C is not
// delivered as a key event.
func WithInterrupt(fn func()) Option {
	return func(s *Source) {
		s.interrupt = fn
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Source) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a Source.
func New(opts ...Option) *Source {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Source{
		out:    make(chan key.Event, bufferSize),
		timers: make(map[*time.Timer]struct{}),
		hold:   DefaultHold,
		log:    logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start returns the event channel. It closes after Stop or when ctx is
// done.
func (s *Source) Start(ctx context.Context) (<-chan key.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil, platform.ErrStarted
	}
	s.started = true

	go func() {
		<-ctx.Done()
		s.Stop()
	}()
	return s.out, nil
}

// Stop closes the event channel and cancels pending releases.
func (s *Source) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for t := range s.timers {
		t.Stop()
	}
	s.timers = nil
	close(s.out)
}

// ShiftHeld reports whether the most recent press carried shift.
func (s *Source) ShiftHeld() bool {
	return s.shift.Load()
}

// Feed converts a terminal key event and queues the press and its
// release. It is called from the terminal's event loop and never blocks.
func (s *Source) Feed(tev *tcell.EventKey) {
	if tev.Key() == tcell.KeyCtrlC {
		if s.interrupt != nil {
			s.interrupt()
		}
		return
	}

	down, ok := Convert(tev)
	if !ok {
		s.log.WithField("key", tev.Name()).Debug("terminal key ignored")
		return
	}
	s.shift.Store(down.Modifiers.HasShift())

	up := down
	up.Type = key.Up
	up.Timestamp = down.Timestamp.Add(s.hold)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.send(down)

	var t *time.Timer
	t = time.AfterFunc(s.hold, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		delete(s.timers, t)
		s.send(up)
		s.shift.Store(false)
	})
	s.timers[t] = struct{}{}
}

// send must be called with mu held.
func (s *Source) send(ev key.Event) {
	select {
	case s.out <- ev:
	default:
		s.log.WithField("key", ev.String()).Warn("key event dropped, dispatcher busy")
	}
}

// Convert builds a key press from a terminal key event. Control
// combinations other than the named keys are not convertible.
func Convert(tev *tcell.EventKey) (key.Event, bool) {
	ev := key.Event{
		Type:      key.Down,
		Modifiers: convertMod(tev.Modifiers()),
		Timestamp: tev.When(),
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}

	if tev.Key() == tcell.KeyRune {
		r := tev.Rune()
		switch {
		case r == ' ':
			ev.Key = key.KeySpace
		case unicode.IsPrint(r):
			ev.Key = key.KeyRune
			ev.Rune = key.NormalizeRune(r)
			if unicode.IsUpper(r) {
				ev.Modifiers = ev.Modifiers.With(key.ModShift)
			}
		default:
			return key.Event{}, false
		}
		return ev, true
	}

	ev.Key = convertKey(tev.Key())
	if ev.Key == key.KeyNone {
		return key.Event{}, false
	}
	return ev, true
}

func convertKey(k tcell.Key) key.Key {
	switch k {
	case tcell.KeyEscape:
		return key.KeyEscape
	case tcell.KeyEnter:
		return key.KeyEnter
	case tcell.KeyTab:
		return key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.KeyBackspace
	case tcell.KeyDelete:
		return key.KeyDelete
	case tcell.KeyInsert:
		return key.KeyInsert
	case tcell.KeyHome:
		return key.KeyHome
	case tcell.KeyEnd:
		return key.KeyEnd
	case tcell.KeyPgUp:
		return key.KeyPageUp
	case tcell.KeyPgDn:
		return key.KeyPageDown
	case tcell.KeyUp:
		return key.KeyUp
	case tcell.KeyDown:
		return key.KeyDown
	case tcell.KeyLeft:
		return key.KeyLeft
	case tcell.KeyRight:
		return key.KeyRight
	case tcell.KeyF1:
		return key.KeyF1
	case tcell.KeyF2:
		return key.KeyF2
	case tcell.KeyF3:
		return key.KeyF3
	case tcell.KeyF4:
		return key.KeyF4
	case tcell.KeyF5:
		return key.KeyF5
	case tcell.KeyF6:
		return key.KeyF6
	case tcell.KeyF7:
		return key.KeyF7
	case tcell.KeyF8:
		return key.KeyF8
	case tcell.KeyF9:
		return key.KeyF9
	case tcell.KeyF10:
		return key.KeyF10
	case tcell.KeyF11:
		return key.KeyF11
	case tcell.KeyF12:
		return key.KeyF12
	case tcell.KeyPause:
		return key.KeyPause
	case tcell.KeyPrint:
		return key.KeyPrintScreen
	default:
		return key.KeyNone
	}
}

func convertMod(m tcell.ModMask) key.Modifier {
	var result key.Modifier
	if m&tcell.ModShift != 0 {
		result |= key.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= key.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= key.ModMeta
	}
	return result
}
