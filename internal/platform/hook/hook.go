// Package hook reads key events from the system-wide keyboard hook.
package hook

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	gohook "github.com/robotn/gohook"
	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/platform"
)

// bufferSize bounds the events queued between the hook and the
// dispatcher.
const bufferSize = 128

// Source is a platform.KeySource backed by gohook.
type Source struct {
	mu      sync.Mutex
	started bool
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once

	begin func() chan gohook.Event
	end   func()
	log   *logrus.Entry

	shiftLeft  atomic.Bool
	shiftRight atomic.Bool
}

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) Option {
	return func(s *Source) {
		if log != nil {
			s.log = log
		}
	}
}

// withHook replaces the gohook entry points.
func withHook(begin func() chan gohook.Event, end func()) Option {
	return func(s *Source) {
		s.begin = begin
		s.end = end
	}
}

// New creates a Source. The hook is installed by Start.
func New(opts ...Option) *Source {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	s := &Source{
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
		begin: gohook.Start,
		end:   gohook.End,
		log:   logrus.NewEntry(discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start installs the hook and delivers translated events.
func (s *Source) Start(ctx context.Context) (<-chan key.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return nil, platform.ErrStarted
	}
	s.started = true

	raw := s.begin()
	out := make(chan key.Event, bufferSize)
	go s.pump(ctx, raw, out)
	s.log.Debug("keyboard hook installed")
	return out, nil
}

func (s *Source) pump(ctx context.Context, raw <-chan gohook.Event, out chan<- key.Event) {
	defer close(s.done)
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return
		case <-s.stop:
			return
		case ev, ok := <-raw:
			if !ok {
				return
			}
			kev, ok := translate(ev)
			if !ok {
				continue
			}
			s.trackShift(kev)
			select {
			case out <- kev:
			case <-s.stop:
				return
			default:
				s.log.WithField("key", kev.String()).Warn("key event dropped, dispatcher busy")
			}
		}
	}
}

// Stop removes the hook. It is safe to call more than once and before
// Start.
func (s *Source) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.mu.Lock()
		started := s.started
		s.mu.Unlock()
		if started {
			s.end()
			s.log.Debug("keyboard hook removed")
		}
	})
}

// ShiftHeld reports whether either shift key is down.
func (s *Source) ShiftHeld() bool {
	return s.shiftLeft.Load() || s.shiftRight.Load()
}

func (s *Source) trackShift(ev key.Event) {
	switch ev.Key {
	case key.KeyShiftLeft:
		s.shiftLeft.Store(ev.IsDown())
	case key.KeyShiftRight:
		s.shiftRight.Store(ev.IsDown())
	}
}

// translate converts a hook event. KeyHold is the physical press (and
// its auto-repeat); KeyDown only carries the typed character and is
// skipped.
func translate(ev gohook.Event) (key.Event, bool) {
	var typ key.EventType
	switch ev.Kind {
	case gohook.KeyHold:
		typ = key.Down
	case gohook.KeyUp:
		typ = key.Up
	default:
		return key.Event{}, false
	}

	k, r, ok := lookup(ev.Keycode)
	if !ok {
		k, r = key.Normalize(gohook.RawcodetoKeychar(ev.Rawcode))
		if k == key.KeyNone {
			return key.Event{}, false
		}
	}

	at := ev.When
	if at.IsZero() {
		at = time.Now()
	}
	return key.Event{Key: k, Rune: key.NormalizeRune(r), Type: typ, Timestamp: at}, true
}
