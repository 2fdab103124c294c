package renderer

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/mouse"
)

// closeTimeout bounds how long Close waits for the draw loop to exit.
const closeTimeout = time.Second

// command runs on the draw loop.
type command func()

// Terminal is a Surface drawn on a tcell screen. All drawing happens on
// its own loop goroutine; the exported methods only enqueue.
type Terminal struct {
	screen tcell.Screen
	style  Style
	log    *logrus.Entry
	onKey  func(*tcell.EventKey)

	// screen pixel space the grid specs are expressed in
	space mouse.Rect

	// owned by the draw loop
	visible bool
	grid    *GridSpec

	once sync.Once
	done chan struct{}
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithStyle sets the overlay style.
func WithStyle(s Style) TerminalOption {
	return func(t *Terminal) {
		t.style = s
	}
}

// WithLogger sets the logger.
func WithLogger(log *logrus.Entry) TerminalOption {
	return func(t *Terminal) {
		if log != nil {
			t.log = log
		}
	}
}

// WithKeyHandler receives terminal key events from the draw loop. The
// handler must not block.
func WithKeyHandler(fn func(*tcell.EventKey)) TerminalOption {
	return func(t *Terminal) {
		t.onKey = fn
	}
}

// NewTerminal opens the controlling terminal. space is the pixel area the
// grids will be described in.
func NewTerminal(space mouse.Rect, opts ...TerminalOption) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewTerminalWithScreen(screen, space, opts...)
}

// NewTerminalWithScreen initializes screen and starts the draw loop.
func NewTerminalWithScreen(screen tcell.Screen, space mouse.Rect, opts ...TerminalOption) (*Terminal, error) {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	t := &Terminal{
		screen: screen,
		style:  DefaultStyle(),
		log:    logrus.NewEntry(discard),
		space:  space,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	screen.Show()

	go t.loop()
	return t, nil
}

// Show makes the overlay visible.
func (t *Terminal) Show() {
	t.post(func() {
		t.visible = true
		t.redraw()
	})
}

// Hide clears the overlay.
func (t *Terminal) Hide() {
	t.post(func() {
		t.visible = false
		t.redraw()
	})
}

// DrawGrid replaces the grid. It is drawn immediately when visible.
func (t *Terminal) DrawGrid(spec GridSpec) {
	t.post(func() {
		t.grid = &spec
		t.redraw()
	})
}

// SetStyle changes the look and redraws.
func (t *Terminal) SetStyle(s Style) {
	t.post(func() {
		t.style = s
		t.redraw()
	})
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	t.once.Do(func() {
		t.screen.Fini()
		select {
		case <-t.done:
		case <-time.After(closeTimeout):
			t.log.Warn("terminal draw loop did not exit")
		}
	})
	return nil
}

// post enqueues cmd without waiting for it to run.
func (t *Terminal) post(cmd command) {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(cmd)); err != nil {
		t.log.WithError(err).Warn("overlay command dropped")
	}
}

func (t *Terminal) loop() {
	defer close(t.done)

	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventInterrupt:
			if cmd, ok := ev.Data().(command); ok {
				cmd()
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.redraw()
		case *tcell.EventKey:
			if t.onKey != nil {
				t.onKey(ev)
			}
		}
	}
}
