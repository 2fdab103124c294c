// Package app wires the key source, the input handler, the overlay
// surface and the pointer injector together and runs the dispatch loop.
package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dshills/gridmouse/internal/config"
	"github.com/dshills/gridmouse/internal/config/watcher"
	"github.com/dshills/gridmouse/internal/feedback"
	"github.com/dshills/gridmouse/internal/input"
	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/platform"
	"github.com/dshills/gridmouse/internal/renderer"
)

// Options configures the application.
type Options struct {
	// Config is the loaded configuration.
	Config config.Config

	// ConfigPath is watched for changes when Reload is set.
	ConfigPath string

	// Reload loads the configuration again after ConfigPath changes.
	Reload func() (*config.Result, error)

	Keys     platform.KeySource
	Injector platform.Injector
	Surface  renderer.Surface
	Screen   platform.Screen

	// Feedback is optional.
	Feedback feedback.Player

	// Log is the base logger. Default: NewLogger("app").
	Log *logrus.Entry
}

// Application owns the dispatch loop. Key events are handled strictly
// one at a time on the goroutine running Run.
type Application struct {
	opts    Options
	log     *logrus.Entry
	cfg     config.Config
	handler *input.Handler
	exec    *Executor

	// pending is a reloaded configuration waiting for the handler to
	// become Hidden.
	pending *config.Config
	watcher *watcher.Watcher

	running  atomic.Bool
	shutdown sync.Once
}

// New checks the components, builds the key maps and logs the startup
// banner. Configuration problems are logged and never fatal.
func New(opts Options) (*Application, error) {
	switch {
	case opts.Keys == nil:
		return nil, &InitError{Component: "key source", Err: ErrMissingComponent}
	case opts.Injector == nil:
		return nil, &InitError{Component: "injector", Err: ErrMissingComponent}
	case opts.Surface == nil:
		return nil, &InitError{Component: "surface", Err: ErrMissingComponent}
	case opts.Screen == nil:
		return nil, &InitError{Component: "screen", Err: ErrMissingComponent}
	}
	if opts.Feedback == nil {
		opts.Feedback = feedback.Silent{}
	}
	log := opts.Log
	if log == nil {
		log = NewLogger("app")
	}

	a := &Application{
		opts: opts,
		log:  log,
		cfg:  opts.Config,
	}

	bounds := platform.Bounds(opts.Screen, a.component("platform"))
	maps := a.buildMaps(a.cfg)
	a.handler = input.NewHandler(a.cfg.Input(), maps, bounds,
		input.WithLogger(a.component("input")))

	a.exec = NewExecutor(opts.Surface, opts.Injector, opts.Feedback, a.component("executor"))
	a.exec.SetMaps(maps)
	a.exec.SetBounds(bounds)
	a.exec.SetSettle(a.cfg.Timing.ClickSettle)
	a.applyStyle(a.cfg)

	a.banner(maps, bounds.Width(), bounds.Height())
	return a, nil
}

func (a *Application) component(name string) *logrus.Entry {
	return a.log.WithField("component", name)
}

// buildMaps generates the key maps, logging what could not be built.
func (a *Application) buildMaps(cfg config.Config) *keymap.Set {
	maps, err := cfg.Keymaps()
	if err != nil {
		a.log.WithError(err).Warn("key maps incomplete, some cells are unreachable")
	}
	if maps.Coarse.Len() == 0 || maps.Fine.Len() == 0 {
		a.log.WithFields(logrus.Fields{
			"coarse": maps.Coarse.Len(),
			"fine":   maps.Fine.Len(),
		}).Warn("key map is empty")
	}
	return maps
}

func (a *Application) applyStyle(cfg config.Config) {
	if s, ok := a.opts.Surface.(renderer.Styler); ok {
		s.SetStyle(StyleFrom(cfg.Style))
	}
}

func (a *Application) banner(maps *keymap.Set, w, h float64) {
	a.log.WithFields(logrus.Fields{
		"toggle":       a.cfg.Keys.OverlayToggle,
		"coarse":       keymapSize(maps.Coarse),
		"fine":         keymapSize(maps.Fine),
		"double_click": a.cfg.Timing.DoubleClickInterval.String(),
		"free_mode":    a.cfg.FreeMode.Enabled,
		"screen":       logrus.Fields{"width": w, "height": h},
	}).Info("gridmouse ready")
}

func keymapSize(m *keymap.GridMap) string {
	return fmt.Sprintf("%dx%d", m.Cols(), m.Rows())
}

// Handler returns the input handler.
func (a *Application) Handler() *input.Handler {
	return a.handler
}

// Config returns the active configuration.
func (a *Application) Config() config.Config {
	return a.cfg
}

// Run starts the key source and dispatches events until ctx is done or
// the source closes. Shutdown runs before Run returns.
func (a *Application) Run(ctx context.Context) error {
	if !a.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer a.Shutdown()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys, err := a.opts.Keys.Start(ctx)
	if err != nil {
		return &InitError{Component: "key source", Err: err}
	}

	reloads := make(chan *config.Config, 1)
	g, gctx := errgroup.WithContext(ctx)

	if changes := a.watchConfig(); changes != nil {
		g.Go(func() error {
			a.relayReloads(gctx, changes, reloads)
			return nil
		})
	}
	g.Go(func() error {
		defer cancel()
		a.dispatch(gctx, keys, reloads)
		return nil
	})
	return g.Wait()
}

func (a *Application) dispatch(ctx context.Context, keys <-chan key.Event, reloads <-chan *config.Config) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-keys:
			if !ok {
				a.log.Info("key source closed")
				return
			}
			a.handle(ev)
		case cfg := <-reloads:
			a.pending = cfg
			a.applyPending()
		}
	}
}

// handle runs one event through the handler and applies its effects.
func (a *Application) handle(ev key.Event) {
	if a.opts.Keys.ShiftHeld() {
		ev.Modifiers = ev.Modifiers.With(key.ModShift)
	}
	a.exec.Execute(a.handler.Handle(ev))
	a.applyPending()
}

// Shutdown unhooks the key source, then releases the other components
// and logs the session metrics. It is safe to call more than once.
func (a *Application) Shutdown() {
	a.shutdown.Do(func() {
		a.opts.Keys.Stop()
		if a.watcher != nil {
			a.watcher.Stop()
		}
		if err := a.opts.Surface.Close(); err != nil {
			a.log.WithError(err).Warn("close overlay")
		}
		a.opts.Feedback.Close()
		a.log.WithFields(logrus.Fields(a.handler.Metrics().Snapshot().Fields())).Info("shutdown")
	})
}
