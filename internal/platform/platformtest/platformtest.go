// Package platformtest provides recording fakes of the platform and
// renderer interfaces.
package platformtest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/mouse"
	"github.com/dshills/gridmouse/internal/platform"
	"github.com/dshills/gridmouse/internal/renderer"
)

// Recorder collects calls from several fakes in one ordered log, so
// tests can assert ordering across the surface and the injector.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

// Record appends a formatted call.
func (r *Recorder) Record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// Calls returns a copy of the log.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Reset clears the log.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

// Injector records pointer actions. Err, when set, is returned by every
// call.
type Injector struct {
	Rec *Recorder
	Err error
}

// NewInjector returns an Injector writing to rec.
func NewInjector(rec *Recorder) *Injector {
	return &Injector{Rec: rec}
}

// Click records "click x,y button count".
func (i *Injector) Click(x, y int, button mouse.Button, count mouse.ClickType) error {
	i.Rec.Record("click %d,%d %s %s", x, y, button, count)
	return i.Err
}

// MoveRelative records "move dx,dy".
func (i *Injector) MoveRelative(dx, dy int) error {
	i.Rec.Record("move %d,%d", dx, dy)
	return i.Err
}

// Scroll records "scroll n".
func (i *Injector) Scroll(units int) error {
	i.Rec.Record("scroll %d", units)
	return i.Err
}

// HScroll records "hscroll n".
func (i *Injector) HScroll(units int) error {
	i.Rec.Record("hscroll %d", units)
	return i.Err
}

// Surface records overlay commands and keeps the last grid.
type Surface struct {
	Rec *Recorder

	mu      sync.Mutex
	visible bool
	grid    *renderer.GridSpec
	closed  int
}

// NewSurface returns a Surface writing to rec.
func NewSurface(rec *Recorder) *Surface {
	return &Surface{Rec: rec}
}

// Show records "show".
func (s *Surface) Show() {
	s.mu.Lock()
	s.visible = true
	s.mu.Unlock()
	s.Rec.Record("show")
}

// Hide records "hide".
func (s *Surface) Hide() {
	s.mu.Lock()
	s.visible = false
	s.mu.Unlock()
	s.Rec.Record("hide")
}

// DrawGrid records "draw colsxrows bounds".
func (s *Surface) DrawGrid(spec renderer.GridSpec) {
	s.mu.Lock()
	s.grid = &spec
	s.mu.Unlock()
	s.Rec.Record("draw %dx%d %s", spec.Cols, spec.Rows, spec.Bounds)
}

// Close counts calls.
func (s *Surface) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed++
	return nil
}

// Visible reports whether the last command was Show.
func (s *Surface) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Grid returns the last drawn grid.
func (s *Surface) Grid() *renderer.GridSpec {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Closed returns the number of Close calls.
func (s *Surface) Closed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// KeySource delivers events sent with Send.
type KeySource struct {
	ch      chan key.Event
	once    sync.Once
	started atomic.Bool
	stopped atomic.Int32
	shift   atomic.Bool
}

// NewKeySource returns a KeySource with a buffer of n events.
func NewKeySource(n int) *KeySource {
	return &KeySource{ch: make(chan key.Event, n)}
}

// Start returns the event channel.
func (k *KeySource) Start(ctx context.Context) (<-chan key.Event, error) {
	if !k.started.CompareAndSwap(false, true) {
		return nil, platform.ErrStarted
	}
	go func() {
		<-ctx.Done()
		k.Stop()
	}()
	return k.ch, nil
}

// Send queues an event. It must not be called after Stop.
func (k *KeySource) Send(ev key.Event) {
	k.ch <- ev
}

// Stop closes the channel.
func (k *KeySource) Stop() {
	k.stopped.Add(1)
	k.once.Do(func() { close(k.ch) })
}

// Stops returns the number of Stop calls.
func (k *KeySource) Stops() int {
	return int(k.stopped.Load())
}

// SetShift sets the value reported by ShiftHeld.
func (k *KeySource) SetShift(held bool) {
	k.shift.Store(held)
}

// ShiftHeld reports the value set with SetShift.
func (k *KeySource) ShiftHeld() bool {
	return k.shift.Load()
}
