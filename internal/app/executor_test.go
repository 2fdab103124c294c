package app

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"

	"github.com/dshills/gridmouse/internal/input"
	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mouse"
	"github.com/dshills/gridmouse/internal/platform/platformtest"
)

type countingPlayer struct {
	clicks, misses, closes int
}

func (p *countingPlayer) Click() { p.clicks++ }
func (p *countingPlayer) Miss()  { p.misses++ }
func (p *countingPlayer) Close() { p.closes++ }

func newTestExecutor() (*Executor, *platformtest.Recorder, *platformtest.Injector, *countingPlayer, *test.Hook) {
	rec := &platformtest.Recorder{}
	inj := platformtest.NewInjector(rec)
	fb := &countingPlayer{}
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	x := NewExecutor(platformtest.NewSurface(rec), inj, fb, logrus.NewEntry(logger))
	x.SetMaps(keymap.Default())
	x.SetBounds(mouse.RectOf(1920, 1080))
	x.sleep = func(d time.Duration) { rec.Record("sleep %s", d) }
	return x, rec, inj, fb, hook
}

func TestExecutorOrdering(t *testing.T) {
	x, rec, _, fb, _ := newTestExecutor()

	x.Execute([]input.Effect{
		input.ShowOverlay{},
		input.DrawCoarse{},
		input.DrawFine{Rect: mouse.Rect{X1: 0, Y1: 0, X2: 76.8, Y2: 30}},
		input.HideOverlay{},
		input.Click{Point: mouse.Point{X: 43.2, Y: 15}, Button: mouse.ButtonLeft, Count: mouse.ClickSingle},
	})

	assert.Equal(t, []string{
		"show",
		"draw 25x36 [0.0,0.0 - 1920.0,1080.0]",
		"draw 8x3 [0.0,0.0 - 76.8,30.0]",
		"hide",
		"sleep 50ms",
		"click 43,15 left single",
	}, rec.Calls())
	assert.Equal(t, 1, fb.clicks)
}

func TestExecutorPointerEffects(t *testing.T) {
	x, rec, _, fb, _ := newTestExecutor()
	x.SetSettle(0)

	x.Execute([]input.Effect{
		input.FreeMode{Active: true},
		input.Move{DX: 0, DY: -20},
		input.Scroll{Units: 100},
		input.HScroll{Units: -100},
		input.Miss{Combo: key.Combo("ZZ")},
		input.Click{Point: mouse.Point{X: 1.5, Y: 2.5}, Button: mouse.ButtonRight, Count: mouse.ClickDouble},
	})

	assert.Equal(t, []string{
		"move 0,-20",
		"scroll 100",
		"hscroll -100",
		"click 2,3 right double",
	}, rec.Calls())
	assert.Equal(t, 1, fb.misses)
	assert.Equal(t, 1, fb.clicks)
}

func TestExecutorInjectionErrors(t *testing.T) {
	x, rec, inj, fb, hook := newTestExecutor()
	x.SetSettle(-time.Second)
	inj.Err = errors.New("denied")

	x.Execute([]input.Effect{
		input.Click{Point: mouse.Point{X: 1, Y: 1}, Button: mouse.ButtonLeft, Count: mouse.ClickSingle},
		input.Move{DX: 1},
	})

	assert.Equal(t, []string{"click 1,1 left single", "move 1,0"}, rec.Calls())
	assert.Zero(t, fb.clicks)

	warnings := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel {
			warnings++
		}
	}
	assert.Equal(t, 2, warnings)
}

func TestExecutorWithoutMaps(t *testing.T) {
	x, rec, _, _, _ := newTestExecutor()
	x.SetMaps(nil)

	x.Execute([]input.Effect{input.DrawCoarse{}, input.DrawFine{}})
	assert.Empty(t, rec.Calls())
}
