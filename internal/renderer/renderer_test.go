package renderer

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

func newTestTerminal(t *testing.T, opts ...TerminalOption) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTerminalWithScreen(sim, mouse.RectOf(800, 250), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = term.Close() })
	return term, sim
}

// flush waits until every command posted before it has run.
func flush(t *testing.T, term *Terminal) {
	t.Helper()
	done := make(chan struct{})
	term.post(func() { close(done) })
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("draw loop stalled")
	}
}

func fineMap(t *testing.T) *keymap.GridMap {
	t.Helper()
	m, err := keymap.GenerateFine(keymap.DefaultFineSpec())
	require.NoError(t, err)
	return m
}

func runeAt(sim tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := sim.GetContent(x, y)
	return r
}

func TestLabelSize(t *testing.T) {
	style := DefaultStyle()

	assert.Equal(t, 10, LabelSize(1920.0/25, 1080.0/36, "QW", style))
	assert.Equal(t, MinLabelSize, LabelSize(10, 10, "AB", style))
	assert.Equal(t, 20, LabelSize(1000, 60, "Q", style))

	style.FontSizing = FontFixed
	style.FontFixedSize = 14
	assert.Equal(t, 14, LabelSize(10, 10, "AB", style))
}

func TestStyleTint(t *testing.T) {
	style := DefaultStyle()
	style.Alpha = 0.4
	got := style.tint(colorful.Color{R: 1, G: 1, B: 1})
	assert.InDelta(t, 0.4, got.R, 1e-9)

	style.Alpha = 2
	got = style.tint(colorful.Color{R: 1, G: 0, B: 0})
	assert.InDelta(t, 1.0, got.R, 1e-9)
}

func TestGridSpecs(t *testing.T) {
	m := fineMap(t)
	bounds := mouse.RectOf(80, 30)

	coarse := CoarseGrid(m, bounds)
	assert.Nil(t, coarse.Highlight)
	assert.Equal(t, "Q", coarse.LabelOf(keymap.Cell{Row: 0, Col: 0}))
	assert.Equal(t, "", coarse.LabelOf(keymap.Cell{Row: 9, Col: 9}))

	fine := FineGrid(m, bounds)
	require.NotNil(t, fine.Highlight)
	assert.Equal(t, keymap.Cell{Row: 1, Col: 4}, *fine.Highlight)
	assert.Equal(t, mouse.Rect{X1: 40, Y1: 10, X2: 50, Y2: 20}, fine.CellRect(*fine.Highlight))

	assert.Equal(t, "", GridSpec{}.LabelOf(keymap.Cell{}))
}

func TestToBox(t *testing.T) {
	space := mouse.RectOf(800, 250)
	b := toBox(mouse.Rect{X1: 400, Y1: 100, X2: 500, Y2: 200}, space, 80, 25)
	assert.Equal(t, box{left: 40, top: 10, right: 50, bottom: 20}, b)
}

func TestTerminalDrawsFineGrid(t *testing.T) {
	term, sim := newTestTerminal(t)
	m := fineMap(t)

	term.DrawGrid(FineGrid(m, mouse.RectOf(800, 250)))
	flush(t, term)
	assert.Equal(t, ' ', runeAt(sim, 4, 3), "nothing drawn while hidden")

	term.Show()
	flush(t, term)

	assert.Equal(t, 'Q', runeAt(sim, 4, 3))
	assert.Equal(t, tcell.RuneULCorner, runeAt(sim, 0, 0))

	// center cell (1,4) spans columns 40-49 and rows 8-15
	_, _, st, _ := sim.GetContent(40, 8)
	fg, _, _ := st.Decompose()
	assert.Equal(t, tcellColor(DefaultStyle().Highlight), fg)
	assert.Equal(t, tcell.RuneULCorner, runeAt(sim, 40, 8))

	term.Hide()
	flush(t, term)
	assert.Equal(t, ' ', runeAt(sim, 4, 3))
	assert.Equal(t, ' ', runeAt(sim, 40, 8))
}

func TestTerminalDashedLines(t *testing.T) {
	style := DefaultStyle()
	style.Line = LineDashed
	term, sim := newTestTerminal(t, WithStyle(style))

	term.DrawGrid(FineGrid(fineMap(t), mouse.RectOf(800, 250)))
	term.Show()
	flush(t, term)

	assert.Equal(t, '┄', runeAt(sim, 2, 0))
	assert.Equal(t, '┆', runeAt(sim, 0, 2))
}

func TestTerminalDenseGridOmitsLines(t *testing.T) {
	term, sim := newTestTerminal(t)
	coarse, err := keymap.GenerateCoarse(keymap.DefaultCoarseSpec())
	require.NoError(t, err)

	term.DrawGrid(CoarseGrid(coarse, mouse.RectOf(800, 250)))
	term.Show()
	flush(t, term)

	assert.NotEqual(t, tcell.RuneULCorner, runeAt(sim, 0, 0))
	assert.NotEqual(t, ' ', runeAt(sim, 0, 0))
}

func TestTerminalForwardsKeys(t *testing.T) {
	keys := make(chan *tcell.EventKey, 1)
	_, sim := newTestTerminal(t, WithKeyHandler(func(ev *tcell.EventKey) { keys <- ev }))

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case ev := <-keys:
		assert.Equal(t, 'q', ev.Rune())
	case <-time.After(time.Second):
		t.Fatal("key not forwarded")
	}
}

func TestTerminalCloseIdempotent(t *testing.T) {
	term, _ := newTestTerminal(t)
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())

	select {
	case <-term.done:
	default:
		t.Fatal("draw loop still running")
	}
}
