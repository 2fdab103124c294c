package platform

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridmouse/internal/input/mouse"
)

type brokenScreen struct{}

func (brokenScreen) Size() (int, int, error) {
	return 0, 0, errors.New("no display")
}

func TestFixedScreen(t *testing.T) {
	w, h, err := FixedScreen{Width: 800, Height: 600}.Size()
	require.NoError(t, err)
	assert.Equal(t, 800, w)
	assert.Equal(t, 600, h)

	_, _, err = FixedScreen{}.Size()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestBounds(t *testing.T) {
	assert.Equal(t, mouse.RectOf(800, 600), Bounds(FixedScreen{Width: 800, Height: 600}, nil))
}

func TestBoundsFallback(t *testing.T) {
	logger, hook := test.NewNullLogger()

	r := Bounds(brokenScreen{}, logrus.NewEntry(logger))
	assert.Equal(t, mouse.RectOf(DefaultScreenWidth, DefaultScreenHeight), r)
	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestLogInjector(t *testing.T) {
	logger, hook := test.NewNullLogger()
	inj := NewLogInjector(logrus.NewEntry(logger))

	require.NoError(t, inj.Click(10, 20, mouse.ButtonRight, mouse.ClickDouble))
	require.NoError(t, inj.MoveRelative(-20, 0))
	require.NoError(t, inj.Scroll(100))
	require.NoError(t, inj.HScroll(-100))

	require.Len(t, hook.Entries, 4)
	click := hook.Entries[0]
	assert.Equal(t, "click", click.Message)
	assert.Equal(t, "right", click.Data["button"])
	assert.Equal(t, "double", click.Data["click"])
	assert.Equal(t, -20, hook.Entries[1].Data["dx"])
	assert.Equal(t, "hscroll", hook.Entries[3].Message)
}
