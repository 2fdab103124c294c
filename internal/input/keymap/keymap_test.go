package keymap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridmouse/internal/input/key"
)

func TestGenerateCoarseDefault(t *testing.T) {
	m, err := GenerateCoarse(DefaultCoarseSpec())
	require.NoError(t, err)

	assert.Equal(t, 25*36, m.Len())
	assert.True(t, m.Complete())
	assert.Equal(t, 2, m.ComboLen())

	tests := []struct {
		combo key.Combo
		want  Cell
	}{
		{"QQ", Cell{0, 0}},
		{"QW", Cell{0, 1}},
		{"QT", Cell{0, 4}},
		{"WQ", Cell{0, 5}},
		{"TT", Cell{0, 24}},
		{"QA", Cell{1, 0}},
		{"QG", Cell{1, 4}},
		{"TG", Cell{1, 24}},
		{"AQ", Cell{6, 0}},
		{"SQ", Cell{6, 5}},
		{"GT", Cell{6, 24}},
		{"NN", Cell{35, 0}},
		{"//", Cell{35, 24}},
		{"qw", Cell{0, 1}},
	}
	for _, tt := range tests {
		t.Run(string(tt.combo), func(t *testing.T) {
			got, ok := m.Resolve(tt.combo)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoarseRoundTrip(t *testing.T) {
	m, err := GenerateCoarse(DefaultCoarseSpec())
	require.NoError(t, err)

	cells := m.Cells()
	require.Len(t, cells, m.Rows()*m.Cols())
	seen := make(map[key.Combo]bool, len(cells))
	for _, c := range cells {
		label, ok := m.Label(c)
		require.True(t, ok, c.String())
		assert.False(t, seen[label], "duplicate label %s", label)
		seen[label] = true

		back, ok := m.Resolve(label)
		require.True(t, ok)
		assert.Equal(t, c, back)
	}
	assert.Equal(t, Cell{0, 0}, cells[0])
	assert.Equal(t, Cell{35, 24}, cells[len(cells)-1])
}

func TestGenerateCoarseIncomplete(t *testing.T) {
	tests := []struct {
		name string
		spec CoarseSpec
		got  int
	}{
		{
			name: "short first set",
			spec: CoarseSpec{Cols: 10, Rows: 2, FirstSets: []string{"Q"}, SecondSets: []string{"ABCDE", "FGHIJ"}},
			got:  10,
		},
		{
			name: "too few first sets",
			spec: CoarseSpec{Cols: 2, Rows: 4, FirstSets: []string{"Q"}, SecondSets: []string{"AB", "CD"}},
			got:  4,
		},
		{
			name: "no second sets",
			spec: CoarseSpec{Cols: 2, Rows: 2, FirstSets: []string{"Q"}},
			got:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := GenerateCoarse(tt.spec)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIncomplete)
			assert.Equal(t, tt.got, m.Len())
			assert.False(t, m.Complete())
		})
	}
}

func TestGenerateCoarseCollision(t *testing.T) {
	spec := CoarseSpec{
		Cols:       2,
		Rows:       2,
		FirstSets:  []string{"QQ"},
		SecondSets: []string{"A", "A"},
	}
	m, err := GenerateCoarse(spec)
	require.Error(t, err)
	assert.True(t, IsCollision(err))

	var ce *CollisionError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, key.Combo("QA"), ce.Combo)
	assert.Equal(t, Cell{0, 0}, ce.ExistingCell)

	// First assignment wins; nothing is renamed.
	got, ok := m.Resolve("QA")
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0}, got)
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestGenerateFineDefault(t *testing.T) {
	m, err := GenerateFine(DefaultFineSpec())
	require.NoError(t, err)
	assert.Equal(t, 24, m.Len())

	got, ok := m.Resolve("q")
	require.True(t, ok)
	assert.Equal(t, Cell{0, 0}, got)

	got, ok = m.Resolve(".")
	require.True(t, ok)
	assert.Equal(t, Cell{2, 7}, got)

	label, ok := m.Label(Cell{1, 7})
	require.True(t, ok)
	assert.Equal(t, key.Combo(";"), label)
}

func TestResolveFineCenter(t *testing.T) {
	m, err := GenerateFine(DefaultFineSpec())
	require.NoError(t, err)

	got, ok := ResolveFine(m, ' ')
	require.True(t, ok)
	assert.Equal(t, Cell{Row: 1, Col: 4}, got)

	_, ok = ResolveFine(m, 'G')
	assert.False(t, ok)

	_, ok = ResolveFine(nil, 'Q')
	assert.False(t, ok)
}

func TestGenerateFineErrors(t *testing.T) {
	t.Run("space reserved", func(t *testing.T) {
		_, err := GenerateFine(FineSpec{Cols: 2, Rows: 1, RowsKeys: []string{"A "}})
		assert.ErrorIs(t, err, ErrReservedCombo)
	})

	t.Run("duplicate key", func(t *testing.T) {
		m, err := GenerateFine(FineSpec{Cols: 2, Rows: 1, RowsKeys: []string{"aA"}})
		assert.True(t, IsCollision(err))
		assert.Equal(t, 1, m.Len())
	})

	t.Run("row too long", func(t *testing.T) {
		_, err := GenerateFine(FineSpec{Cols: 2, Rows: 1, RowsKeys: []string{"ABC"}})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("too many rows", func(t *testing.T) {
		_, err := GenerateFine(FineSpec{Cols: 1, Rows: 1, RowsKeys: []string{"A", "B"}})
		assert.ErrorIs(t, err, ErrOutOfRange)
	})
}

func TestBuilderCellCollision(t *testing.T) {
	b := NewBuilder("test", 2, 1, 1)
	require.NoError(t, b.Add("A", Cell{0, 0}))
	err := b.Add("B", Cell{0, 0})

	var ce *CollisionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, key.Combo("A"), ce.ExistingCombo)
	assert.Contains(t, ce.Error(), "assigned combos")

	assert.ErrorIs(t, b.Add("CD", Cell{0, 1}), ErrComboLength)
}

func TestBuilderInvalidDimensions(t *testing.T) {
	_, err := NewBuilder("test", 0, 3, 1).Build()
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestDefaultSet(t *testing.T) {
	s := Default()
	assert.True(t, s.Coarse.Complete())
	assert.True(t, s.Fine.Complete())
}
