package renderer

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// box is a rectangle of terminal cells; right and bottom are exclusive.
type box struct {
	left, top, right, bottom int
}

func (b box) width() int  { return b.right - b.left }
func (b box) height() int { return b.bottom - b.top }

// toBox maps a pixel rectangle onto the w x h terminal.
func toBox(r, space mouse.Rect, w, h int) box {
	sx := float64(w) / math.Max(space.Width(), 1)
	sy := float64(h) / math.Max(space.Height(), 1)
	return box{
		left:   int(math.Floor((r.X1 - space.X1) * sx)),
		top:    int(math.Floor((r.Y1 - space.Y1) * sy)),
		right:  int(math.Floor((r.X2 - space.X1) * sx)),
		bottom: int(math.Floor((r.Y2 - space.Y1) * sy)),
	}
}

func (t *Terminal) redraw() {
	t.screen.Clear()
	if t.visible && t.grid != nil {
		t.drawGrid(*t.grid)
	}
	t.screen.Show()
}

func (t *Terminal) drawGrid(g GridSpec) {
	w, h := t.screen.Size()
	area := toBox(g.Bounds, t.space, w, h)
	t.fill(area, ' ', t.style.cellStyle())

	cells := make([]box, 0, g.Rows*g.Cols)
	dense := false
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			b := toBox(g.CellRect(keymap.Cell{Row: row, Col: col}), t.space, w, h)
			if b.width() < 3 || b.height() < 2 {
				dense = true
			}
			cells = append(cells, b)
		}
	}

	if dense {
		t.log.WithFields(logrus.Fields{
			"cols": g.Cols, "rows": g.Rows, "width": w, "height": h,
		}).Debug("grid denser than terminal, lines omitted")
	} else {
		for _, b := range cells {
			t.outline(b, t.lineRunes(), t.style.lineStyle())
		}
	}

	for i, b := range cells {
		c := keymap.Cell{Row: i / g.Cols, Col: i % g.Cols}
		t.label(b, g.LabelOf(c), !dense)
	}

	if g.Highlight != nil {
		hb := toBox(g.CellRect(*g.Highlight), t.space, w, h)
		t.outline(hb, boxRunes, t.style.highlightStyle())
	}

	if t.log.Logger.IsLevelEnabled(logrus.DebugLevel) && g.Cols > 0 && g.Rows > 0 {
		pw := g.Bounds.Width() / float64(g.Cols)
		ph := g.Bounds.Height() / float64(g.Rows)
		t.log.WithFields(logrus.Fields{
			"cols":       g.Cols,
			"rows":       g.Rows,
			"bounds":     g.Bounds.String(),
			"label_size": LabelSize(pw, ph, g.LabelOf(keymap.Cell{}), t.style),
		}).Debug("grid drawn")
	}
}

// borderRunes are the glyphs of a cell outline.
type borderRunes struct {
	h, v, ul, ur, ll, lr rune
}

var (
	boxRunes  = borderRunes{tcell.RuneHLine, tcell.RuneVLine, tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner}
	dashRunes = borderRunes{'┄', '┆', tcell.RuneULCorner, tcell.RuneURCorner, tcell.RuneLLCorner, tcell.RuneLRCorner}
)

func (t *Terminal) lineRunes() borderRunes {
	if t.style.Line == LineDashed {
		return dashRunes
	}
	return boxRunes
}

func (t *Terminal) fill(b box, r rune, st tcell.Style) {
	for y := b.top; y < b.bottom; y++ {
		for x := b.left; x < b.right; x++ {
			t.screen.SetContent(x, y, r, nil, st)
		}
	}
}

// outline draws the border of b along its outermost cells.
func (t *Terminal) outline(b box, rs borderRunes, st tcell.Style) {
	if b.width() < 2 || b.height() < 2 {
		return
	}
	x2, y2 := b.right-1, b.bottom-1
	for x := b.left + 1; x < x2; x++ {
		t.screen.SetContent(x, b.top, rs.h, nil, st)
		t.screen.SetContent(x, y2, rs.h, nil, st)
	}
	for y := b.top + 1; y < y2; y++ {
		t.screen.SetContent(b.left, y, rs.v, nil, st)
		t.screen.SetContent(x2, y, rs.v, nil, st)
	}
	t.screen.SetContent(b.left, b.top, rs.ul, nil, st)
	t.screen.SetContent(x2, b.top, rs.ur, nil, st)
	t.screen.SetContent(b.left, y2, rs.ll, nil, st)
	t.screen.SetContent(x2, y2, rs.lr, nil, st)
}

// label centers text in b, inside the border when bordered.
func (t *Terminal) label(b box, text string, bordered bool) {
	if text == "" {
		return
	}
	inner := b
	if bordered {
		inner = box{b.left + 1, b.top + 1, b.right - 1, b.bottom - 1}
	}
	rs := []rune(text)
	width := max(inner.width(), 1)
	if len(rs) > width {
		rs = rs[:width]
	}
	x := inner.left + (inner.width()-len(rs))/2
	y := inner.top + max(inner.height()-1, 0)/2
	st := t.style.textStyle()
	for i, r := range rs {
		t.screen.SetContent(x+i, y, r, nil, st)
	}
}
