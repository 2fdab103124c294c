package mode

import (
	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mouse"
)

// Outcome classifies what the overlay did with a key.
type Outcome uint8

const (
	// OutcomeIgnored means the key had no effect.
	OutcomeIgnored Outcome = iota
	// OutcomeShown means the overlay entered Coarse.
	OutcomeShown
	// OutcomeHidden means the overlay was dismissed without a click.
	OutcomeHidden
	// OutcomePending means the first coarse character was stored.
	OutcomePending
	// OutcomeCoarseHit means a coarse combo selected a cell.
	OutcomeCoarseHit
	// OutcomeCoarseMiss means a coarse combo did not resolve.
	OutcomeCoarseMiss
	// OutcomeFineHit means a fine key selected the click point.
	OutcomeFineHit
	// OutcomeFineMiss means a fine key did not resolve; back to Coarse.
	OutcomeFineMiss
)

// String returns the outcome name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeShown:
		return "shown"
	case OutcomeHidden:
		return "hidden"
	case OutcomePending:
		return "pending"
	case OutcomeCoarseHit:
		return "coarse-hit"
	case OutcomeCoarseMiss:
		return "coarse-miss"
	case OutcomeFineHit:
		return "fine-hit"
	case OutcomeFineMiss:
		return "fine-miss"
	default:
		return "unknown"
	}
}

// IsMiss reports whether the outcome is a resolver miss.
func (o Outcome) IsMiss() bool {
	return o == OutcomeCoarseMiss || o == OutcomeFineMiss
}

// Result describes a single overlay step.
type Result struct {
	Outcome Outcome

	// Combo is the combo that was looked up, if any.
	Combo key.Combo

	// Cell is the resolved cell for hits.
	Cell keymap.Cell

	// Rect is the selected coarse cell for OutcomeCoarseHit.
	Rect mouse.Rect

	// Point and Button describe the click for OutcomeFineHit.
	Point  mouse.Point
	Button mouse.Button

	// Trigger is the fine character that produced the click.
	Trigger rune
}

// Overlay drives the Hidden, Coarse and Fine modes.
type Overlay struct {
	mgr    *Manager
	held   *Suppressor
	maps   *keymap.Set
	bounds mouse.Rect
}

// NewOverlay creates an overlay machine operating on mgr. held is the
// suppression set shared with the dispatcher.
func NewOverlay(mgr *Manager, held *Suppressor, maps *keymap.Set, bounds mouse.Rect) *Overlay {
	return &Overlay{mgr: mgr, held: held, maps: maps, bounds: bounds}
}

// Maps returns the key maps in use.
func (o *Overlay) Maps() *keymap.Set {
	return o.maps
}

// SetMaps replaces the key maps. Callers swap maps only while Hidden.
func (o *Overlay) SetMaps(maps *keymap.Set) {
	o.maps = maps
}

// Bounds returns the screen rectangle the coarse grid covers.
func (o *Overlay) Bounds() mouse.Rect {
	return o.bounds
}

// SetBounds replaces the screen rectangle.
func (o *Overlay) SetBounds(bounds mouse.Rect) {
	o.bounds = bounds
}

// Show enters Coarse with no pending character and an empty suppression
// set.
func (o *Overlay) Show() Result {
	o.held.Clear()
	o.mgr.Switch(Coarse())
	return Result{Outcome: OutcomeShown}
}

// Hide returns to Hidden, discarding the pending character and selected
// cell.
func (o *Overlay) Hide() Result {
	o.mgr.Switch(Hidden())
	return Result{Outcome: OutcomeHidden}
}

// HandleKey processes a key event while the overlay is visible. repeat
// reports whether the press is auto-repeat of a held key; shift reports
// whether shift is held.
func (o *Overlay) HandleKey(ev key.Event, repeat, shift bool) Result {
	cur := o.mgr.Current()
	if !cur.OverlayVisible() || !ev.IsDown() {
		return Result{}
	}
	if ev.IsEscape() {
		return o.Hide()
	}
	if repeat || ev.IsModifier() {
		return Result{}
	}

	ch, isChar := ev.Char()
	if cur.Kind == KindFine {
		return o.fineKey(cur, ev.Code(), ch, isChar, shift)
	}
	return o.coarseKey(cur, ev.Code(), ch, isChar)
}

func (o *Overlay) coarseKey(cur Mode, code key.Code, ch rune, isChar bool) Result {
	if isChar && !cur.HasPending() {
		o.mgr.Switch(CoarsePending(ch))
		return Result{Outcome: OutcomePending, Combo: key.ComboOf(ch)}
	}

	o.held.Rearm(code)
	if !isChar {
		o.mgr.Switch(Coarse())
		return Result{Outcome: OutcomeCoarseMiss}
	}

	combo := key.ComboOf(cur.Pending, ch)
	cell, ok := o.maps.Coarse.Resolve(combo)
	if !ok {
		o.mgr.Switch(Coarse())
		return Result{Outcome: OutcomeCoarseMiss, Combo: combo}
	}

	rect := mouse.CellRect(cell.Row, cell.Col, o.maps.Coarse.Cols(), o.maps.Coarse.Rows(), o.bounds)
	o.mgr.Switch(Fine(rect))
	return Result{Outcome: OutcomeCoarseHit, Combo: combo, Cell: cell, Rect: rect}
}

func (o *Overlay) fineKey(cur Mode, code key.Code, ch rune, isChar, shift bool) Result {
	o.held.Rearm(code)
	if !isChar {
		o.mgr.Switch(Coarse())
		return Result{Outcome: OutcomeFineMiss}
	}

	combo := key.ComboOf(ch)
	cell, ok := keymap.ResolveFine(o.maps.Fine, ch)
	if !ok {
		o.mgr.Switch(Coarse())
		return Result{Outcome: OutcomeFineMiss, Combo: combo}
	}

	fine := o.maps.Fine
	point := mouse.CellCenter(cell.Row, cell.Col, fine.Cols(), fine.Rows(), cur.Rect)
	o.mgr.Switch(Hidden())
	return Result{
		Outcome: OutcomeFineHit,
		Combo:   combo,
		Cell:    cell,
		Rect:    cur.Rect,
		Point:   point,
		Button:  mouse.ButtonFor(shift),
		Trigger: ch,
	}
}
