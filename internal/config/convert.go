package config

import (
	"github.com/dshills/gridmouse/internal/input"
	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/keymap"
	"github.com/dshills/gridmouse/internal/input/mode"
)

// CoarseSpec returns the coarse generator spec.
func (c Config) CoarseSpec() keymap.CoarseSpec {
	g := c.Grid.Coarse
	return keymap.CoarseSpec{
		Cols:       g.Cols,
		Rows:       g.Rows,
		FirstSets:  append([]string(nil), g.FirstSets...),
		SecondSets: append([]string(nil), g.SecondSets...),
	}
}

// FineSpec returns the fine generator spec.
func (c Config) FineSpec() keymap.FineSpec {
	g := c.Grid.Fine
	return keymap.FineSpec{
		Cols:     g.Cols,
		Rows:     g.Rows,
		RowsKeys: append([]string(nil), g.RowsKeys...),
	}
}

// CoarseMap generates the coarse map. The map is returned even when err
// reports missing or colliding combos.
func (c Config) CoarseMap() (*keymap.GridMap, error) {
	return keymap.GenerateCoarse(c.CoarseSpec())
}

// FineMap generates the fine map. The map is returned even when err
// reports missing or colliding combos.
func (c Config) FineMap() (*keymap.GridMap, error) {
	return keymap.GenerateFine(c.FineSpec())
}

// Keymaps generates both maps.
func (c Config) Keymaps() (*keymap.Set, error) {
	return keymap.Build(c.CoarseSpec(), c.FineSpec())
}

type namedBinding struct {
	name string
	spec string
}

// bindings lists the free-mode bindings in FreeBindings field order.
func (f FreeModeConfig) bindings() []namedBinding {
	return []namedBinding{
		{name: "up", spec: f.Up},
		{name: "down", spec: f.Down},
		{name: "left", spec: f.Left},
		{name: "right", spec: f.Right},
		{name: "scroll_up", spec: f.ScrollUp},
		{name: "scroll_down", spec: f.ScrollDown},
		{name: "scroll_left", spec: f.ScrollLeft},
		{name: "scroll_right", spec: f.ScrollRight},
	}
}

// Input converts the configuration into handler settings. Values that do
// not parse keep the handler default; Validate reports them.
func (c Config) Input() input.Config {
	cfg := input.DefaultConfig()

	if code, err := key.Parse(c.Keys.OverlayToggle); err == nil {
		cfg.OverlayToggle = code
	}
	if code, err := key.Parse(c.Keys.FreeModeToggle); err == nil {
		cfg.FreeModeToggle = code
	}

	t := c.Timing
	if t.ToggleMinTap >= 0 && t.ToggleMinTap < t.ToggleMaxTap {
		cfg.MinTap, cfg.MaxTap = t.ToggleMinTap, t.ToggleMaxTap
	}
	if t.DoubleClickInterval > 0 {
		cfg.DoubleClickInterval = t.DoubleClickInterval
	}

	f := c.FreeMode
	cfg.FreeModeEnabled = f.Enabled
	cfg.MoveStep = f.MoveStep
	cfg.ScrollStep = f.ScrollStep

	var b mode.FreeBindings
	targets := []*key.Code{&b.Up, &b.Down, &b.Left, &b.Right, &b.ScrollUp, &b.ScrollDown, &b.ScrollLeft, &b.ScrollRight}
	for i, nb := range f.bindings() {
		if code, err := key.Parse(nb.spec); err == nil {
			*targets[i] = code
		}
	}
	cfg.FreeBindings = b
	return cfg
}
