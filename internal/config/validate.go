package config

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/key"
)

// Soft limits for the double click interval.
const (
	MinDoubleClickInterval = 100 * time.Millisecond
	MaxDoubleClickInterval = time.Second
)

// Validate reports every setting that is out of range or unusable. The
// configuration stays usable: consumers fall back to defaults for the
// values named here.
func (c Config) Validate() Warnings {
	var ws Warnings
	c.validateGrid(&ws)
	c.validateKeys(&ws)
	c.validateTiming(&ws)
	c.validateFreeMode(&ws)
	c.validateStyle(&ws)

	if c.Feedback.Volume < 0 || c.Feedback.Volume > 1 {
		ws.Add("feedback.volume", "%v is outside [0, 1]", c.Feedback.Volume)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		ws.Add("log.level", "%v", err)
	}
	if c.Log.Format != FormatText && c.Log.Format != FormatJSON {
		ws.Add("log.format", "unknown format %q (want text or json)", c.Log.Format)
	}
	return ws
}

func (c Config) validateGrid(ws *Warnings) {
	if _, err := c.CoarseMap(); err != nil {
		ws.Err("grid.coarse", err)
	}
	if _, err := c.FineMap(); err != nil {
		ws.Err("grid.fine", err)
	}
}

func (c Config) validateKeys(ws *Warnings) {
	overlay, err := key.Parse(c.Keys.OverlayToggle)
	if err != nil {
		ws.Err("keys.overlay_toggle", err)
	}
	if !c.FreeMode.Enabled {
		return
	}
	free, err := key.Parse(c.Keys.FreeModeToggle)
	if err != nil {
		ws.Err("keys.free_mode_toggle", err)
		return
	}
	if !overlay.IsZero() && (overlay == free || overlay.Covers(free) || free.Covers(overlay)) {
		ws.Add("keys.free_mode_toggle", "same key as the overlay toggle")
	}
}

func (c Config) validateTiming(ws *Warnings) {
	t := c.Timing
	if t.DoubleClickInterval < MinDoubleClickInterval || t.DoubleClickInterval > MaxDoubleClickInterval {
		ws.Add("timing.double_click_interval", "%v is outside [%v, %v]",
			t.DoubleClickInterval, MinDoubleClickInterval, MaxDoubleClickInterval)
	}
	if t.ToggleMinTap < 0 {
		ws.Add("timing.toggle_min_tap", "negative duration %v", t.ToggleMinTap)
	}
	if t.ToggleMinTap >= t.ToggleMaxTap {
		ws.Add("timing.toggle_max_tap", "%v is not above toggle_min_tap %v", t.ToggleMaxTap, t.ToggleMinTap)
	}
	if t.ClickSettle < 0 {
		ws.Add("timing.click_settle", "negative duration %v", t.ClickSettle)
	}
}

func (c Config) validateFreeMode(ws *Warnings) {
	f := c.FreeMode
	if !f.Enabled {
		return
	}
	if f.MoveStep < 1 {
		ws.Add("free_mode.move_step", "must be at least 1, got %d", f.MoveStep)
	}
	if f.ScrollStep < 1 {
		ws.Add("free_mode.scroll_step", "must be at least 1, got %d", f.ScrollStep)
	}

	seen := make(map[key.Code]string, 8)
	for _, b := range f.bindings() {
		path := "free_mode." + b.name
		if b.spec == "" {
			ws.Add(path, "empty binding")
			continue
		}
		code, err := key.Parse(b.spec)
		if err != nil {
			ws.Err(path, err)
			continue
		}
		if prev, dup := seen[code]; dup {
			ws.Add(path, "%s is already bound to %s", code, prev)
			continue
		}
		seen[code] = b.name
	}
}

func (c Config) validateStyle(ws *Warnings) {
	s := c.Style
	if s.Alpha < 0 || s.Alpha > 1 {
		ws.Add("style.alpha", "%v is outside [0, 1]", s.Alpha)
	}
	if s.GridLineStyle != LineSolid && s.GridLineStyle != LineDashes {
		ws.Add("style.grid_line_style", "unknown line style %q (want line or dashes)", s.GridLineStyle)
	}
	if s.FontSizeBehavior != FontDynamic && s.FontSizeBehavior != FontFixed {
		ws.Add("style.font_size_behavior", "unknown behavior %q (want dynamic or fixed)", s.FontSizeBehavior)
	}
	if s.GridLineWidth < 1 {
		ws.Add("style.grid_line_width", "must be at least 1, got %d", s.GridLineWidth)
	}
	if s.HighlightWidth < 1 {
		ws.Add("style.highlight_width", "must be at least 1, got %d", s.HighlightWidth)
	}
	if s.FontFixedSize < 1 {
		ws.Add("style.font_fixed_size", "must be at least 1, got %d", s.FontFixedSize)
	}
	colors := []struct{ path, value string }{
		{"style.background", s.Background},
		{"style.grid_color", s.GridColor},
		{"style.highlight_color", s.HighlightColor},
		{"style.text_color", s.TextColor},
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			ws.Err(col.path, err)
		}
	}
}
