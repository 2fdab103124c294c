package config

import (
	"encoding/json"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridmouse/internal/config/layer"
	"github.com/dshills/gridmouse/internal/config/loader"
	"github.com/dshills/gridmouse/internal/input/key"
	"github.com/dshills/gridmouse/internal/input/keymap"
)

type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(string) (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}

func noEnv() []string { return nil }

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 25, cfg.Grid.Coarse.Cols)
	assert.Equal(t, 36, cfg.Grid.Coarse.Rows)
	assert.Len(t, cfg.Grid.Coarse.FirstSets, 6)
	assert.Equal(t, []string{"QWERUIOP", "ASDFJKL;", "ZXCVNM,."}, cfg.Grid.Fine.RowsKeys)
	assert.Equal(t, "alt", cfg.Keys.OverlayToggle)
	assert.Equal(t, "`", cfg.Keys.FreeModeToggle)
	assert.Equal(t, 350*time.Millisecond, cfg.Timing.DoubleClickInterval)
	assert.Equal(t, 10*time.Millisecond, cfg.Timing.ToggleMinTap)
	assert.Equal(t, 700*time.Millisecond, cfg.Timing.ToggleMaxTap)
	assert.Equal(t, 50*time.Millisecond, cfg.Timing.ClickSettle)
	assert.True(t, cfg.FreeMode.Enabled)
	assert.Equal(t, 20, cfg.FreeMode.MoveStep)
	assert.Equal(t, ",", cfg.FreeMode.ScrollDown)
	assert.Equal(t, 0.4, cfg.Style.Alpha)
	assert.Equal(t, "lime", cfg.Style.HighlightColor)
	assert.False(t, cfg.Feedback.Sound)
	assert.Equal(t, "info", cfg.Log.Level)

	assert.Empty(t, cfg.Validate())
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "gridmouse", "config.toml"), DefaultPath())
}

func TestLoadDefaultsOnly(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	res, err := Load(Options{FS: memFS{}, Environ: noEnv})
	require.NoError(t, err)
	assert.Empty(t, res.Path)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, Default(), res.Config)
	assert.Len(t, res.Layers.Layers(), 1)
}

func TestLoadExplicitMissing(t *testing.T) {
	_, err := Load(Options{Path: "/nope.toml", FS: memFS{}, Environ: noEnv})
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := Load(Options{Path: "/c.ini", FS: memFS{"/c.ini": ""}, Environ: noEnv})
	assert.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}

func TestLoadParseError(t *testing.T) {
	_, err := Load(Options{Path: "/c.toml", FS: memFS{"/c.toml": "[timing\n"}, Environ: noEnv})
	var perr *loader.ParseError
	assert.ErrorAs(t, err, &perr)
}

func TestLoadDecodeError(t *testing.T) {
	_, err := Load(Options{
		Path:    "/c.toml",
		FS:      memFS{"/c.toml": "[timing]\nclick_settle = \"soon\"\n"},
		Environ: noEnv,
	})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestLoadPrecedence(t *testing.T) {
	fsys := memFS{"/c.toml": `
[keys]
overlay_toggle = "ralt"

[timing]
click_settle = "80ms"

[free_mode]
move_step = 5

[log]
level = "warn"
`}
	env := func() []string {
		return []string{"GRIDMOUSE_FREE_MODE_MOVE_STEP=7", "GRIDMOUSE_LOG_LEVEL=debug"}
	}
	res, err := Load(Options{
		Path:      "/c.toml",
		FS:        fsys,
		Environ:   env,
		Overrides: map[string]any{"log.level": "error"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/c.toml", res.Path)
	assert.Equal(t, "ralt", res.Config.Keys.OverlayToggle)
	assert.Equal(t, 80*time.Millisecond, res.Config.Timing.ClickSettle)
	assert.Equal(t, 7, res.Config.FreeMode.MoveStep)
	assert.Equal(t, "error", res.Config.Log.Level)
	assert.Equal(t, 36, res.Config.Grid.Coarse.Rows)

	src, ok := res.Layers.Origin("free_mode.move_step")
	require.True(t, ok)
	assert.Equal(t, layer.SourceEnv, src)
	src, _ = res.Layers.Origin("keys.overlay_toggle")
	assert.Equal(t, layer.SourceFile, src)

	merged := res.Merged()
	v, _ := layer.GetByPath(merged, "log.level")
	assert.Equal(t, "error", v)
}

func TestLoadYAML(t *testing.T) {
	fsys := memFS{"/c.yaml": "grid:\n  fine:\n    rows_keys: [\"QWERUIOP\", \"ASDFJKL;\", \"ZXCVNM,.\"]\nstyle:\n  alpha: 0.7\n"}
	res, err := Load(Options{Path: "/c.yaml", FS: fsys, SkipEnv: true})
	require.NoError(t, err)
	assert.Equal(t, 0.7, res.Config.Style.Alpha)
	assert.Empty(t, res.Warnings)
}

func TestLoadUnknownKeyWarns(t *testing.T) {
	fsys := memFS{"/c.toml": "[style]\ncolour = \"red\"\n"}
	res, err := Load(Options{Path: "/c.toml", FS: fsys, Environ: noEnv})
	require.NoError(t, err)
	require.True(t, res.Warnings.Has("style.colour"))
	assert.Contains(t, res.Warnings.Strings()[0], "from file")
}

func TestValidateWarnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		path   string
	}{
		{"alpha high", func(c *Config) { c.Style.Alpha = 1.5 }, "style.alpha"},
		{"alpha negative", func(c *Config) { c.Style.Alpha = -0.1 }, "style.alpha"},
		{"line style", func(c *Config) { c.Style.GridLineStyle = "dotted" }, "style.grid_line_style"},
		{"font behavior", func(c *Config) { c.Style.FontSizeBehavior = "huge" }, "style.font_size_behavior"},
		{"line width", func(c *Config) { c.Style.GridLineWidth = 0 }, "style.grid_line_width"},
		{"unknown color", func(c *Config) { c.Style.GridColor = "blurple" }, "style.grid_color"},
		{"bad hex", func(c *Config) { c.Style.TextColor = "#zzz" }, "style.text_color"},
		{"double click short", func(c *Config) { c.Timing.DoubleClickInterval = 50 * time.Millisecond }, "timing.double_click_interval"},
		{"double click long", func(c *Config) { c.Timing.DoubleClickInterval = 2 * time.Second }, "timing.double_click_interval"},
		{"tap window", func(c *Config) { c.Timing.ToggleMinTap = time.Second }, "timing.toggle_max_tap"},
		{"settle", func(c *Config) { c.Timing.ClickSettle = -time.Millisecond }, "timing.click_settle"},
		{"empty binding", func(c *Config) { c.FreeMode.Up = "" }, "free_mode.up"},
		{"duplicate binding", func(c *Config) { c.FreeMode.Down = "I" }, "free_mode.down"},
		{"unknown key name", func(c *Config) { c.FreeMode.Left = "hyperkey" }, "free_mode.left"},
		{"move step", func(c *Config) { c.FreeMode.MoveStep = 0 }, "free_mode.move_step"},
		{"toggles equal", func(c *Config) { c.Keys.FreeModeToggle = "lalt" }, "keys.free_mode_toggle"},
		{"bad overlay key", func(c *Config) { c.Keys.OverlayToggle = "" }, "keys.overlay_toggle"},
		{"volume", func(c *Config) { c.Feedback.Volume = 2 }, "feedback.volume"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"coarse incomplete", func(c *Config) { c.Grid.Coarse.Rows = 40 }, "grid.coarse"},
		{"fine collision", func(c *Config) { c.Grid.Fine.RowsKeys[1] = "QSDFJKL;" }, "grid.fine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			ws := cfg.Validate()
			assert.True(t, ws.Has(tt.path), "warnings: %v", ws.Strings())
		})
	}
}

func TestValidateSkipsDisabledFreeMode(t *testing.T) {
	cfg := Default()
	cfg.FreeMode.Enabled = false
	cfg.FreeMode.Up = ""
	cfg.Keys.FreeModeToggle = "alt"
	assert.Empty(t, cfg.Validate())
}

func TestKeymapsFromConfig(t *testing.T) {
	cfg := Default()
	set, err := cfg.Keymaps()
	require.NoError(t, err)
	assert.Equal(t, 25*36, set.Coarse.Len())

	cfg.Grid.Fine.RowsKeys = []string{"QWERUIOP", "ASDFJKL;"}
	fine, err := cfg.FineMap()
	assert.ErrorIs(t, err, keymap.ErrIncomplete)
	assert.NotNil(t, fine)
}

func TestInputConversion(t *testing.T) {
	cfg := Default()
	cfg.Keys.OverlayToggle = "ralt"
	cfg.Timing.DoubleClickInterval = 200 * time.Millisecond
	cfg.FreeMode.Up = "w"
	cfg.FreeMode.Down = "???"

	in := cfg.Input()
	assert.Equal(t, key.Code{Key: key.KeyAltRight}, in.OverlayToggle)
	assert.Equal(t, key.MustParse("`"), in.FreeModeToggle)
	assert.Equal(t, 200*time.Millisecond, in.DoubleClickInterval)
	assert.Equal(t, 10*time.Millisecond, in.MinTap)
	assert.Equal(t, 700*time.Millisecond, in.MaxTap)
	assert.Equal(t, key.MustParse("W"), in.FreeBindings.Up)
	assert.True(t, in.FreeBindings.Down.IsZero())
	assert.Equal(t, key.MustParse(","), in.FreeBindings.ScrollDown)
	assert.True(t, in.FreeModeEnabled)
	assert.Equal(t, 100, in.ScrollStep)
}

func TestInputConversionKeepsTapDefaults(t *testing.T) {
	cfg := Default()
	cfg.Timing.ToggleMinTap = time.Second

	in := cfg.Input()
	assert.Equal(t, 10*time.Millisecond, in.MinTap)
	assert.Equal(t, 700*time.Millisecond, in.MaxTap)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("lime")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", c.Hex())

	c, err = ParseColor("#FF0000")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000", c.Hex())

	c, err = ParseColor(" White ")
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", c.Hex())

	_, err = ParseColor("blurple")
	assert.ErrorIs(t, err, ErrUnknownColor)

	def := colorful.Color{R: 1}
	assert.Equal(t, def, MustColor("nope", def))
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "gridmouse configuration", doc["title"])

	props := doc["properties"].(map[string]any)
	for _, section := range []string{"grid", "keys", "timing", "free_mode", "style", "feedback", "log"} {
		assert.Contains(t, props, section)
	}
	timing := props["timing"].(map[string]any)["properties"].(map[string]any)
	assert.Equal(t, "string", timing["click_settle"].(map[string]any)["type"])
}

func TestSchemaValidator(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	ws, err := v.Validate(DefaultMap())
	require.NoError(t, err)
	assert.Empty(t, ws)

	bad := map[string]any{
		"style":  map[string]any{"alpha": 3.0, "grid_line_style": "dotted"},
		"timing": map[string]any{"click_settle": "later"},
		"extra":  true,
	}
	ws, err = v.Validate(bad)
	require.NoError(t, err)
	assert.True(t, ws.Has("style.alpha"), "warnings: %v", ws.Strings())
	assert.True(t, ws.Has("style.grid_line_style"), "warnings: %v", ws.Strings())
	assert.True(t, ws.Has("timing.click_settle"), "warnings: %v", ws.Strings())
}

func TestWarnings(t *testing.T) {
	var ws Warnings
	ws.Add("a.b", "bad %d", 1)
	ws.Add("", "whole file")
	ws.Err("c", nil)

	assert.Len(t, ws, 2)
	assert.True(t, ws.Has("a"))
	assert.True(t, ws.Has("a.b"))
	assert.False(t, ws.Has("a.c"))
	assert.Equal(t, []string{"a.b: bad 1", "whole file"}, ws.Strings())
}
