package loader

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memFS is an in-memory file system for testing.
type memFS map[string]string

func (m memFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(data), nil
}

func (m memFS) Stat(path string) (fs.FileInfo, error) {
	return nil, fs.ErrNotExist
}

func TestParserFor(t *testing.T) {
	tests := []struct {
		path    string
		want    Parser
		wantErr bool
	}{
		{"config.toml", TOMLParser{}, false},
		{"config.TOML", TOMLParser{}, false},
		{"config.yaml", YAMLParser{}, false},
		{"config.yml", YAMLParser{}, false},
		{"config.json", nil, true},
		{"config", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			p, err := ParserFor(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
		})
	}
}

func TestFileLoaderTOML(t *testing.T) {
	fsys := memFS{"/c.toml": `
[grid.coarse]
cols = 10
first_sets = ["AB", "CD"]

[timing]
click_settle = "80ms"
`}
	l, err := NewFileLoaderWithFS(fsys, "/c.toml")
	require.NoError(t, err)

	data, err := l.Load()
	require.NoError(t, err)

	grid := data["grid"].(map[string]any)
	coarse := grid["coarse"].(map[string]any)
	assert.Equal(t, int64(10), coarse["cols"])
	assert.Equal(t, []any{"AB", "CD"}, coarse["first_sets"])
	assert.Equal(t, "80ms", data["timing"].(map[string]any)["click_settle"])
}

func TestFileLoaderYAML(t *testing.T) {
	fsys := memFS{"/c.yaml": `
keys:
  overlay_toggle: ralt
style:
  alpha: 0.6
`}
	l, err := NewFileLoaderWithFS(fsys, "/c.yaml")
	require.NoError(t, err)

	data, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, "ralt", data["keys"].(map[string]any)["overlay_toggle"])
	assert.Equal(t, 0.6, data["style"].(map[string]any)["alpha"])
}

func TestFileLoaderMissing(t *testing.T) {
	l, err := NewFileLoaderWithFS(memFS{}, "/missing.toml")
	require.NoError(t, err)

	data, err := l.Load()
	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestTOMLParseErrorPosition(t *testing.T) {
	_, err := TOMLParser{}.Parse("bad.toml", []byte("[grid]\ncols = = 3\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.toml", perr.Path)
	assert.Equal(t, 2, perr.Line)
	assert.Contains(t, perr.Error(), "line 2")
}

func TestYAMLParseError(t *testing.T) {
	_, err := YAMLParser{}.Parse("bad.yaml", []byte("keys:\n  a: [1, 2\n"))
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "bad.yaml", perr.Path)
}

func TestParseErrorFormat(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a", Line: 2, Column: 3, Message: "m"}, "parse error in a at line 2, column 3: m"},
		{&ParseError{Path: "a", Line: 2, Message: "m"}, "parse error in a at line 2: m"},
		{&ParseError{Path: "a", Message: "m"}, "parse error in a: m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}

func TestEnvLoader(t *testing.T) {
	env := []string{
		"GRIDMOUSE_LOG_LEVEL=debug",
		"GRIDMOUSE_FREE_MODE_MOVE_STEP=30",
		"GRIDMOUSE_FREE_MODE_UP=1",
		"GRIDMOUSE_TIMING_CLICK_SETTLE=70ms",
		"GRIDMOUSE_FREE_MODE_ENABLED=off",
		"GRIDMOUSE_GRID_FINE_ROWS_KEYS=[\"AB\",\"CD\"]",
		"GRIDMOUSE_CUSTOM_THING=x",
		"OTHER_VAR=ignored",
	}
	l := NewEnvLoader("", []string{
		"log.level",
		"free_mode.move_step",
		"free_mode.up",
		"free_mode.enabled",
		"timing.click_settle",
		"grid.fine.rows_keys",
	}).WithEnviron(func() []string { return env })

	data, err := l.Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", data["log"].(map[string]any)["level"])
	free := data["free_mode"].(map[string]any)
	assert.Equal(t, int64(30), free["move_step"])
	assert.Equal(t, int64(1), free["up"])
	assert.Equal(t, false, free["enabled"])
	assert.Equal(t, 70*time.Millisecond, data["timing"].(map[string]any)["click_settle"])
	fine := data["grid"].(map[string]any)["fine"].(map[string]any)
	assert.Equal(t, []any{"AB", "CD"}, fine["rows_keys"])
	assert.Equal(t, "x", data["custom"].(map[string]any)["thing"])
	assert.NotContains(t, data, "other")
}

func TestPathToEnv(t *testing.T) {
	l := NewEnvLoader("GM_", nil)
	assert.Equal(t, "GM_GRID_COARSE_COLS", l.PathToEnv("grid.coarse.cols"))
	assert.Equal(t, "GM_FREE_MODE_SCROLL_UP", l.PathToEnv("free_mode.scroll_up"))
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"true", true},
		{"No", false},
		{"0", int64(0)},
		{"1.5", 1.5},
		{"250ms", 250 * time.Millisecond},
		{"[1,2]", []any{float64(1), float64(2)}},
		{"lime", "lime"},
		{"`", "`"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseValue(tt.in), "input %q", tt.in)
	}
}
