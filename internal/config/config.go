package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config is the decoded gridmouse configuration.
type Config struct {
	Grid     GridConfig     `toml:"grid" yaml:"grid" jsonschema:"description=Coarse and fine grid layout"`
	Keys     KeysConfig     `toml:"keys" yaml:"keys"`
	Timing   TimingConfig   `toml:"timing" yaml:"timing"`
	FreeMode FreeModeConfig `toml:"free_mode" yaml:"free_mode"`
	Style    StyleConfig    `toml:"style" yaml:"style"`
	Feedback FeedbackConfig `toml:"feedback" yaml:"feedback"`
	Log      LogConfig      `toml:"log" yaml:"log"`
}

// GridConfig holds both grid layouts.
type GridConfig struct {
	Coarse CoarseConfig `toml:"coarse" yaml:"coarse"`
	Fine   FineConfig   `toml:"fine" yaml:"fine"`
}

// CoarseConfig describes the two-character coarse grid.
type CoarseConfig struct {
	Cols       int      `toml:"cols" yaml:"cols" jsonschema:"minimum=1"`
	Rows       int      `toml:"rows" yaml:"rows" jsonschema:"minimum=1"`
	FirstSets  []string `toml:"first_sets" yaml:"first_sets" jsonschema:"description=First combo character sets; one per column block"`
	SecondSets []string `toml:"second_sets" yaml:"second_sets" jsonschema:"description=Second combo character sets; one per row"`
}

// FineConfig describes the one-character fine grid.
type FineConfig struct {
	Cols     int      `toml:"cols" yaml:"cols" jsonschema:"minimum=1"`
	Rows     int      `toml:"rows" yaml:"rows" jsonschema:"minimum=1"`
	RowsKeys []string `toml:"rows_keys" yaml:"rows_keys" jsonschema:"description=One string of cell keys per row"`
}

// KeysConfig names the toggle keys.
type KeysConfig struct {
	OverlayToggle  string `toml:"overlay_toggle" yaml:"overlay_toggle" jsonschema:"description=Key whose tap shows or hides the grid"`
	FreeModeToggle string `toml:"free_mode_toggle" yaml:"free_mode_toggle"`
}

// TimingConfig holds the input timing windows.
type TimingConfig struct {
	DoubleClickInterval time.Duration `toml:"double_click_interval" yaml:"double_click_interval"`
	ToggleMinTap        time.Duration `toml:"toggle_min_tap" yaml:"toggle_min_tap"`
	ToggleMaxTap        time.Duration `toml:"toggle_max_tap" yaml:"toggle_max_tap"`
	ClickSettle         time.Duration `toml:"click_settle" yaml:"click_settle" jsonschema:"description=Pause between hiding the overlay and clicking"`
}

// FreeModeConfig configures pointer nudging and scrolling.
type FreeModeConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	MoveStep    int    `toml:"move_step" yaml:"move_step" jsonschema:"minimum=1"`
	ScrollStep  int    `toml:"scroll_step" yaml:"scroll_step" jsonschema:"minimum=1"`
	Up          string `toml:"up" yaml:"up"`
	Down        string `toml:"down" yaml:"down"`
	Left        string `toml:"left" yaml:"left"`
	Right       string `toml:"right" yaml:"right"`
	ScrollUp    string `toml:"scroll_up" yaml:"scroll_up"`
	ScrollDown  string `toml:"scroll_down" yaml:"scroll_down"`
	ScrollLeft  string `toml:"scroll_left" yaml:"scroll_left"`
	ScrollRight string `toml:"scroll_right" yaml:"scroll_right"`
}

// StyleConfig controls how the overlay is drawn.
type StyleConfig struct {
	Alpha            float64 `toml:"alpha" yaml:"alpha" jsonschema:"minimum=0,maximum=1"`
	Background       string  `toml:"background" yaml:"background"`
	GridColor        string  `toml:"grid_color" yaml:"grid_color"`
	GridLineWidth    int     `toml:"grid_line_width" yaml:"grid_line_width" jsonschema:"minimum=1"`
	GridLineStyle    string  `toml:"grid_line_style" yaml:"grid_line_style" jsonschema:"enum=line,enum=dashes"`
	HighlightColor   string  `toml:"highlight_color" yaml:"highlight_color"`
	HighlightWidth   int     `toml:"highlight_width" yaml:"highlight_width" jsonschema:"minimum=1"`
	TextColor        string  `toml:"text_color" yaml:"text_color"`
	FontFamily       string  `toml:"font_family" yaml:"font_family"`
	FontSizeBehavior string  `toml:"font_size_behavior" yaml:"font_size_behavior" jsonschema:"enum=dynamic,enum=fixed"`
	FontFixedSize    int     `toml:"font_fixed_size" yaml:"font_fixed_size" jsonschema:"minimum=1"`
	FontWeight       string  `toml:"font_weight" yaml:"font_weight"`
}

// FeedbackConfig controls audible feedback.
type FeedbackConfig struct {
	Sound  bool    `toml:"sound" yaml:"sound"`
	Volume float64 `toml:"volume" yaml:"volume" jsonschema:"minimum=0,maximum=1"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `toml:"format" yaml:"format" jsonschema:"enum=text,enum=json"`
	File   string `toml:"file" yaml:"file"`
}

// Enumerated style and log values.
const (
	LineSolid   = "line"
	LineDashes  = "dashes"
	FontDynamic = "dynamic"
	FontFixed   = "fixed"
	FormatText  = "text"
	FormatJSON  = "json"
)

// DefaultMap returns the built-in defaults as a fresh nested map, in the
// same shape a config file produces.
func DefaultMap() map[string]any {
	sets := func() []any {
		return []any{"QWERT", "ASDFG", "ZXCVB", "YUIOP", "HJKL;", "NM,./"}
	}
	return map[string]any{
		"grid": map[string]any{
			"coarse": map[string]any{
				"cols":        int64(25),
				"rows":        int64(36),
				"first_sets":  sets(),
				"second_sets": sets(),
			},
			"fine": map[string]any{
				"cols":      int64(8),
				"rows":      int64(3),
				"rows_keys": []any{"QWERUIOP", "ASDFJKL;", "ZXCVNM,."},
			},
		},
		"keys": map[string]any{
			"overlay_toggle":   "alt",
			"free_mode_toggle": "`",
		},
		"timing": map[string]any{
			"double_click_interval": "350ms",
			"toggle_min_tap":        "10ms",
			"toggle_max_tap":        "700ms",
			"click_settle":          "50ms",
		},
		"free_mode": map[string]any{
			"enabled":      true,
			"move_step":    int64(20),
			"scroll_step":  int64(100),
			"up":           "i",
			"down":         "k",
			"left":         "j",
			"right":        "l",
			"scroll_up":    "m",
			"scroll_down":  ",",
			"scroll_left":  "b",
			"scroll_right": "n",
		},
		"style": map[string]any{
			"alpha":              0.4,
			"background":         "black",
			"grid_color":         "white",
			"grid_line_width":    int64(1),
			"grid_line_style":    LineSolid,
			"highlight_color":    "lime",
			"highlight_width":    int64(3),
			"text_color":         "white",
			"font_family":        "Consolas",
			"font_size_behavior": FontDynamic,
			"font_fixed_size":    int64(10),
			"font_weight":        "normal",
		},
		"feedback": map[string]any{
			"sound":  false,
			"volume": 0.5,
		},
		"log": map[string]any{
			"level":  "info",
			"format": FormatText,
			"file":   "",
		},
	}
}

// Default returns the decoded built-in defaults.
func Default() Config {
	cfg, _, err := decode(DefaultMap())
	if err != nil {
		panic("config: defaults do not decode: " + err.Error())
	}
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/gridmouse/config.toml, falling
// back to the OS user config directory.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return filepath.Join(".config", "gridmouse", "config.toml")
		}
	}
	return filepath.Join(dir, "gridmouse", "config.toml")
}
