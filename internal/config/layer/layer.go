// Package layer merges configuration sources by priority.
//
// Each source becomes a Layer holding a nested map. Higher priority
// layers override lower ones key by key; nested tables merge recursively.
package layer

import "time"

// Source indicates where a configuration layer came from.
type Source uint8

const (
	// SourceDefaults represents built-in default configuration.
	SourceDefaults Source = iota
	// SourceFile represents the user's TOML or YAML file.
	SourceFile
	// SourceEnv represents GRIDMOUSE_* environment variables.
	SourceEnv
	// SourceFlags represents command-line overrides.
	SourceFlags
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceDefaults:
		return "defaults"
	case SourceFile:
		return "file"
	case SourceEnv:
		return "environment"
	case SourceFlags:
		return "flags"
	default:
		return "unknown"
	}
}

// Priority returns the merge order of the source.
func (s Source) Priority() int {
	return int(s) * 100
}

// Layer represents a single configuration layer.
type Layer struct {
	Source Source

	// Path is the file path (if loaded from file).
	Path string

	// Data holds the configuration values as a nested map.
	Data map[string]any

	// LoadedAt is when the layer was read.
	LoadedAt time.Time
}

// New creates a layer holding data.
func New(source Source, data map[string]any) *Layer {
	if data == nil {
		data = make(map[string]any)
	}
	return &Layer{
		Source:   source,
		Data:     data,
		LoadedAt: time.Now(),
	}
}

// Clone creates a deep copy of the layer.
func (l *Layer) Clone() *Layer {
	return &Layer{
		Source:   l.Source,
		Path:     l.Path,
		Data:     Clone(l.Data),
		LoadedAt: l.LoadedAt,
	}
}
