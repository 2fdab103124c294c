package loader

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultEnvPrefix is the prefix of the environment variables read by
// NewEnvLoader when no prefix is given.
const DefaultEnvPrefix = "GRIDMOUSE_"

// EnvLoader loads configuration from environment variables.
//
// Known dotted paths map to upper-case names joined by underscores:
// free_mode.move_step is GRIDMOUSE_FREE_MODE_MOVE_STEP. Any other prefixed
// variable is split at its first underscore into section and key.
type EnvLoader struct {
	prefix  string
	mapping map[string]string // env var -> config path
	environ func() []string
}

// NewEnvLoader creates a loader for prefix that knows the given paths.
func NewEnvLoader(prefix string, paths []string) *EnvLoader {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	l := &EnvLoader{
		prefix:  prefix,
		mapping: make(map[string]string, len(paths)),
		environ: os.Environ,
	}
	for _, p := range paths {
		l.mapping[l.PathToEnv(p)] = p
	}
	return l
}

// WithEnviron replaces the environment source.
func (l *EnvLoader) WithEnviron(environ func() []string) *EnvLoader {
	l.environ = environ
	return l
}

// PathToEnv returns the variable name for a dotted config path.
func (l *EnvLoader) PathToEnv(path string) string {
	return l.prefix + strings.ToUpper(strings.ReplaceAll(path, ".", "_"))
}

// Load reads prefixed environment variables into a nested map. Empty
// values are treated as set.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)
	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		path, known := l.mapping[name]
		if !known {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		setByPath(config, path, parseValue(value))
	}
	return config, nil
}

// envToPath converts GRIDMOUSE_SECTION_SOME_KEY to section.some_key.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, rest, ok := strings.Cut(name, "_")
	if !ok {
		return name
	}
	return section + "." + rest
}

// parseValue attempts to parse the string value into an appropriate type.
// Numbers stay numbers so "1" can still bind a key name.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	if strings.HasPrefix(s, "[") || strings.HasPrefix(s, "{") {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err == nil {
			return v
		}
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}
	current[parts[len(parts)-1]] = value
}
