package config

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates an explicitly named config file is missing.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnknownColor indicates a color that is neither hex nor a known name.
	ErrUnknownColor = errors.New("unknown color")

	// ErrDecode indicates the merged configuration does not fit Config.
	ErrDecode = errors.New("invalid configuration value")
)

// Warning is a configuration problem that does not stop startup.
type Warning struct {
	// Path is the dotted setting path, or empty for whole-file issues.
	Path    string
	Message string
}

func (w Warning) String() string {
	if w.Path == "" {
		return w.Message
	}
	return w.Path + ": " + w.Message
}

// Warnings collects configuration problems.
type Warnings []Warning

// Add appends a formatted warning.
func (ws *Warnings) Add(path, format string, args ...any) {
	*ws = append(*ws, Warning{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Err appends err as a warning for path, splitting joined errors.
func (ws *Warnings) Err(path string, err error) {
	if err == nil {
		return
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			ws.Err(path, e)
		}
		return
	}
	*ws = append(*ws, Warning{Path: path, Message: err.Error()})
}

// Has reports whether any warning concerns path or a key below it.
func (ws Warnings) Has(path string) bool {
	for _, w := range ws {
		if w.Path == path || strings.HasPrefix(w.Path, path+".") {
			return true
		}
	}
	return false
}

// Strings renders each warning.
func (ws Warnings) Strings() []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}
