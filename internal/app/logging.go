package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/config"
)

// LogLevelEnv overrides the configured log level.
const LogLevelEnv = "GRIDMOUSE_LOG_LEVEL"

var (
	root      = newRoot()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

func newRoot() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	return l
}

// NewLogger returns the logger for a component. Entries share one
// underlying logger, so ConfigureLogging affects loggers created before
// and after it.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if entry, ok := loggers[component]; ok {
		return entry
	}
	entry := root.WithField("component", component)
	loggers[component] = entry
	return entry
}

// LogOptions configures ConfigureLogging.
type LogOptions struct {
	config.LogConfig

	// TerminalOwned is set when a full-screen surface draws on the
	// terminal. Logs then go to a file instead of a terminal stderr.
	TerminalOwned bool

	// Stderr is the fallback output. Default: os.Stderr.
	Stderr io.Writer

	// Getenv reads the environment. Default: os.Getenv.
	Getenv func(string) string
}

// ConfigureLogging applies level, format and output to every component
// logger. The returned closer releases the log file, if any.
func ConfigureLogging(opts LogOptions) (io.Closer, error) {
	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	levelStr := "info"
	if v := getenv(LogLevelEnv); v != "" {
		levelStr = v
	} else if opts.Level != "" {
		levelStr = opts.Level
	}
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}
	root.SetLevel(level)

	var (
		out    io.Writer = stderr
		closer io.Closer = nopCloser{}
	)
	path := opts.File
	if path == "" && opts.TerminalOwned && isTerminal(stderr) {
		path = defaultLogFile()
	}
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}
	root.SetOutput(out)

	switch opts.Format {
	case config.FormatJSON:
		root.SetFormatter(&logrus.JSONFormatter{})
	default:
		root.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: !isTerminal(out),
		})
	}
	return closer, nil
}

// defaultLogFile is gridmouse.log in the user cache directory.
func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "gridmouse", "gridmouse.log")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
