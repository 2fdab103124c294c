package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/dshills/gridmouse/internal/config/layer"
	"github.com/dshills/gridmouse/internal/config/loader"
)

// Options controls where Load reads from.
type Options struct {
	// Path is the config file. Empty means DefaultPath, which may be
	// missing; an explicit path must exist.
	Path string

	// FS reads the file. Default: the OS file system.
	FS loader.FileSystem

	// EnvPrefix is the environment variable prefix. Default: GRIDMOUSE_.
	EnvPrefix string

	// Environ lists the environment. Default: os.Environ.
	Environ func() []string

	// SkipEnv disables the environment layer.
	SkipEnv bool

	// Overrides are dotted path values from command-line flags.
	Overrides map[string]any
}

// Result is a loaded configuration and how it was assembled.
type Result struct {
	Config   Config
	Warnings Warnings

	// Path is the file that was read, empty when none was found.
	Path string

	// Layers holds the sources in merge order.
	Layers *layer.Stack
}

// Merged returns the merged map the Config was decoded from.
func (r *Result) Merged() map[string]any {
	return r.Layers.Merge()
}

// Load merges defaults, the config file, the environment and overrides,
// then decodes and validates the result. Validation problems become
// warnings; unreadable files and undecodable values are errors.
func Load(opts Options) (*Result, error) {
	fsys := opts.FS
	if fsys == nil {
		fsys = loader.DefaultFS()
	}
	path := opts.Path
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	stack := layer.NewStack(layer.New(layer.SourceDefaults, DefaultMap()))
	res := &Result{Layers: stack}

	fl, err := loader.NewFileLoaderWithFS(fsys, path)
	if err != nil {
		return nil, err
	}
	data, err := fl.Load()
	if err != nil {
		return nil, err
	}
	switch {
	case data != nil:
		l := layer.New(layer.SourceFile, data)
		l.Path = path
		stack.Put(l)
		res.Path = path
	case explicit:
		return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}

	if !opts.SkipEnv {
		environ := opts.Environ
		if environ == nil {
			environ = os.Environ
		}
		env, err := loader.NewEnvLoader(opts.EnvPrefix, knownPaths()).WithEnviron(environ).Load()
		if err != nil {
			return nil, err
		}
		if len(env) > 0 {
			stack.Put(layer.New(layer.SourceEnv, env))
		}
	}

	if len(opts.Overrides) > 0 {
		flags := make(map[string]any, len(opts.Overrides))
		for p, v := range opts.Overrides {
			layer.SetByPath(flags, p, v)
		}
		stack.Put(layer.New(layer.SourceFlags, flags))
	}

	cfg, unused, err := decode(stack.Merge())
	if err != nil {
		return nil, err
	}
	res.Config = cfg
	for _, key := range unused {
		origin, _ := stack.Origin(key)
		res.Warnings.Add(key, "unknown setting (from %s)", origin)
	}
	res.Warnings = append(res.Warnings, cfg.Validate()...)
	return res, nil
}

// knownPaths lists every dotted setting path.
func knownPaths() []string {
	flat := layer.FlattenMap(DefaultMap())
	paths := make([]string, 0, len(flat))
	for p := range flat {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// decode converts a merged map into Config and reports keys that match
// no field.
func decode(data map[string]any) (Config, []string, error) {
	var cfg Config
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		TagName:          "toml",
		WeaklyTypedInput: true,
		Metadata:         &md,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return Config{}, nil, fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}
	if err := dec.Decode(data); err != nil {
		return Config{}, nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	sort.Strings(md.Unused)
	return cfg, md.Unused, nil
}
