package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/gridmouse/internal/app"
	"github.com/dshills/gridmouse/internal/config"
	"github.com/dshills/gridmouse/internal/feedback"
	"github.com/dshills/gridmouse/internal/platform"
	"github.com/dshills/gridmouse/internal/platform/hook"
	"github.com/dshills/gridmouse/internal/platform/robot"
	"github.com/dshills/gridmouse/internal/platform/termkeys"
	"github.com/dshills/gridmouse/internal/renderer"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Listen for the toggle key and drive the real pointer",
		Long: `Run installs a system-wide keyboard hook, draws the grid in the
terminal and moves and clicks the real mouse pointer. This is the
default when gridmouse is started without a command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlay(cmd, opts)
		},
	}
}

func runOverlay(cmd *cobra.Command, opts *rootOptions) error {
	res, err := opts.load(nil)
	if err != nil {
		return err
	}
	closer, err := setupLogging(cmd, res)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen := robot.New()
	bounds := platform.Bounds(screen, app.NewLogger("platform"))
	surface, err := renderer.NewTerminal(bounds,
		renderer.WithStyle(app.StyleFrom(res.Config.Style)),
		renderer.WithLogger(app.NewLogger("renderer")),
	)
	if err != nil {
		return err
	}

	return serve(ctx, opts, res, nil, app.Options{
		Keys:     hook.New(hook.WithLogger(app.NewLogger("input"))),
		Injector: screen,
		Surface:  surface,
		Screen:   screen,
	})
}

func newSimulateCmd(opts *rootOptions) *cobra.Command {
	var (
		size   string
		toggle string
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Dry run in the terminal without touching the pointer",
		Long: `Simulate reads keys from the terminal instead of a system-wide hook
and logs pointer actions instead of performing them. Terminals do not
report a bare alt tap, so the overlay toggle defaults to tab here.
Press Ctrl+C to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := parseScreen(size)
			if err != nil {
				return err
			}
			var extra map[string]any
			if toggle != "" {
				extra = map[string]any{"keys.overlay_toggle": toggle}
			}
			return simulate(cmd, opts, screen, extra)
		},
	}
	cmd.Flags().StringVar(&size, "screen", "1920x1080", "Simulated screen size in pixels (WxH)")
	cmd.Flags().StringVar(&toggle, "toggle", "tab", "Overlay toggle key, empty to use the configured key")
	return cmd
}

func simulate(cmd *cobra.Command, opts *rootOptions, screen platform.FixedScreen, extra map[string]any) error {
	res, err := opts.load(extra)
	if err != nil {
		return err
	}
	closer, err := setupLogging(cmd, res)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := termkeys.New(
		termkeys.WithInterrupt(cancel),
		termkeys.WithLogger(app.NewLogger("input")),
	)
	surface, err := renderer.NewTerminal(platform.Bounds(screen, nil),
		renderer.WithStyle(app.StyleFrom(res.Config.Style)),
		renderer.WithLogger(app.NewLogger("renderer")),
		renderer.WithKeyHandler(keys.Feed),
	)
	if err != nil {
		return err
	}

	return serve(ctx, opts, res, extra, app.Options{
		Keys:     keys,
		Injector: platform.NewLogInjector(app.NewLogger("platform")),
		Surface:  surface,
		Screen:   screen,
	})
}

// serve completes ao from the loaded configuration and runs the
// application until ctx is done or the key source closes.
func serve(ctx context.Context, opts *rootOptions, res *config.Result, extra map[string]any, ao app.Options) error {
	ao.Config = res.Config
	ao.ConfigPath = res.Path
	ao.Reload = func() (*config.Result, error) {
		return opts.load(extra)
	}
	ao.Feedback = feedback.New(feedback.Options{
		Enabled: res.Config.Feedback.Sound,
		Volume:  res.Config.Feedback.Volume,
		Log:     app.NewLogger("feedback"),
	})
	ao.Log = app.NewLogger("app")

	a, err := app.New(ao)
	if err != nil {
		_ = ao.Surface.Close()
		ao.Feedback.Close()
		return err
	}
	return a.Run(ctx)
}

// setupLogging configures the component loggers for a command that owns
// the terminal and reports configuration warnings.
func setupLogging(cmd *cobra.Command, res *config.Result) (io.Closer, error) {
	closer, err := app.ConfigureLogging(app.LogOptions{
		LogConfig:     res.Config.Log,
		TerminalOwned: true,
		Stderr:        cmd.ErrOrStderr(),
		// GRIDMOUSE_LOG_LEVEL is already merged into res.Config.Log.
		Getenv: func(string) string { return "" },
	})
	if err != nil {
		return nil, err
	}
	log := app.NewLogger("config")
	if res.Path != "" {
		log.WithField("path", res.Path).Info("configuration loaded")
	}
	for _, w := range res.Warnings {
		log.WithField("setting", w.Path).Warn(w.Message)
	}
	return closer, nil
}

// parseScreen parses a WxH pixel size.
func parseScreen(s string) (platform.FixedScreen, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return platform.FixedScreen{}, fmt.Errorf("screen size %q: want WIDTHxHEIGHT", s)
	}
	w, werr := strconv.Atoi(strings.TrimSpace(ws))
	h, herr := strconv.Atoi(strings.TrimSpace(hs))
	if werr != nil || herr != nil || w <= 0 || h <= 0 {
		return platform.FixedScreen{}, fmt.Errorf("screen size %q: want positive WIDTHxHEIGHT", s)
	}
	return platform.FixedScreen{Width: w, Height: h}, nil
}
