package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dshills/gridmouse/internal/config"
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gridmouse",
		Short: "Keyboard driven mouse grid",
		Long: `gridmouse moves and clicks the mouse from the keyboard.

Tap the toggle key to show a grid over the screen, type the two
characters of a cell to zoom into it, then type one character of the
fine grid to click there. Hold shift for a right click.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOverlay(cmd, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Path to config file (TOML or YAML)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format (text, json)")

	cmd.AddCommand(
		newRunCmd(opts),
		newSimulateCmd(opts),
		newKeymapCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// overrides turns the persistent flags into config paths.
func (o *rootOptions) overrides() map[string]any {
	ov := make(map[string]any)
	if o.verbose {
		ov["log.level"] = "debug"
	}
	if o.logFormat != "" {
		ov["log.format"] = o.logFormat
	}
	return ov
}

// load reads the layered configuration. extra adds command specific
// overrides on top of the persistent flags.
func (o *rootOptions) load(extra map[string]any) (*config.Result, error) {
	ov := o.overrides()
	for k, v := range extra {
		ov[k] = v
	}
	res, err := config.Load(config.Options{Path: o.configPath, Overrides: ov})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return res, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gridmouse",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gridmouse %s\n", version)
			fmt.Fprintf(out, "  Commit:    %s\n", commit)
			fmt.Fprintf(out, "  Built:     %s\n", date)
			fmt.Fprintf(out, "  Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
