package main

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/gridmouse/internal/config"
	"github.com/dshills/gridmouse/internal/config/loader"
)

// errInvalidConfig is returned by config validate when problems were found.
var errInvalidConfig = errors.New("invalid configuration")

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(
		newConfigSchemaCmd(),
		newConfigShowCmd(opts),
		newConfigValidateCmd(opts),
	)
	return cmd
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.GenerateSchema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Print the configuration after merging defaults, the config file, GRIDMOUSE_* variables and flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := opts.load(nil)
			if err != nil {
				return err
			}
			var data []byte
			switch format {
			case "toml":
				data, err = toml.Marshal(res.Merged())
			case "yaml":
				data, err = yaml.Marshal(res.Merged())
			default:
				return fmt.Errorf("unknown format %q (want toml or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("encode config: %w", err)
			}

			stderr := cmd.ErrOrStderr()
			if res.Path != "" {
				fmt.Fprintf(stderr, "# loaded from %s\n", res.Path)
			}
			for _, w := range res.Warnings.Strings() {
				fmt.Fprintf(stderr, "# warning: %s\n", w)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (toml, yaml)")
	return cmd
}

func newConfigValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a config file against the schema and the setting rules",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.configPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = config.DefaultPath()
			}

			fl, err := loader.NewFileLoader(path)
			if err != nil {
				return err
			}
			data, err := fl.Load()
			if err != nil {
				return err
			}
			if data == nil {
				return fmt.Errorf("%s: %w", path, config.ErrFileNotFound)
			}

			sv, err := config.NewSchemaValidator()
			if err != nil {
				return err
			}
			problems, err := sv.Validate(data)
			if err != nil {
				return err
			}
			res, err := config.Load(config.Options{Path: path, SkipEnv: true})
			if err != nil {
				return err
			}
			problems = append(problems, res.Warnings...)

			out := cmd.OutOrStdout()
			if len(problems) == 0 {
				fmt.Fprintf(out, "%s: ok\n", path)
				return nil
			}
			for _, w := range problems.Strings() {
				fmt.Fprintf(out, "%s: %s\n", path, w)
			}
			return fmt.Errorf("%d problem(s): %w", len(problems), errInvalidConfig)
		},
	}
}
