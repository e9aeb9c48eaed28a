package cli

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vk/hclimport/internal/app"
)

// EnvPrefix prefixes the environment variables that override flags, e.g.
// HCLIMPORT_SEARCH_PATH or HCLIMPORT_LOG_LEVEL.
const EnvPrefix = "HCLIMPORT"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `hclimport - resolves and loads HCL units the way an import statement would.

A unit is an .hcl, .yaml, .yml, .toml or .json file, or a directory holding
an _init.hcl initializer. NAME is the dotted unit name, e.g. pkg.sub.leaf.
With --level above zero NAME is resolved relative to --package and may be
empty.

Every flag can also be set through the environment (HCLIMPORT_LOG_LEVEL,
HCLIMPORT_SEARCH_PATH, ...) or through a YAML, TOML or JSON file passed
with --config. Search path entries may be separated by the OS path list
separator.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		args = []string{}
	}

	v := viper.New()
	var config *app.Config

	cmd := &cobra.Command{
		Use:           "hclimport [flags] NAME",
		Short:         "Resolve and load an HCL unit",
		Long:          longHelp,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := readConfigFile(v); err != nil {
				return err
			}

			target := ""
			if len(args) > 0 {
				target = args[0]
			}
			if target == "" && v.GetInt("level") == 0 {
				slog.Debug("No unit name provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := app.NewConfig(app.Config{
				SearchPaths:     splitPaths(v.GetStringSlice("search-path")),
				Target:          target,
				Select:          selection(v.GetStringSlice("select")),
				Level:           v.GetInt("level"),
				Package:         v.GetString("package"),
				Namespaces:      v.GetBool("namespaces"),
				StrictSelection: v.GetBool("strict"),
				LogFormat:       strings.ToLower(v.GetString("log-format")),
				LogLevel:        strings.ToLower(v.GetString("log-level")),
				Output:          strings.ToLower(v.GetString("output")),
				ShowRegistry:    v.GetBool("show-registry"),
				MetricsPort:     v.GetInt("metrics-port"),
			})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringSliceP("search-path", "p", []string{"."}, "Directory searched for top-level units. Repeatable.")
	flags.StringSliceP("select", "s", nil, "Names to import from the unit; '*' imports every public name.")
	flags.IntP("level", "l", 0, "Relative import level; 0 is an absolute import.")
	flags.String("package", "", "Package the import is made from. Required when --level is above 0.")
	flags.Bool("namespaces", false, "Treat directories without an initializer as namespace containers.")
	flags.Bool("strict", false, "Fail when a selected name is neither an attribute nor a sub-unit.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringP("output", "o", app.OutputText, "Result format. Options: 'text' or 'yaml'.")
	flags.Bool("show-registry", false, "Also print every unit held by the registry.")
	flags.Int("metrics-port", 0, "Port for the health check and metrics server. 0 is disabled.")
	flags.String("config", "", "Path to a config file (YAML, TOML or JSON).")

	if err := v.BindPFlags(flags); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if config == nil {
		// Help was requested or no unit name was given.
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

func readConfigFile(v *viper.Viper) error {
	path := v.GetString("config")
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	slog.Debug("Config file loaded.", "path", v.ConfigFileUsed())
	return nil
}

// splitPaths expands entries joined with the OS path list separator, which is
// how search paths arrive from the environment.
func splitPaths(entries []string) []string {
	var paths []string
	for _, e := range entries {
		for _, p := range filepath.SplitList(e) {
			if p != "" {
				paths = append(paths, p)
			}
		}
	}
	return paths
}

// selection returns nil for a whole-unit import.
func selection(names []string) []string {
	var out []string
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
