package app

import (
	"errors"
	"fmt"
	"slices"
)

// Output formats for the resolved unit.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SearchPaths []string
	Target      string
	// Select is nil for a whole-unit import.
	Select  []string
	Level   int
	Package string

	Namespaces      bool
	StrictSelection bool

	LogFormat    string
	LogLevel     string
	Output       string
	ShowRegistry bool
	MetricsPort  int
}

var (
	logFormats = []string{"text", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
	outputs    = []string{OutputText, OutputYAML}
)

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Target == "" && cfg.Level == 0 {
		return nil, errors.New("Target is a required configuration field and cannot be empty")
	}
	if cfg.Level < 0 {
		return nil, fmt.Errorf("level must not be negative, got %d", cfg.Level)
	}
	if cfg.Level > 0 && cfg.Package == "" {
		return nil, errors.New("a relative import (level > 0) requires a caller package")
	}
	if cfg.MetricsPort < 0 {
		return nil, fmt.Errorf("metrics port must not be negative, got %d", cfg.MetricsPort)
	}

	if len(cfg.SearchPaths) == 0 {
		cfg.SearchPaths = []string{"."}
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Output == "" {
		cfg.Output = OutputText
	}

	if !slices.Contains(logFormats, cfg.LogFormat) {
		return nil, fmt.Errorf("invalid log format %q: must be one of %v", cfg.LogFormat, logFormats)
	}
	if !slices.Contains(logLevels, cfg.LogLevel) {
		return nil, fmt.Errorf("invalid log level %q: must be one of %v", cfg.LogLevel, logLevels)
	}
	if !slices.Contains(outputs, cfg.Output) {
		return nil, fmt.Errorf("invalid output %q: must be one of %v", cfg.Output, outputs)
	}

	return &cfg, nil
}
