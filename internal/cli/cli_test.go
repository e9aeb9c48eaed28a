package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/hclimport/internal/app"
)

func TestParse_Flags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want *app.Config
	}{
		{
			name: "defaults",
			args: []string{"pkg.mod"},
			want: &app.Config{
				SearchPaths: []string{"."},
				Target:      "pkg.mod",
				LogFormat:   "text",
				LogLevel:    "info",
				Output:      app.OutputText,
			},
		},
		{
			name: "all flags",
			args: []string{
				"-p", "/a", "--search-path", "/b",
				"--select", "x,y", "-s", "z",
				"--namespaces", "--strict", "--show-registry",
				"--log-format", "JSON", "--log-level", "debug",
				"-o", "yaml", "--metrics-port", "9090",
				"pkg.mod",
			},
			want: &app.Config{
				SearchPaths:     []string{"/a", "/b"},
				Target:          "pkg.mod",
				Select:          []string{"x", "y", "z"},
				Namespaces:      true,
				StrictSelection: true,
				LogFormat:       "json",
				LogLevel:        "debug",
				Output:          app.OutputYAML,
				ShowRegistry:    true,
				MetricsPort:     9090,
			},
		},
		{
			name: "relative without name",
			args: []string{"--level", "2", "--package", "a.b", "--select", "helper"},
			want: &app.Config{
				SearchPaths: []string{"."},
				Select:      []string{"helper"},
				Level:       2,
				Package:     "a.b",
				LogFormat:   "text",
				LogLevel:    "info",
				Output:      app.OutputText,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)
			require.NoError(t, err)
			require.False(t, shouldExit)
			if diff := cmp.Diff(tc.want, cfg); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Environment(t *testing.T) {
	sep := string(os.PathListSeparator)
	t.Setenv("HCLIMPORT_SEARCH_PATH", "/x"+sep+"/y")
	t.Setenv("HCLIMPORT_LOG_LEVEL", "debug")
	t.Setenv("HCLIMPORT_STRICT", "true")

	cfg, _, err := Parse([]string{"--log-level", "warn", "unit"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"/x", "/y"}, cfg.SearchPaths)
	assert.Equal(t, "warn", cfg.LogLevel, "flags take precedence over the environment")
	assert.True(t, cfg.StrictSelection)
}

func TestParse_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hclimport.yaml")
	content := `
search-path:
  - /cfg/units
log-format: json
output: yaml
show-registry: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, shouldExit, err := Parse([]string{"--config", path, "--output", "text", "unit"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)

	assert.Equal(t, []string{"/cfg/units"}, cfg.SearchPaths)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, app.OutputText, cfg.Output)
	assert.True(t, cfg.ShowRegistry)
}

func TestParse_ShouldExit(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"help", []string{"-h"}},
		{"no name", []string{}},
		{"nil args", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			cfg, shouldExit, err := Parse(tc.args, out)
			require.NoError(t, err)
			assert.True(t, shouldExit)
			assert.Nil(t, cfg)
			assert.Contains(t, out.String(), "Usage:")
			assert.Contains(t, out.String(), "hclimport [flags] NAME")
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown flag", []string{"--this-is-not-a-valid-flag"}, "unknown flag: --this-is-not-a-valid-flag"},
		{"too many names", []string{"a", "b"}, "accepts at most 1 arg(s)"},
		{"bad log format", []string{"--log-format", "xml", "a"}, "invalid log format"},
		{"bad log level", []string{"--log-level", "trace", "a"}, "invalid log level"},
		{"bad output", []string{"-o", "csv", "a"}, "invalid output"},
		{"relative without package", []string{"--level", "1", "a"}, "requires a caller package"},
		{"bad level", []string{"--level", "one", "a"}, "invalid argument"},
		{"missing config file", []string{"--config", "/does/not/exist.yaml", "a"}, "failed to read config file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.False(t, shouldExit)

			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.want)
		})
	}
}
