package env_vars

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty/gocty"
)

// UnitName is the name the environment is importable under.
const UnitName = "env"

// Module implements the platform.Module interface for this package.
type Module struct {
	// Environ overrides os.Environ, for tests.
	Environ func() []string
}

// Output defines the namespace of the env unit.
type Output struct {
	Vars map[string]string `cty:"vars"`
	Path []string          `cty:"path"`
}

// Snapshot builds the env namespace from KEY=VALUE pairs.
func Snapshot(environ []string) *Output {
	out := &Output{Vars: make(map[string]string), Path: []string{}}
	for _, e := range environ {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			out.Vars[pair[0]] = pair[1]
		}
	}
	if p := out.Vars["PATH"]; p != "" {
		out.Path = filepath.SplitList(p)
	}
	return out
}

// Populate is the factory of the env unit.
func (m *Module) Populate(_ context.Context, h *unit.Handle) error {
	environ := os.Environ
	if m.Environ != nil {
		environ = m.Environ
	}
	out := Snapshot(environ())

	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return err
	}
	val, err := gocty.ToCtyValue(out, ty)
	if err != nil {
		return fmt.Errorf("failed to convert environment: %w", err)
	}
	for name := range ty.AttributeTypes() {
		h.SetData(name, val.GetAttr(name))
	}
	return nil
}

// Register registers the env unit with the provider.
func (m *Module) Register(p *platform.Provider) {
	p.RegisterUnit(UnitName, m.Populate)
}
