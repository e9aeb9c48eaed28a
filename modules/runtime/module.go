// Package runtime provides the "runtime" platform unit describing the host
// the binary runs on.
package runtime

import (
	"context"
	"fmt"
	goruntime "runtime"

	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty/gocty"
)

const UnitName = "runtime"

// Module implements the platform.Module interface for this package.
type Module struct{}

// Output defines the namespace of the runtime unit.
type Output struct {
	GOOS    string `cty:"goos"`
	GOARCH  string `cty:"goarch"`
	Version string `cty:"version"`
	NumCPU  int    `cty:"num_cpu"`
}

// Current describes the running process.
func Current() *Output {
	return &Output{
		GOOS:    goruntime.GOOS,
		GOARCH:  goruntime.GOARCH,
		Version: goruntime.Version(),
		NumCPU:  goruntime.NumCPU(),
	}
}

func populate(_ context.Context, h *unit.Handle) error {
	out := Current()
	ty, err := gocty.ImpliedType(out)
	if err != nil {
		return err
	}
	val, err := gocty.ToCtyValue(out, ty)
	if err != nil {
		return fmt.Errorf("failed to convert runtime info: %w", err)
	}
	for name := range ty.AttributeTypes() {
		h.SetData(name, val.GetAttr(name))
	}
	return nil
}

// Register registers the runtime unit with the provider.
func (m *Module) Register(p *platform.Provider) {
	p.RegisterUnit(UnitName, populate)
}
