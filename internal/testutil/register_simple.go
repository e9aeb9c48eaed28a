package testutil

import (
	"context"

	"github.com/vk/hclimport/internal/platform"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty"
)

// SimpleModule is a test helper for providing platform units whose
// namespaces are fixed data maps.
type SimpleModule struct {
	Units map[string]map[string]cty.Value
}

// Register implements the platform.Module interface.
func (m *SimpleModule) Register(p *platform.Provider) {
	for name, attrs := range m.Units {
		attrs := attrs
		p.RegisterUnit(name, func(_ context.Context, h *unit.Handle) error {
			for k, v := range attrs {
				h.SetData(k, v)
			}
			return nil
		})
	}
}
