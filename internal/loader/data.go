package loader

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/ctyconv"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"gopkg.in/yaml.v3"
)

// DataLoader initializes a unit from a YAML, TOML or JSON document whose top
// level is a mapping. Each top-level key becomes a data attribute.
type DataLoader struct {
	Format unit.Format
}

func (l *DataLoader) Exec(ctx context.Context, h *unit.Handle) error {
	origin, ok := h.Origin()
	if !ok {
		return fmt.Errorf("unit %s has no origin to read", h.Name())
	}
	src, err := os.ReadFile(origin)
	if err != nil {
		return fmt.Errorf("failed to read data unit: %w", err)
	}

	val, err := l.decode(src)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", origin, err)
	}

	keys := ctyconv.SortedKeys(val)
	for _, key := range keys {
		h.SetData(key, val.GetAttr(key))
	}
	ctxlog.FromContext(ctx).Debug("Loaded data unit.",
		"unit", h.Name().String(),
		"format", string(l.Format),
		"keys", len(keys),
	)
	return nil
}

func (l *DataLoader) decode(src []byte) (cty.Value, error) {
	var tree any
	switch l.Format {
	case unit.FormatJSON:
		ty, err := ctyjson.ImpliedType(src)
		if err != nil {
			return cty.NilVal, err
		}
		if !ty.IsObjectType() {
			return cty.NilVal, fmt.Errorf("top level must be a mapping, got %s", ty.FriendlyName())
		}
		return ctyjson.Unmarshal(src, ty)
	case unit.FormatYAML:
		if err := yaml.Unmarshal(src, &tree); err != nil {
			return cty.NilVal, err
		}
	case unit.FormatTOML:
		if err := toml.Unmarshal(src, &tree); err != nil {
			return cty.NilVal, err
		}
	default:
		return cty.NilVal, fmt.Errorf("unsupported data format %q", l.Format)
	}

	if tree == nil {
		return cty.EmptyObjectVal, nil
	}
	m, ok := tree.(map[string]any)
	if !ok {
		return cty.NilVal, fmt.Errorf("top level must be a mapping, got %T", tree)
	}
	return ctyconv.FromGo(m)
}
