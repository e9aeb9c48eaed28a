package loader

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/hclimport/internal/ctxlog"
	"github.com/vk/hclimport/internal/semver"
	"github.com/vk/hclimport/internal/unit"
	"github.com/vk/hclimport/internal/unitname"
	"github.com/zclconf/go-cty/cty"
)

// VersionAttr is the data attribute import version constraints are checked
// against.
const VersionAttr = "version"

// importSpec is the decoded body of an import block.
type importSpec struct {
	Level   *int      `hcl:"level,optional"`
	Select  *[]string `hcl:"select,optional"`
	As      *string   `hcl:"as,optional"`
	Version *string   `hcl:"version,optional"`
}

func (l *BodyLoader) runImport(ctx context.Context, h *unit.Handle, block *hclsyntax.Block) error {
	if len(block.Labels) != 1 {
		return diagError(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing import target",
			Detail:   "An import block takes exactly one label: the unit name.",
			Subject:  &block.TypeRange,
		})
	}
	target := block.Labels[0]

	var spec importSpec
	if diags := gohcl.DecodeBody(block.Body, evalContext(h), &spec); diags.HasErrors() {
		return fmt.Errorf("invalid import %q: %w", target, diags)
	}

	req := unit.Request{Target: target}
	if spec.Level != nil {
		req.Level = *spec.Level
	}
	req.Caller = &unit.Caller{Unit: h.Name().String()}
	if pkg, ok := h.Package(); ok {
		req.Caller.Package = pkg
	}

	ctxlog.FromContext(ctx).Debug("Importing unit.",
		"unit", h.Name().String(),
		"target", target,
		"level", req.Level,
		"selective", spec.Select != nil,
	)

	if spec.Select == nil {
		return l.importWhole(ctx, h, req, spec)
	}
	req.Select = *spec.Select
	if req.Select == nil {
		req.Select = []string{}
	}
	return l.importSelected(ctx, h, req, spec)
}

// importWhole binds the returned root under the target's first segment, or
// the leaf under the "as" name.
func (l *BodyLoader) importWhole(ctx context.Context, h *unit.Handle, req unit.Request, spec importSpec) error {
	if req.Level > 0 {
		return fmt.Errorf("import %q: relative imports must use select", req.Target)
	}
	name, err := unitname.Parse(req.Target)
	if err != nil {
		return fmt.Errorf("import %q: %w", req.Target, err)
	}

	root, err := l.imp.Resolve(ctx, req)
	if err != nil {
		return fmt.Errorf("import %q: %w", req.Target, err)
	}

	if spec.As == nil && spec.Version == nil {
		return bind(h, name.Root().String(), unit.UnitValue(root))
	}

	leaf, err := walk(root, name.Segments()[1:])
	if err != nil {
		// Inside a cycle the leaf is registered before it is bound.
		registered, ok := l.imp.Lookup(name)
		if !ok {
			return fmt.Errorf("import %q: %w", req.Target, err)
		}
		leaf = registered
	}
	if spec.Version != nil {
		if err := checkVersion(leaf, *spec.Version); err != nil {
			return fmt.Errorf("import %q: %w", req.Target, err)
		}
	}

	if spec.As != nil {
		return bind(h, *spec.As, unit.UnitValue(leaf))
	}
	return bind(h, name.Root().String(), unit.UnitValue(root))
}

// importSelected copies the selected names out of the returned unit.
func (l *BodyLoader) importSelected(ctx context.Context, h *unit.Handle, req unit.Request, spec importSpec) error {
	if spec.As != nil {
		return fmt.Errorf("import %q: \"as\" cannot be combined with select", req.Target)
	}

	src, err := l.imp.Resolve(ctx, req)
	if err != nil {
		return fmt.Errorf("import %q: %w", req.Target, err)
	}
	if spec.Version != nil {
		if err := checkVersion(src, *spec.Version); err != nil {
			return fmt.Errorf("import %q: %w", req.Target, err)
		}
	}

	for _, entry := range req.Select {
		names := []string{entry}
		if entry == unit.Wildcard {
			names = src.PublicNames()
		}
		for _, n := range names {
			v, ok := src.Get(n)
			if !ok {
				return fmt.Errorf("cannot import name %q from %s", n, src.Name())
			}
			if err := bind(h, n, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func walk(root *unit.Handle, segments []string) (*unit.Handle, error) {
	cur := root
	for _, seg := range segments {
		v, ok := cur.Get(seg)
		if !ok {
			return nil, fmt.Errorf("%s has no sub-unit %q", cur.Name(), seg)
		}
		next, ok := v.Unit()
		if !ok {
			return nil, fmt.Errorf("%s.%s is not a unit", cur.Name(), seg)
		}
		cur = next
	}
	return cur, nil
}

func bind(h *unit.Handle, key string, v unit.Value) error {
	if key == SelfVar {
		return fmt.Errorf("cannot bind reserved name %q", SelfVar)
	}
	h.Set(key, v)
	return nil
}

func checkVersion(h *unit.Handle, constraint string) error {
	v, ok := h.Get(VersionAttr)
	if !ok {
		return fmt.Errorf("%s declares no %s", h.Name(), VersionAttr)
	}
	data, ok := v.Data()
	if !ok || !data.IsKnown() || data.IsNull() || !data.Type().Equals(cty.String) {
		return fmt.Errorf("%s.%s must be a string", h.Name(), VersionAttr)
	}
	return semver.Check(data.AsString(), constraint)
}
