package loader

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/vk/hclimport/internal/unit"
	"github.com/zclconf/go-cty/cty"
)

// SelfVar is the reserved variable describing the executing unit.
const SelfVar = "self"

// evalContext exposes h's namespace as variables. Bound sub-units appear as
// nested objects; a unit already being expanded higher up the same path
// becomes an empty object, so cyclic bindings stay finite.
func evalContext(h *unit.Handle) *hcl.EvalContext {
	vars := namespaceValues(h, map[*unit.Handle]bool{h: true})
	vars[SelfVar] = selfValue(h)
	return &hcl.EvalContext{
		Variables: vars,
		Functions: functions,
	}
}

func namespaceValues(h *unit.Handle, visiting map[*unit.Handle]bool) map[string]cty.Value {
	vars := make(map[string]cty.Value, h.Len())
	for _, key := range h.Keys() {
		v, ok := h.Get(key)
		if !ok {
			continue
		}
		switch v.Kind() {
		case unit.KindData:
			data, _ := v.Data()
			vars[key] = data
		case unit.KindUnit:
			sub, _ := v.Unit()
			vars[key] = handleValue(sub, visiting)
		}
	}
	return vars
}

func handleValue(h *unit.Handle, visiting map[*unit.Handle]bool) cty.Value {
	if visiting[h] {
		return cty.EmptyObjectVal
	}
	visiting[h] = true
	defer delete(visiting, h)
	return cty.ObjectVal(namespaceValues(h, visiting))
}

func selfValue(h *unit.Handle) cty.Value {
	attrs := map[string]cty.Value{
		"name":    cty.StringVal(h.Name().String()),
		"package": cty.NullVal(cty.String),
		"origin":  cty.NullVal(cty.String),
	}
	if pkg, ok := h.Package(); ok {
		attrs["package"] = cty.StringVal(pkg)
	}
	if origin, ok := h.Origin(); ok {
		attrs["origin"] = cty.StringVal(origin)
	}
	return cty.ObjectVal(attrs)
}
