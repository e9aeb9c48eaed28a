package unit

import (
	"strings"
	"sync"

	"github.com/vk/hclimport/internal/unitname"
	"github.com/zclconf/go-cty/cty"
)

// ExportsAttr names the attribute that lists a unit's public names.
const ExportsAttr = "exports"

// Handle is the runtime object of a resolved unit.
type Handle struct {
	name      unitname.Name
	kind      Kind
	origin    string
	pkg       string
	hasPkg    bool
	subSearch []string
	container bool

	mu    sync.RWMutex
	attrs map[string]Value
	order []string
}

// NewHandle builds an uninitialized handle from a descriptor. The package is
// the unit's own name for containers, the parent name for nested leaves and
// absent for top-level leaves.
func NewHandle(d *Descriptor) *Handle {
	h := &Handle{
		name:   d.Name,
		kind:   d.Kind,
		origin: d.Origin,
		attrs:  make(map[string]Value),
	}
	if locs, ok := d.SubSearchLocations(); ok {
		h.subSearch = locs
		h.container = true
		h.pkg, h.hasPkg = d.Name.String(), true
	} else if parent, ok := d.Name.Parent(); ok {
		h.pkg, h.hasPkg = parent.String(), true
	}
	return h
}

// Name returns the canonical name.
func (h *Handle) Name() unitname.Name {
	return h.name
}

// Kind returns the execution kind the handle was created with.
func (h *Handle) Kind() Kind {
	return h.kind
}

// Origin returns the location the unit was loaded from.
func (h *Handle) Origin() (string, bool) {
	return h.origin, h.origin != ""
}

// Package returns the dotted name of the nearest enclosing container.
func (h *Handle) Package() (string, bool) {
	return h.pkg, h.hasPkg
}

// IsContainer reports whether sub-units can be resolved under this handle.
func (h *Handle) IsContainer() bool {
	return h.container
}

// SubSearchLocations returns a copy of the container's sub-search locations.
func (h *Handle) SubSearchLocations() ([]string, bool) {
	if !h.container {
		return nil, false
	}
	return cloneStrings(h.subSearch), true
}

// Get returns the attribute stored under key.
func (h *Handle) Get(key string) (Value, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.attrs[key]
	return v, ok
}

// Set stores an attribute, keeping first-insertion order for listings.
func (h *Handle) Set(key string, v Value) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, exists := h.attrs[key]; !exists {
		h.order = append(h.order, key)
	}
	h.attrs[key] = v
}

// SetData stores a data attribute.
func (h *Handle) SetData(key string, v cty.Value) {
	h.Set(key, DataValue(v))
}

// BindSubUnit stores a unit attribute.
func (h *Handle) BindSubUnit(key string, sub *Handle) {
	h.Set(key, UnitValue(sub))
}

// UnbindSubUnit removes key only while it still holds sub.
func (h *Handle) UnbindSubUnit(key string, sub *Handle) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if got, ok := h.attrs[key].Unit(); !ok || got != sub {
		return false
	}
	delete(h.attrs, key)
	for i, k := range h.order {
		if k == key {
			h.order = append(h.order[:i:i], h.order[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the attribute names in first-insertion order.
func (h *Handle) Keys() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return cloneStrings(h.order)
}

// Len returns the number of attributes.
func (h *Handle) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.attrs)
}

// PublicNames expands the wildcard selection: the string entries of the
// exports attribute when it is a collection, otherwise every attribute whose
// name does not start with an underscore.
func (h *Handle) PublicNames() []string {
	if v, ok := h.Get(ExportsAttr); ok {
		if data, ok := v.Data(); ok && exportable(data) {
			var names []string
			for it := data.ElementIterator(); it.Next(); {
				_, el := it.Element()
				if el.IsKnown() && !el.IsNull() && el.Type() == cty.String {
					names = append(names, el.AsString())
				}
			}
			return names
		}
	}

	var names []string
	for _, key := range h.Keys() {
		if !strings.HasPrefix(key, "_") {
			names = append(names, key)
		}
	}
	return names
}

func exportable(v cty.Value) bool {
	if !v.IsKnown() || v.IsNull() {
		return false
	}
	ty := v.Type()
	return ty.IsListType() || ty.IsTupleType() || ty.IsSetType()
}

// String returns the unit name.
func (h *Handle) String() string {
	return h.name.String()
}
