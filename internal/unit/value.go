package unit

import "github.com/zclconf/go-cty/cty"

// ValueKind tags an attribute value.
type ValueKind int

const (
	// KindAbsent is the zero Value.
	KindAbsent ValueKind = iota
	// KindUnit is a bound sub-unit or imported unit.
	KindUnit
	// KindData is plain data produced by a unit body.
	KindData
)

// Value is a tagged attribute of a Handle's namespace.
type Value struct {
	kind ValueKind
	unit *Handle
	data cty.Value
}

// UnitValue wraps a handle.
func UnitValue(h *Handle) Value {
	return Value{kind: KindUnit, unit: h}
}

// DataValue wraps a cty value.
func DataValue(v cty.Value) Value {
	return Value{kind: KindData, data: v}
}

// Kind returns the tag.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsAbsent reports whether v is the zero Value.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Unit returns the wrapped handle when v is a unit.
func (v Value) Unit() (*Handle, bool) {
	return v.unit, v.kind == KindUnit
}

// Data returns the wrapped data when v is data.
func (v Value) Data() (cty.Value, bool) {
	if v.kind != KindData {
		return cty.NilVal, false
	}
	return v.data, true
}
