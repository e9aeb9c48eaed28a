// Package ctyconv converts between native Go values and cty values.
//
// Data units decode into untyped Go trees (maps, slices, scalars) which are
// turned into cty values here; the CLI goes the other way when rendering.
package ctyconv

import (
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromGo converts an untyped Go value into a cty.Value. Maps become objects,
// slices become tuples and timestamps become RFC 3339 strings. Types gocty
// can imply are delegated to it.
func FromGo(v any) (cty.Value, error) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return val, nil
	case string:
		return cty.StringVal(val), nil
	case bool:
		return cty.BoolVal(val), nil
	case int:
		return cty.NumberIntVal(int64(val)), nil
	case int64:
		return cty.NumberIntVal(val), nil
	case uint64:
		return cty.NumberUIntVal(val), nil
	case float64:
		return cty.NumberFloatVal(val), nil
	case time.Time:
		return cty.StringVal(val.Format(time.RFC3339Nano)), nil
	case fmt.Stringer:
		return cty.StringVal(val.String()), nil
	case map[string]any:
		attrs := make(map[string]cty.Value, len(val))
		for k, el := range val {
			cv, err := FromGo(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %q: %w", k, err)
			}
			attrs[k] = cv
		}
		return cty.ObjectVal(attrs), nil
	case map[any]any:
		attrs := make(map[string]cty.Value, len(val))
		for k, el := range val {
			cv, err := FromGo(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("key %v: %w", k, err)
			}
			attrs[fmt.Sprint(k)] = cv
		}
		return cty.ObjectVal(attrs), nil
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(val))
		for i, el := range val {
			cv, err := FromGo(el)
			if err != nil {
				return cty.NilVal, fmt.Errorf("index %d: %w", i, err)
			}
			elems = append(elems, cv)
		}
		return cty.TupleVal(elems), nil
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type for %T: %w", v, err)
	}
	return gocty.ToCtyValue(v, ty)
}

// ToGo converts a known cty.Value into an untyped Go tree. Unknown values
// become nil. Whole numbers become int64, other numbers float64.
func ToGo(v cty.Value) any {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString()
	case ty == cty.Bool:
		return v.True()
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact {
				return i
			}
		}
		f, _ := bf.Float64()
		return f
	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			k, el := it.Element()
			out[k.AsString()] = ToGo(el)
		}
		return out
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, el := it.Element()
			out = append(out, ToGo(el))
		}
		return out
	default:
		return nil
	}
}

// HCLString renders v in HCL syntax, e.g. `"text"` or `["a", "b"]`.
func HCLString(v cty.Value) string {
	if !v.IsKnown() {
		return "(unknown)"
	}
	return string(hclwrite.TokensForValue(v).Bytes())
}

// SortedKeys returns the attribute names of an object or map value in order.
func SortedKeys(v cty.Value) []string {
	if v.IsNull() || !v.IsKnown() {
		return nil
	}
	ty := v.Type()
	if !ty.IsObjectType() && !ty.IsMapType() {
		return nil
	}
	keys := make([]string, 0, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		k, _ := it.Element()
		keys = append(keys, k.AsString())
	}
	sort.Strings(keys)
	return keys
}
