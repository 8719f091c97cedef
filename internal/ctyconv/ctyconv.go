// Package ctyconv converts between cty values and the native Go trees the
// pathmap engine operates on. HCL evaluation produces cty.Value; document
// loading needs map[string]any.
package ctyconv

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromValue recursively converts a cty.Value into its natural Go
// counterpart: strings, float64 numbers, bools, []any for sequences, and
// map[string]any for objects and maps. Null and unknown values become nil.
func FromValue(v cty.Value) (any, error) {
	if v.IsNull() || !v.IsKnown() {
		return nil, nil
	}

	ty := v.Type()

	switch {
	case ty == cty.String:
		return v.AsString(), nil

	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("converting cty number: %w", err)
		}
		return f, nil

	case ty == cty.Bool:
		return v.True(), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		out := make([]any, 0, v.LengthInt())
		it := v.ElementIterator()
		for it.Next() {
			_, elem := it.Element()
			native, err := FromValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, native)
		}
		return out, nil

	case ty.IsObjectType() || ty.IsMapType():
		out := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			keyVal, elem := it.Element()
			name := keyVal.AsString()
			native, err := FromValue(elem)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", name, err)
			}
			out[name] = native
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
	}
}

// ToValue converts a native Go value into the corresponding cty.Value.
// Maps become objects, slices become tuples, so the element types of a
// heterogeneous tree never have to unify. nil becomes a null.
func ToValue(v any) (cty.Value, error) {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil

	case string:
		return cty.StringVal(v), nil

	case bool:
		return cty.BoolVal(v), nil

	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		attrs := make(map[string]cty.Value, len(v))
		for name, elem := range v {
			val, err := ToValue(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("in attribute %q: %w", name, err)
			}
			attrs[name] = val
		}
		return cty.ObjectVal(attrs), nil

	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		elems := make([]cty.Value, 0, len(v))
		for i, elem := range v {
			val, err := ToValue(elem)
			if err != nil {
				return cty.NilVal, fmt.Errorf("at index %d: %w", i, err)
			}
			elems = append(elems, val)
		}
		return cty.TupleVal(elems), nil

	default:
		// Remaining scalars are numbers of one Go flavor or another.
		ty, err := gocty.ImpliedType(v)
		if err != nil {
			return cty.NilVal, fmt.Errorf("unsupported value of type %T: %w", v, err)
		}
		return gocty.ToCtyValue(v, ty)
	}
}
