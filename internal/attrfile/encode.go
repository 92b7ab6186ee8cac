// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"fmt"
	"slices"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	ctyyaml "github.com/zclconf/go-cty-yaml"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

// ToCty converts a materialized attribute tree, as returned by ToMap, to a
// cty object value. Nested maps become objects and lists become tuples.
// Scalars take the type gocty implies for them, with nil becoming a null
// string so that the result never has a dynamic type.
func ToCty(raw map[string]any) (cty.Value, error) {
	return toCty(raw, nil)
}

// ValueToCty is ToCty for any materialized value: a map, a list from
// ToSlice or a scalar.
func ValueToCty(v any) (cty.Value, error) {
	return toCty(v, nil)
}

func toCty(v any, path attrs.Path) (cty.Value, error) {
	switch v := v.(type) {
	case nil:
		return cty.NullVal(cty.String), nil
	case map[string]any:
		if len(v) == 0 {
			return cty.EmptyObjectVal, nil
		}
		vals := make(map[string]cty.Value, len(v))
		for k, elem := range v {
			val, err := toCty(elem, append(slices.Clip(path), k))
			if err != nil {
				return cty.NilVal, err
			}
			vals[k] = val
		}
		return cty.ObjectVal(vals), nil
	case []any:
		if len(v) == 0 {
			return cty.EmptyTupleVal, nil
		}
		vals := make([]cty.Value, len(v))
		for i, elem := range v {
			val, err := toCty(elem, append(slices.Clip(path), i))
			if err != nil {
				return cty.NilVal, err
			}
			vals[i] = val
		}
		return cty.TupleVal(vals), nil
	default:
		ty, err := gocty.ImpliedType(v)
		if err == nil && !ty.IsPrimitiveType() {
			err = fmt.Errorf("unsupported value of type %T", v)
		}
		if err != nil {
			return cty.NilVal, fmt.Errorf("cannot encode attribute %s: %w", path, err)
		}
		return gocty.ToCtyValue(v, ty)
	}
}

// MarshalJSON encodes a materialized attribute value as JSON.
func MarshalJSON(v any) ([]byte, error) {
	val, err := ValueToCty(v)
	if err != nil {
		return nil, err
	}
	return ctyjson.Marshal(val, val.Type())
}

// MarshalYAML encodes a materialized attribute value as YAML.
func MarshalYAML(v any) ([]byte, error) {
	val, err := ValueToCty(v)
	if err != nil {
		return nil, err
	}
	return ctyyaml.Marshal(val)
}
