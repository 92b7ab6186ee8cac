// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"

	"github.com/mitchellh/copystructure"
)

// convertValue prepares a value for storage in a per-level tree. Maps with
// string keys and slices, whatever their static type, become vivid
// containers attached to info; containers belonging to another tree are
// copied rather than aliased; any other leaf that is not a basic scalar is
// deep-copied so later changes by the caller cannot reach the tree.
func convertValue(v any, info nodeInfo) any {
	if isBasic(v) {
		return v
	}
	switch t := v.(type) {
	case map[string]any:
		return newVividMap(t, info)
	case []any:
		return newVividList(t, info)
	case *VividMap:
		return newVividMap(t.ToMap(), info)
	case *VividList:
		return newVividList(t.ToSlice(), info)
	case *ImmutableMap:
		return newVividMap(t.ToMap(), info)
	case *ImmutableList:
		return newVividList(t.ToSlice(), info)
	case *COWMap:
		return newVividMap(t.ToMap(), info)
	case *Cell:
		return convertValue(t.ToRaw(), info)
	}

	if raw, ok := reflectMap(v); ok {
		return newVividMap(raw, info)
	}
	if raw, ok := reflectSlice(v); ok {
		return newVividList(raw, info)
	}
	return copyLeaf(v)
}

func isBasic(v any) bool {
	switch v.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return true
	}
	return false
}

// reflectMap converts any map with a string-kinded key type into a
// map[string]any, one level deep.
func reflectMap(v any) (map[string]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	raw := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		raw[iter.Key().String()] = iter.Value().Interface()
	}
	return raw, true
}

// reflectSlice converts any slice or array into a []any, one level deep.
// Byte slices are left alone so they stay leaf values.
func reflectSlice(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		return nil, false
	}
	raw := make([]any, rv.Len())
	for i := range raw {
		raw[i] = rv.Index(i).Interface()
	}
	return raw, true
}

func copyLeaf(v any) any {
	c, err := copystructure.Copy(v)
	if err != nil {
		return v
	}
	return c
}

// toRaw deep-converts any attribute value into plain map[string]any,
// []any and scalars, sharing nothing with the source.
func toRaw(v any) any {
	switch t := v.(type) {
	case *VividMap:
		return t.ToMap()
	case *VividList:
		return t.ToSlice()
	case *ImmutableMap:
		return t.ToMap()
	case *ImmutableList:
		return t.ToSlice()
	case *COWMap:
		return t.ToMap()
	case *Cell:
		return t.ToRaw()
	case map[string]any:
		ret := make(map[string]any, len(t))
		for k, v := range t {
			ret[k] = toRaw(v)
		}
		return ret
	case []any:
		ret := make([]any, len(t))
		for i, v := range t {
			ret[i] = toRaw(v)
		}
		return ret
	}
	if isBasic(v) {
		return v
	}
	if raw, ok := reflectMap(v); ok {
		return toRaw(raw)
	}
	if raw, ok := reflectSlice(v); ok {
		return toRaw(raw)
	}
	return copyLeaf(v)
}

// rawMap returns v as a plain map if it is map-shaped.
func rawMap(v any) (map[string]any, bool) {
	if _, ok := asMap(v); ok {
		return toRaw(v).(map[string]any), true
	}
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	return reflectMap(v)
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

func hasChildren(v any) bool {
	if m, ok := asMap(v); ok {
		return len(m.keys()) > 0
	}
	if l, ok := asList(v); ok {
		return l.length() > 0
	}
	return false
}

// equalRaw compares two attribute values by their fully merged raw form.
func equalRaw(a, b any) bool {
	return reflect.DeepEqual(toRaw(a), toRaw(b))
}
