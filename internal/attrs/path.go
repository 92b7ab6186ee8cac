// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/opentofu/nodeattrs/internal/didyoumean"
)

// Path addresses a value inside an attribute tree. Each segment is either a
// string, naming a key of a map, or an int, naming an index of a list.
//
// Segments of other types are normalized when a path is used: integer types
// become int, fmt.Stringer values and everything else become strings. An
// int segment used against a map addresses the key with the same decimal
// spelling.
type Path []any

// String returns the path in dotted form, as used in error messages.
func (p Path) String() string {
	if len(p) == 0 {
		return "(root)"
	}
	parts := make([]string, len(p))
	for i, seg := range p {
		parts[i] = segString(seg)
	}
	return strings.Join(parts, ".")
}

// TracePath returns the path in the slash-separated form used as the key of
// trace entries, such as "/a/b/0".
func (p Path) TracePath() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, seg := range p {
		b.WriteByte('/')
		b.WriteString(segString(seg))
	}
	return b.String()
}

// ParsePath parses a path written either in dotted form ("a.b.0") or in
// the slash-separated trace form ("/a/b/0"). Segments made of decimal
// digits become int. An empty string and "/" are the root path.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	var segs []string
	switch {
	case s == "" || s == "/":
		return Path{}, nil
	case strings.HasPrefix(s, "/"):
		segs = strings.Split(strings.TrimSuffix(s[1:], "/"), "/")
	default:
		segs = strings.Split(s, ".")
	}

	ret := make(Path, len(segs))
	for i, seg := range segs {
		if seg == "" {
			return nil, fmt.Errorf("invalid attribute path %q: empty path segment", s)
		}
		if n, err := strconv.Atoi(seg); err == nil && n >= 0 && seg[0] != '+' {
			ret[i] = n
			continue
		}
		ret[i] = seg
	}
	return ret, nil
}

func (p Path) child(seg any) Path {
	ret := make(Path, len(p), len(p)+1)
	copy(ret, p)
	return append(ret, seg)
}

func (p Path) append(other Path) Path {
	ret := make(Path, 0, len(p)+len(other))
	ret = append(ret, p...)
	return append(ret, other...)
}

func segString(seg any) string {
	switch s := seg.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	default:
		return fmt.Sprint(s)
	}
}

// normalizePath returns a copy of the given segments where every segment is
// either a string or an int.
func normalizePath(segs []any) Path {
	ret := make(Path, len(segs))
	for i, seg := range segs {
		ret[i] = normalizeSegment(seg)
	}
	return ret
}

func normalizeSegment(seg any) any {
	switch s := seg.(type) {
	case string, int:
		return s
	case fmt.Stringer:
		return s.String()
	}
	rv := reflect.ValueOf(seg)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint())
	case reflect.String:
		return rv.String()
	}
	return fmt.Sprint(seg)
}

// mapKey returns the map key addressed by a normalized segment.
func mapKey(seg any) string {
	return segString(seg)
}

type writeMode int

const (
	// writeAlways stores unconditionally.
	writeAlways writeMode = iota
	// writeUnless stores only if nothing (or nil) is stored under the key.
	writeUnless
)

// mapNode is the read half shared by every map-shaped container.
type mapNode interface {
	lookup(key string) (any, bool)
	keys() []string
}

// listNode is the read half shared by every list-shaped container.
type listNode interface {
	index(i int) (any, bool)
	length() int
}

// mutableMap is implemented by map containers that can be written through
// the path API.
type mutableMap interface {
	mapNode
	vivify(key string) any
	store(key string, value any, mode writeMode) bool
	remove(key string) (any, bool)
}

// mutableList is implemented by list containers that can be written through
// the path API.
type mutableList interface {
	listNode
	storeAt(i int, value any, mode writeMode) bool
	removeAt(i int) (any, bool)
}

func asMap(v any) (mapNode, bool) {
	switch t := v.(type) {
	case *Cell:
		if t != nil && t.IsMap() {
			return t, true
		}
		return nil, false
	case mapNode:
		return t, true
	}
	return nil, false
}

func asList(v any) (listNode, bool) {
	switch t := v.(type) {
	case *Cell:
		if t != nil && t.IsList() {
			return t, true
		}
		return nil, false
	case listNode:
		return t, true
	}
	return nil, false
}

// validContainer reports whether obj can be addressed by seg: any map
// accepts any segment, a list only accepts a non-negative int.
func validContainer(obj any, seg any) bool {
	if _, ok := asMap(obj); ok {
		return true
	}
	if _, ok := asList(obj); ok {
		i, isInt := seg.(int)
		return isInt && i >= 0
	}
	return false
}

// step reads one segment without autovivifying.
func step(obj any, seg any) (any, bool) {
	if m, ok := asMap(obj); ok {
		return m.lookup(mapKey(seg))
	}
	if l, ok := asList(obj); ok {
		i, isInt := seg.(int)
		if !isInt || i < 0 || i >= l.length() {
			return nil, false
		}
		return l.index(i)
	}
	return nil, false
}

func readPath(root any, path Path) (any, bool) {
	cur := root
	for _, seg := range path {
		next, ok := step(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func existsPath(root any, path Path) bool {
	_, ok := readPath(root, path)
	return ok
}

func readStrictPath(root any, path Path) (any, error) {
	if v, ok := readPath(root, path); ok {
		return v, nil
	}
	return nil, noSuchAttribute(root, path)
}

// noSuchAttribute builds the error for a path that does not resolve,
// suggesting a nearby key at the depth where resolution stopped.
func noSuchAttribute(root any, path Path) error {
	err := &NoSuchAttributeError{Path: path}
	cur := root
	for _, seg := range path {
		next, ok := step(cur, seg)
		if !ok {
			if m, isMap := asMap(cur); isMap {
				err.Suggestion = didyoumean.NameSuggestion(mapKey(seg), m.keys())
			}
			break
		}
		cur = next
	}
	return err
}

// writePath stores value at path, creating intermediate maps as needed and
// replacing any intermediate that cannot be addressed by the next segment
// with a fresh empty map. It reports whether the value was stored, which is
// only false for a set-unless write that found an existing value.
func writePath(root any, path Path, value any, mode writeMode) bool {
	if len(path) == 0 {
		panic("attrs: write requires at least one path segment")
	}

	var prev, prevSeg any
	cur := root
	for _, seg := range path[:len(path)-1] {
		if !validContainer(cur, seg) {
			cur = replaceWithMap(prev, prevSeg)
			if cur == nil {
				return false
			}
		}
		prev, prevSeg = cur, seg
		cur = vivifyStep(cur, seg)
	}

	last := path[len(path)-1]
	if !validContainer(cur, last) {
		cur = replaceWithMap(prev, prevSeg)
		if cur == nil {
			return false
		}
	}
	return storeStep(cur, last, value, mode)
}

// validateWrite checks, without changing anything, that every existing
// intermediate along path is a container the following segment can address.
func validateWrite(root any, path Path) (at Path, found any, ok bool) {
	cur := root
	for i, seg := range path {
		if !validContainer(cur, seg) {
			return path[:i], cur, false
		}
		next, exists := step(cur, seg)
		if !exists {
			if _, isList := asList(cur); isList && i < len(path)-1 {
				// A missing list element reads as nil, which cannot hold
				// the next segment.
				return path[:i+1], nil, false
			}
			// Everything below a missing map key is created fresh.
			return nil, nil, true
		}
		cur = next
	}
	return nil, nil, true
}

func replaceWithMap(parent any, seg any) any {
	if parent == nil {
		return nil
	}
	storeStep(parent, seg, map[string]any{}, writeAlways)
	v, _ := step(parent, seg)
	return v
}

func vivifyStep(cur any, seg any) any {
	if m, ok := cur.(mutableMap); ok {
		return m.vivify(mapKey(seg))
	}
	v, _ := step(cur, seg)
	return v
}

func storeStep(cur any, seg any, value any, mode writeMode) bool {
	switch c := cur.(type) {
	case mutableMap:
		return c.store(mapKey(seg), value, mode)
	case mutableList:
		i, ok := seg.(int)
		if !ok || i < 0 {
			return false
		}
		return c.storeAt(i, value, mode)
	}
	return false
}

// unlinkPath removes the last segment of path from the container found at
// the rest of it. It is a no-op when that prefix does not resolve to a
// container.
func unlinkPath(root any, path Path) (any, bool) {
	if len(path) == 0 {
		return nil, false
	}
	parent, ok := readPath(root, path[:len(path)-1])
	if !ok {
		return nil, false
	}
	last := path[len(path)-1]
	switch c := parent.(type) {
	case mutableMap:
		return c.remove(mapKey(last))
	case mutableList:
		i, ok := last.(int)
		if !ok {
			return nil, false
		}
		return c.removeAt(i)
	}
	return nil, false
}

func unlinkStrictPath(root any, path Path) (any, error) {
	if !existsPath(root, path) {
		return nil, noSuchAttribute(root, path)
	}
	v, _ := unlinkPath(root, path)
	return v, nil
}
