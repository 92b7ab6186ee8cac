// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"fmt"
	"slices"

	"github.com/opentofu/nodeattrs/internal/collections"
)

type cellKind int

const (
	cellScalar cellKind = iota
	cellMap
	cellList
)

// Cell is the merged view of one path across a set of precedence levels.
//
// A cell holds, for each level in its mask, whatever that level stores at
// the cell's path. Child access is lazy: looking up a key builds a new cell
// over just the levels that take part in the merge at this path, so a value
// reached by walking cell to cell is always the same as the value the full
// merge would produce at that path.
//
// Cells read the per-level containers directly and are not cached. The
// values a cell captured for its own path are fixed when it is created, so a
// cell should not be kept across writes to its levels.
type Cell struct {
	path   Path
	values [numLevels]any
	mask   levelSet

	kind  cellKind
	top   Level
	merge []Level // levels taking part in the merge, lowest first
}

// newCell resolves the merge at path. values holds, for each level in
// mask, the value that level stores at path. mask must not be empty.
func newCell(path Path, values [numLevels]any, mask levelSet) *Cell {
	c := &Cell{
		path:   path,
		values: values,
		mask:   mask,
	}
	top, ok := mask.highest()
	if !ok {
		panic("attrs: cell with no contributing levels")
	}
	c.top = top

	switch {
	case isMapValue(values[top]):
		c.kind = cellMap
		for _, l := range mask.descending() {
			if !isMapValue(values[l]) {
				break
			}
			c.merge = append(c.merge, l)
		}
	case isListValue(values[top]):
		c.kind = cellList
		if top == Automatic || top == Normal {
			c.merge = []Level{top}
			break
		}
		for _, l := range mask.descending() {
			if l.Group() != top.Group() || !isListValue(values[l]) {
				break
			}
			c.merge = append(c.merge, l)
		}
	default:
		c.kind = cellScalar
		c.merge = []Level{top}
	}
	slices.Reverse(c.merge)
	return c
}

// resolveChild turns the per-level values found under one child segment
// into the value a reader sees: a scalar when the highest contributing
// level stores a scalar, otherwise a nested cell.
func resolveChild(path Path, values [numLevels]any, mask levelSet) (any, bool) {
	top, ok := mask.highest()
	if !ok {
		return nil, false
	}
	v := values[top]
	if !isMapValue(v) && !isListValue(v) {
		return v, true
	}
	return newCell(path, values, mask), true
}

func isMapValue(v any) bool {
	_, ok := asMap(v)
	return ok
}

func isListValue(v any) bool {
	_, ok := asList(v)
	return ok
}

func (c *Cell) Path() Path {
	return c.path
}

func (c *Cell) IsMap() bool {
	return c != nil && c.kind == cellMap
}

func (c *Cell) IsList() bool {
	return c != nil && c.kind == cellList
}

// Levels returns the levels that take part in the merge at this path,
// lowest first.
func (c *Cell) Levels() []Level {
	return slices.Clone(c.merge)
}

// Value returns the scalar held by a scalar cell, or nil for containers.
func (c *Cell) Value() any {
	if c.kind != cellScalar {
		return nil
	}
	return c.values[c.top]
}

// Keys returns the union of keys across the merged levels, sorted. It is
// empty unless the cell is a map.
func (c *Cell) Keys() []string {
	return c.keys()
}

// Len returns the number of keys of a map cell, the number of elements of a
// list cell, or zero.
func (c *Cell) Len() int {
	switch c.kind {
	case cellMap:
		return len(c.keys())
	case cellList:
		return c.length()
	}
	return 0
}

func (c *Cell) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// Lookup returns the merged value under key of a map cell.
func (c *Cell) Lookup(key string) (any, bool) {
	return c.lookup(key)
}

// Index returns the merged element at i of a list cell.
func (c *Cell) Index(i int) (any, bool) {
	return c.index(i)
}

// Each calls fn for every child, in key order for a map cell or index order
// for a list cell. The segment passed to fn is a string or an int
// respectively.
func (c *Cell) Each(fn func(seg any, value any)) {
	switch c.kind {
	case cellMap:
		for _, k := range c.keys() {
			v, _ := c.lookup(k)
			fn(k, v)
		}
	case cellList:
		for i, v := range c.elements() {
			fn(i, v)
		}
	}
}

func (c *Cell) Exists(path ...any) bool {
	return existsPath(c, normalizePath(path))
}

func (c *Cell) Read(path ...any) any {
	v, _ := readPath(c, normalizePath(path))
	return v
}

func (c *Cell) ReadStrict(path ...any) (any, error) {
	return readStrictPath(c, normalizePath(path))
}

// Snapshot materializes the cell into an immutable value: an *ImmutableMap,
// an *ImmutableList, or a copy of the scalar.
func (c *Cell) Snapshot() any {
	return materialize(c, c.path)
}

// ToRaw returns the fully merged value as plain Go maps, slices and
// scalars.
func (c *Cell) ToRaw() any {
	switch c.kind {
	case cellMap:
		return c.ToMap()
	case cellList:
		elems := c.elements()
		ret := make([]any, len(elems))
		for i, v := range elems {
			ret[i] = toRaw(v)
		}
		return ret
	}
	return toRaw(c.values[c.top])
}

// ToMap returns the merged map as plain Go values, or nil if the cell is
// not a map.
func (c *Cell) ToMap() map[string]any {
	if c.kind != cellMap {
		return nil
	}
	ret := map[string]any{}
	for _, k := range c.keys() {
		v, _ := c.lookup(k)
		ret[k] = toRaw(v)
	}
	return ret
}

func (c *Cell) Equal(other any) bool {
	return equalRaw(c, other)
}

func (c *Cell) String() string {
	return fmt.Sprintf("merged %s at %s from %v", kindName(c), c.path, c.merge)
}

func (c *Cell) lookup(key string) (any, bool) {
	if c.kind != cellMap {
		return nil, false
	}
	var (
		values [numLevels]any
		mask   levelSet
	)
	for _, l := range c.merge {
		m, _ := asMap(c.values[l])
		if v, ok := m.lookup(key); ok {
			values[l] = v
			mask |= setOf(l)
		}
	}
	return resolveChild(c.path.child(key), values, mask)
}

func (c *Cell) keys() []string {
	if c.kind != cellMap {
		return nil
	}
	seen := collections.NewSet[string]()
	for _, l := range c.merge {
		m, _ := asMap(c.values[l])
		seen.Add(m.keys()...)
	}
	return collections.Sorted(seen)
}

func (c *Cell) index(i int) (any, bool) {
	elems := c.elements()
	if i < 0 || i >= len(elems) {
		return nil, false
	}
	return elems[i], true
}

func (c *Cell) length() int {
	n := 0
	for _, l := range c.merge {
		if list, ok := asList(c.values[l]); ok {
			n += list.length()
		}
	}
	return n
}

// elements concatenates the lists of the merged levels. Container elements
// become cells scoped to the level they came from.
func (c *Cell) elements() []any {
	if c.kind != cellList {
		return nil
	}
	var ret []any
	for _, l := range c.merge {
		list, _ := asList(c.values[l])
		for j := range list.length() {
			v, _ := list.index(j)
			if isMapValue(v) || isListValue(v) {
				var values [numLevels]any
				values[l] = v
				v = newCell(c.path.child(len(ret)), values, setOf(l))
			}
			ret = append(ret, v)
		}
	}
	return ret
}
