// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"reflect"
	"slices"
)

// VividList is the mutable list container used inside per-level trees.
//
// Every mutating method invalidates the owning root's merge cache before it
// changes anything. The mutating methods are exactly those listed in
// listMutators; any new mutator must be added there too so the cache tests
// cover it.
type VividList struct {
	nodeInfo
	s []any
}

var _ mutableList = (*VividList)(nil)

// listMutators names every method of VividList that changes its contents.
var listMutators = []string{
	"Append",
	"Clear",
	"Compact",
	"Concat",
	"Delete",
	"DeleteValue",
	"Fill",
	"Insert",
	"Pop",
	"Prepend",
	"Replace",
	"Reverse",
	"Set",
	"Shift",
	"Sort",
	"Uniq",
	"Unlink",
	"UnlinkStrict",
	"Write",
	"WriteStrict",
}

// NewVividList returns a list detached from any Attributes, populated with
// a converted copy of raw.
func NewVividList(raw []any) *VividList {
	return newVividList(raw, nodeInfo{})
}

func newVividList(raw []any, info nodeInfo) *VividList {
	l := &VividList{
		nodeInfo: info,
		s:        make([]any, len(raw)),
	}
	for i, v := range raw {
		l.s[i] = convertValue(v, info.childInfo(i))
	}
	return l
}

func (l *VividList) Level() Level {
	return l.level
}

func (l *VividList) Path() Path {
	return l.path
}

func (l *VividList) Len() int {
	return len(l.s)
}

// Get returns the element at i, or nil if i is out of range. It never
// grows the list.
func (l *VividList) Get(i int) any {
	v, _ := l.Lookup(i)
	return v
}

// Lookup returns the element at i and whether i is in range.
func (l *VividList) Lookup(i int) (any, bool) {
	if i < 0 || i >= len(l.s) {
		return nil, false
	}
	return l.s[i], true
}

// Each calls fn for every element in order.
func (l *VividList) Each(fn func(i int, value any)) {
	for i, v := range l.s {
		fn(i, v)
	}
}

// ToSlice returns a deep, unwrapped copy of the list.
func (l *VividList) ToSlice() []any {
	ret := make([]any, len(l.s))
	for i, v := range l.s {
		ret[i] = toRaw(v)
	}
	return ret
}

// Dup returns a deep copy detached from any Attributes.
func (l *VividList) Dup() *VividList {
	return NewVividList(l.ToSlice())
}

func (l *VividList) Equal(other any) bool {
	return equalRaw(l, other)
}

func (l *VividList) Exists(path ...any) bool {
	return existsPath(l, normalizePath(path))
}

func (l *VividList) Read(path ...any) any {
	v, _ := readPath(l, normalizePath(path))
	return v
}

func (l *VividList) ReadStrict(path ...any) (any, error) {
	return readStrictPath(l, normalizePath(path))
}

// Set stores value at index i. Setting past the end pads the list with nil.
// Negative indexes are ignored.
func (l *VividList) Set(i int, value any) {
	l.storeAt(i, value, writeAlways)
}

// Append adds values to the end of the list.
func (l *VividList) Append(values ...any) {
	l.invalidate()
	for _, v := range values {
		i := len(l.s)
		conv := convertValue(v, l.childInfo(i))
		l.s = append(l.s, conv)
		l.trace(i, func() any { return toRaw(conv) }, false, false)
	}
}

// Concat appends every element of other, which may be any list-shaped
// value.
func (l *VividList) Concat(other any) {
	raw, ok := reflectSlice(toRaw(other))
	if !ok {
		return
	}
	l.Append(raw...)
}

// Prepend adds values to the start of the list.
func (l *VividList) Prepend(values ...any) {
	l.Insert(0, values...)
}

// Insert adds values before index i. An index past the end appends.
func (l *VividList) Insert(i int, values ...any) {
	if i < 0 {
		return
	}
	l.invalidate()
	if i > len(l.s) {
		i = len(l.s)
	}
	conv := make([]any, len(values))
	for j, v := range values {
		conv[j] = convertValue(v, nodeInfo{})
	}
	l.s = slices.Insert(l.s, i, conv...)
	l.reattach(i)
	for j := range conv {
		idx := i + j
		l.trace(idx, func() any { return toRaw(l.s[idx]) }, false, false)
	}
}

// Delete removes the element at index i.
func (l *VividList) Delete(i int) (any, bool) {
	return l.removeAt(i)
}

// DeleteValue removes every element equal to value and returns how many
// were removed.
func (l *VividList) DeleteValue(value any) int {
	l.invalidate()
	want := toRaw(value)
	before := len(l.s)
	l.s = slices.DeleteFunc(l.s, func(v any) bool {
		return reflect.DeepEqual(toRaw(v), want)
	})
	l.reattach(0)
	return before - len(l.s)
}

// Pop removes and returns the last element.
func (l *VividList) Pop() (any, bool) {
	return l.removeAt(len(l.s) - 1)
}

// Shift removes and returns the first element.
func (l *VividList) Shift() (any, bool) {
	return l.removeAt(0)
}

func (l *VividList) Clear() {
	cleared := len(l.s) > 0
	l.invalidate()
	clear(l.s)
	l.s = l.s[:0]
	l.traceSelf(cleared)
}

// Replace discards the current contents and stores a converted copy of raw.
func (l *VividList) Replace(raw []any) {
	cleared := len(l.s) > 0
	l.invalidate()
	l.s = make([]any, len(raw))
	for i, v := range raw {
		l.s[i] = convertValue(v, l.childInfo(i))
	}
	l.traceSelf(cleared)
}

// Sort sorts the list in place using cmp, which receives the stored
// elements.
func (l *VividList) Sort(cmp func(a, b any) int) {
	l.invalidate()
	slices.SortStableFunc(l.s, cmp)
	l.reattach(0)
}

func (l *VividList) Reverse() {
	l.invalidate()
	slices.Reverse(l.s)
	l.reattach(0)
}

// Compact removes every nil element.
func (l *VividList) Compact() {
	l.invalidate()
	l.s = slices.DeleteFunc(l.s, func(v any) bool {
		return v == nil
	})
	l.reattach(0)
}

// Uniq removes elements equal to an earlier element.
func (l *VividList) Uniq() {
	l.invalidate()
	kept := l.s[:0]
	var seen []any
	for _, v := range l.s {
		raw := toRaw(v)
		if slices.ContainsFunc(seen, func(s any) bool { return reflect.DeepEqual(s, raw) }) {
			continue
		}
		seen = append(seen, raw)
		kept = append(kept, v)
	}
	clear(l.s[len(kept):])
	l.s = kept
	l.reattach(0)
}

// Fill sets every element to value.
func (l *VividList) Fill(value any) {
	cleared := slices.ContainsFunc(l.s, hasChildren)
	l.invalidate()
	for i := range l.s {
		l.s[i] = convertValue(value, l.childInfo(i))
	}
	l.traceSelf(cleared)
}

// Write stores value at path below the list. The first segment must be an
// index; otherwise nothing is written.
func (l *VividList) Write(path Path, value any) {
	writePath(l, normalizePath(path), value, writeAlways)
}

func (l *VividList) WriteStrict(path Path, value any) error {
	path = normalizePath(path)
	if len(path) == 0 {
		panic("attrs: write requires at least one path segment")
	}
	if at, found, ok := validateWrite(l, path); !ok {
		return &AttributeTypeMismatchError{
			Path:     l.path.append(path),
			At:       l.path.append(at),
			Level:    l.level,
			HasLevel: l.owner != nil,
			Found:    kindName(found),
		}
	}
	writePath(l, path, value, writeAlways)
	return nil
}

func (l *VividList) Unlink(path ...any) any {
	v, _ := unlinkPath(l, normalizePath(path))
	return v
}

func (l *VividList) UnlinkStrict(path ...any) (any, error) {
	return unlinkStrictPath(l, normalizePath(path))
}

func (l *VividList) index(i int) (any, bool) {
	return l.Lookup(i)
}

func (l *VividList) length() int {
	return len(l.s)
}

func (l *VividList) storeAt(i int, value any, mode writeMode) bool {
	if i < 0 {
		return false
	}
	var prev any
	exists := i < len(l.s)
	if exists {
		prev = l.s[i]
	}
	if mode == writeUnless && exists && prev != nil {
		l.trace(i, func() any { return toRaw(value) }, false, true)
		return false
	}
	l.invalidate()
	for len(l.s) <= i {
		l.s = append(l.s, nil)
	}
	conv := convertValue(value, l.childInfo(i))
	l.s[i] = conv
	l.trace(i, func() any { return toRaw(conv) }, exists && hasChildren(prev), false)
	return true
}

func (l *VividList) removeAt(i int) (any, bool) {
	if i < 0 || i >= len(l.s) {
		return nil, false
	}
	l.invalidate()
	v := l.s[i]
	l.s = slices.Delete(l.s, i, i+1)
	l.reattach(i)
	return v, true
}

// reattach refreshes the owner, level and path of the container elements
// from index from onward, after elements have moved.
func (l *VividList) reattach(from int) {
	for i := from; i < len(l.s); i++ {
		switch c := l.s[i].(type) {
		case *VividMap:
			c.relocate(l.childInfo(i))
		case *VividList:
			c.relocate(l.childInfo(i))
		}
	}
}

func (l *VividList) relocate(info nodeInfo) {
	l.nodeInfo = info
	l.reattach(0)
}

func (m *VividMap) relocate(info nodeInfo) {
	m.nodeInfo = info
	for k, v := range m.m {
		switch c := v.(type) {
		case *VividMap:
			c.relocate(m.childInfo(k))
		case *VividList:
			c.relocate(m.childInfo(k))
		}
	}
}

func (l *VividList) traceSelf(cleared bool) {
	if l.owner == nil || !l.owner.traced(l.path) {
		return
	}
	l.owner.recordTrace(TraceEntry{
		Level:           l.level,
		Path:            l.path.TracePath(),
		Value:           l.ToSlice(),
		ChildrenCleared: cleared,
	})
}
