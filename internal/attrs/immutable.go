// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

// ImmutableMap is a fully materialized, read-only snapshot of a merged map.
// It never changes after creation; every mutating method returns a
// *FrozenError.
type ImmutableMap struct {
	path Path
	m    map[string]any
}

// ImmutableList is the list counterpart of ImmutableMap.
type ImmutableList struct {
	path Path
	s    []any
}

var (
	_ mapNode  = (*ImmutableMap)(nil)
	_ listNode = (*ImmutableList)(nil)
)

// NewImmutableMap returns a snapshot of a plain Go map.
func NewImmutableMap(raw map[string]any) *ImmutableMap {
	return materialize(raw, nil).(*ImmutableMap)
}

// materialize deep-copies any attribute value into immutable containers.
// Merged cells are resolved once, here.
func materialize(v any, path Path) any {
	if m, ok := asMap(v); ok {
		keys := m.keys()
		ret := &ImmutableMap{
			path: path,
			m:    make(map[string]any, len(keys)),
		}
		for _, k := range keys {
			child, _ := m.lookup(k)
			ret.m[k] = materialize(child, path.child(k))
		}
		return ret
	}
	if l, ok := asList(v); ok {
		ret := &ImmutableList{
			path: path,
			s:    make([]any, l.length()),
		}
		for i := range ret.s {
			child, _ := l.index(i)
			ret.s[i] = materialize(child, path.child(i))
		}
		return ret
	}
	if raw, ok := v.(map[string]any); ok {
		return materialize(NewVividMap(raw), path)
	}
	if raw, ok := reflectMap(v); ok {
		return materialize(NewVividMap(raw), path)
	}
	if !isBasic(v) {
		if raw, ok := reflectSlice(v); ok {
			return materialize(NewVividList(raw), path)
		}
	}
	return toRaw(v)
}

func (m *ImmutableMap) Path() Path {
	return m.path
}

// Get returns the value under key, or nil. It never creates anything.
func (m *ImmutableMap) Get(key string) any {
	return m.m[key]
}

func (m *ImmutableMap) Lookup(key string) (any, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m *ImmutableMap) Has(key string) bool {
	_, ok := m.m[key]
	return ok
}

func (m *ImmutableMap) Keys() []string {
	return sortedKeys(m.m)
}

func (m *ImmutableMap) Len() int {
	return len(m.m)
}

func (m *ImmutableMap) Each(fn func(key string, value any)) {
	for _, k := range m.Keys() {
		fn(k, m.m[k])
	}
}

func (m *ImmutableMap) Exists(path ...any) bool {
	return existsPath(m, normalizePath(path))
}

func (m *ImmutableMap) Read(path ...any) any {
	v, _ := readPath(m, normalizePath(path))
	return v
}

func (m *ImmutableMap) ReadStrict(path ...any) (any, error) {
	return readStrictPath(m, normalizePath(path))
}

// ToMap returns a deep, mutable copy of the snapshot as plain Go values.
// This is the only form of attribute data that should be serialized.
func (m *ImmutableMap) ToMap() map[string]any {
	ret := make(map[string]any, len(m.m))
	for k, v := range m.m {
		ret[k] = toRaw(v)
	}
	return ret
}

func (m *ImmutableMap) Equal(other any) bool {
	return equalRaw(m, other)
}

func (m *ImmutableMap) Set(key string, _ any) error {
	return m.frozen("set", Path{key})
}

func (m *ImmutableMap) Delete(key string) error {
	return m.frozen("delete", Path{key})
}

func (m *ImmutableMap) Clear() error {
	return m.frozen("clear", nil)
}

func (m *ImmutableMap) Write(path Path, _ any) error {
	return m.frozen("write", path)
}

func (m *ImmutableMap) WriteStrict(path Path, _ any) error {
	return m.frozen("write", path)
}

func (m *ImmutableMap) Unlink(path ...any) error {
	return m.frozen("unlink", path)
}

func (m *ImmutableMap) frozen(op string, path Path) error {
	return &FrozenError{Op: op, Path: m.path.append(normalizePath(path))}
}

func (m *ImmutableMap) lookup(key string) (any, bool) {
	return m.Lookup(key)
}

func (m *ImmutableMap) keys() []string {
	return m.Keys()
}

func (l *ImmutableList) Path() Path {
	return l.path
}

// Get returns the element at i, or nil if i is out of range.
func (l *ImmutableList) Get(i int) any {
	v, _ := l.Lookup(i)
	return v
}

func (l *ImmutableList) Lookup(i int) (any, bool) {
	if i < 0 || i >= len(l.s) {
		return nil, false
	}
	return l.s[i], true
}

func (l *ImmutableList) Len() int {
	return len(l.s)
}

func (l *ImmutableList) Each(fn func(i int, value any)) {
	for i, v := range l.s {
		fn(i, v)
	}
}

func (l *ImmutableList) Exists(path ...any) bool {
	return existsPath(l, normalizePath(path))
}

func (l *ImmutableList) Read(path ...any) any {
	v, _ := readPath(l, normalizePath(path))
	return v
}

func (l *ImmutableList) ReadStrict(path ...any) (any, error) {
	return readStrictPath(l, normalizePath(path))
}

func (l *ImmutableList) ToSlice() []any {
	ret := make([]any, len(l.s))
	for i, v := range l.s {
		ret[i] = toRaw(v)
	}
	return ret
}

func (l *ImmutableList) Equal(other any) bool {
	return equalRaw(l, other)
}

func (l *ImmutableList) Set(i int, _ any) error {
	return l.frozen("set", Path{i})
}

func (l *ImmutableList) Append(...any) error {
	return l.frozen("append", nil)
}

func (l *ImmutableList) Delete(i int) error {
	return l.frozen("delete", Path{i})
}

func (l *ImmutableList) frozen(op string, path Path) error {
	return &FrozenError{Op: op, Path: l.path.append(path)}
}

func (l *ImmutableList) index(i int) (any, bool) {
	return l.Lookup(i)
}

func (l *ImmutableList) length() int {
	return len(l.s)
}
