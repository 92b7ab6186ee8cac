// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

// owner is implemented by the root that a per-level tree belongs to. Every
// mutation anywhere in the tree reports to it.
type owner interface {
	invalidate()
	traced(path Path) bool
	recordTrace(entry TraceEntry)
}

// nodeInfo is embedded by every vivid container: the owning root (nil for
// detached containers), the precedence level, and the container's own path
// from the level root.
type nodeInfo struct {
	owner owner
	level Level
	path  Path
}

func (n *nodeInfo) invalidate() {
	if n.owner != nil {
		n.owner.invalidate()
	}
}

func (n *nodeInfo) childInfo(seg any) nodeInfo {
	return nodeInfo{
		owner: n.owner,
		level: n.level,
		path:  n.path.child(seg),
	}
}

// trace records a store of the child seg, computing the recorded value only
// when tracing is enabled for that path.
func (n *nodeInfo) trace(seg any, value func() any, cleared, ignored bool) {
	if n.owner == nil {
		return
	}
	p := n.path.child(seg)
	if !n.owner.traced(p) {
		return
	}
	n.owner.recordTrace(TraceEntry{
		Level:           n.level,
		Path:            p.TracePath(),
		Value:           value(),
		ChildrenCleared: cleared,
		Ignored:         ignored,
	})
}

// VividMap is the mutable, autovivifying map container used for every
// precedence level. Reading a missing key through Get creates it; use
// Lookup or Exists to test for presence without growing the tree.
//
// All values stored in a VividMap are scalars, *VividMap or *VividList:
// maps and slices are converted on the way in.
type VividMap struct {
	nodeInfo
	m map[string]any
}

var _ mutableMap = (*VividMap)(nil)

// NewVividMap returns a container detached from any Attributes, populated
// with a converted copy of raw.
func NewVividMap(raw map[string]any) *VividMap {
	return newVividMap(raw, nodeInfo{})
}

func newVividMap(raw map[string]any, info nodeInfo) *VividMap {
	m := &VividMap{
		nodeInfo: info,
		m:        make(map[string]any, len(raw)),
	}
	for k, v := range raw {
		m.m[k] = convertValue(v, info.childInfo(k))
	}
	return m
}

// Level returns the precedence level the container belongs to. It is
// meaningless for detached containers.
func (m *VividMap) Level() Level {
	return m.level
}

// Path returns the container's path from its level root.
func (m *VividMap) Path() Path {
	return m.path
}

// Get returns the value stored under key, first storing an empty map under
// it if the key is absent.
func (m *VividMap) Get(key string) any {
	return m.vivify(key)
}

// Map returns the map stored under key, autovivifying it when absent. It
// returns nil if the key holds something other than a map.
func (m *VividMap) Map(key string) *VividMap {
	child, _ := m.vivify(key).(*VividMap)
	return child
}

// Lookup returns the value stored under key without autovivifying.
func (m *VividMap) Lookup(key string) (any, bool) {
	v, ok := m.m[key]
	return v, ok
}

func (m *VividMap) Has(key string) bool {
	_, ok := m.m[key]
	return ok
}

// Keys returns the keys of the map in sorted order.
func (m *VividMap) Keys() []string {
	return sortedKeys(m.m)
}

func (m *VividMap) Len() int {
	return len(m.m)
}

// Each calls fn for every entry in key order.
func (m *VividMap) Each(fn func(key string, value any)) {
	for _, k := range m.Keys() {
		fn(k, m.m[k])
	}
}

// Set stores value under key, replacing whatever was there.
func (m *VividMap) Set(key string, value any) {
	m.store(key, value, writeAlways)
}

// SetUnless stores value under key only if the key is absent or holds nil.
// It reports whether the value was stored.
func (m *VividMap) SetUnless(key string, value any) bool {
	return m.store(key, value, writeUnless)
}

// Delete removes key, returning the value it held.
func (m *VividMap) Delete(key string) (any, bool) {
	return m.remove(key)
}

// Clear removes every key.
func (m *VividMap) Clear() {
	cleared := len(m.m) > 0
	m.invalidate()
	clear(m.m)
	m.traceSelf(cleared)
}

// Replace discards the current contents and stores a converted copy of raw.
func (m *VividMap) Replace(raw map[string]any) {
	cleared := len(m.m) > 0
	m.invalidate()
	m.m = make(map[string]any, len(raw))
	for k, v := range raw {
		m.m[k] = convertValue(v, m.childInfo(k))
	}
	m.traceSelf(cleared)
}

// Merge deep-merges raw into the container: maps present on both sides
// are merged key by key, everything else in raw replaces what is stored.
func (m *VividMap) Merge(raw map[string]any) {
	for _, k := range sortedKeys(raw) {
		v := raw[k]
		if sub, ok := rawMap(v); ok {
			if existing, ok := m.m[k].(*VividMap); ok {
				existing.Merge(sub)
				continue
			}
		}
		m.Set(k, v)
	}
}

// ToMap returns a deep, unwrapped copy of the container.
func (m *VividMap) ToMap() map[string]any {
	ret := make(map[string]any, len(m.m))
	for k, v := range m.m {
		ret[k] = toRaw(v)
	}
	return ret
}

// Dup returns a deep copy detached from any Attributes.
func (m *VividMap) Dup() *VividMap {
	return NewVividMap(m.ToMap())
}

// Equal compares the container's contents with any attribute value.
func (m *VividMap) Equal(other any) bool {
	return equalRaw(m, other)
}

func (m *VividMap) Exists(path ...any) bool {
	return existsPath(m, normalizePath(path))
}

// Read returns the value at path, or nil if it does not exist.
func (m *VividMap) Read(path ...any) any {
	v, _ := readPath(m, normalizePath(path))
	return v
}

// ReadStrict is like Read but returns a *NoSuchAttributeError when the path
// does not exist.
func (m *VividMap) ReadStrict(path ...any) (any, error) {
	return readStrictPath(m, normalizePath(path))
}

// Write stores value at path, creating missing intermediate maps and
// replacing intermediates that cannot hold the next segment with empty
// maps.
func (m *VividMap) Write(path Path, value any) {
	writePath(m, normalizePath(path), value, writeAlways)
}

// WriteUnless is like Write but leaves an existing non-nil value at path in
// place. It reports whether the value was stored.
func (m *VividMap) WriteUnless(path Path, value any) bool {
	return writePath(m, normalizePath(path), value, writeUnless)
}

// WriteStrict is like Write but returns an *AttributeTypeMismatchError,
// leaving the tree unchanged, when an existing intermediate cannot hold the
// next segment.
func (m *VividMap) WriteStrict(path Path, value any) error {
	path = normalizePath(path)
	if len(path) == 0 {
		panic("attrs: write requires at least one path segment")
	}
	if at, found, ok := validateWrite(m, path); !ok {
		return &AttributeTypeMismatchError{
			Path:     m.path.append(path),
			At:       m.path.append(at),
			Level:    m.level,
			HasLevel: m.owner != nil,
			Found:    kindName(found),
		}
	}
	writePath(m, path, value, writeAlways)
	return nil
}

// Unlink removes the last segment of path from the container addressed by
// the rest of it and returns the removed value. It does nothing and returns
// nil if that container does not exist.
func (m *VividMap) Unlink(path ...any) any {
	v, _ := unlinkPath(m, normalizePath(path))
	return v
}

// UnlinkStrict is like Unlink but returns a *NoSuchAttributeError unless the
// full path exists.
func (m *VividMap) UnlinkStrict(path ...any) (any, error) {
	return unlinkStrictPath(m, normalizePath(path))
}

func (m *VividMap) lookup(key string) (any, bool) {
	return m.Lookup(key)
}

func (m *VividMap) keys() []string {
	return m.Keys()
}

func (m *VividMap) vivify(key string) any {
	if v, ok := m.m[key]; ok {
		return v
	}
	m.store(key, map[string]any{}, writeAlways)
	return m.m[key]
}

func (m *VividMap) store(key string, value any, mode writeMode) bool {
	prev, exists := m.m[key]
	if mode == writeUnless && exists && prev != nil {
		m.trace(key, func() any { return toRaw(value) }, false, true)
		return false
	}
	m.invalidate()
	conv := convertValue(value, m.childInfo(key))
	m.m[key] = conv
	m.trace(key, func() any { return toRaw(conv) }, exists && hasChildren(prev), false)
	return true
}

func (m *VividMap) remove(key string) (any, bool) {
	v, ok := m.m[key]
	if !ok {
		return nil, false
	}
	m.invalidate()
	delete(m.m, key)
	return v, true
}

// traceSelf records a wholesale change of this container's contents.
func (m *VividMap) traceSelf(cleared bool) {
	if m.owner == nil || !m.owner.traced(m.path) {
		return
	}
	m.owner.recordTrace(TraceEntry{
		Level:           m.level,
		Path:            m.path.TracePath(),
		Value:           m.ToMap(),
		ChildrenCleared: cleared,
	})
}
