// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import "slices"

// Write stores value at path in the given level, creating or replacing
// intermediates as needed.
func (a *Attributes) Write(l Level, path Path, value any) {
	a.levels[l].Write(path, value)
}

// WriteStrict is like Write but fails with an *AttributeTypeMismatchError,
// changing nothing, when an existing intermediate is not a container the
// next segment can address.
func (a *Attributes) WriteStrict(l Level, path Path, value any) error {
	return a.levels[l].WriteStrict(path, value)
}

// WriteUnless stores value at path in the given level only if that level
// holds nothing, or nil, there. It reports whether the value was stored.
func (a *Attributes) WriteUnless(l Level, path Path, value any) bool {
	return a.levels[l].WriteUnless(path, value)
}

func (a *Attributes) SetDefault(path Path, value any)  { a.Write(Default, path, value) }
func (a *Attributes) SetNormal(path Path, value any)   { a.Write(Normal, path, value) }
func (a *Attributes) SetOverride(path Path, value any) { a.Write(Override, path, value) }

func (a *Attributes) DefaultUnless(path Path, value any) bool {
	return a.WriteUnless(Default, path, value)
}

func (a *Attributes) NormalUnless(path Path, value any) bool {
	return a.WriteUnless(Normal, path, value)
}

func (a *Attributes) OverrideUnless(path Path, value any) bool {
	return a.WriteUnless(Override, path, value)
}

// Writer returns a deferred writer for the given level, for building a path
// one segment at a time before writing.
func (a *Attributes) Writer(l Level) *DeferredWriter {
	return &DeferredWriter{attrs: a, level: l, mode: writeAlways}
}

// UnlessWriter is like Writer but its Set only stores where nothing is
// stored yet.
func (a *Attributes) UnlessWriter(l Level) *DeferredWriter {
	return &DeferredWriter{attrs: a, level: l, mode: writeUnless}
}

// SetForceDefault removes path from every default-group level and then
// writes value at force_default, so that it is the only default left.
func (a *Attributes) SetForceDefault(path Path, value any) {
	a.clearGroup(DefaultLevels(), ForceDefault, path)
	a.Write(ForceDefault, path, value)
}

// SetForceOverride removes path from every override-group level and then
// writes value at force_override.
func (a *Attributes) SetForceOverride(path Path, value any) {
	a.clearGroup(OverrideLevels(), ForceOverride, path)
	a.Write(ForceOverride, path, value)
}

// clearGroup unlinks path from each level in group other than keep. Every
// level is unlinked on its own, regardless of what the merged group holds
// above path.
func (a *Attributes) clearGroup(group []Level, keep Level, path Path) {
	a.logger.Trace("clearing attribute before forced write", "path", path, "level", keep)
	for _, l := range group {
		if l != keep {
			a.levels[l].Unlink(path...)
		}
	}
}

// Rm removes path from every level except automatic and returns what the
// merged value there was beforehand, automatic included. It does nothing
// and returns nil when the merged parent of path is not a map.
func (a *Attributes) Rm(path ...any) any {
	levels := append(DefaultLevels(), Normal)
	return a.rm(allLevels, append(levels, OverrideLevels()...), path)
}

// RmDefault is like Rm restricted to the default-group levels.
func (a *Attributes) RmDefault(path ...any) any {
	return a.rm(setOf(DefaultLevels()...), DefaultLevels(), path)
}

// RmNormal is like Rm restricted to the normal level.
func (a *Attributes) RmNormal(path ...any) any {
	return a.rm(setOf(Normal), []Level{Normal}, path)
}

// RmOverride is like Rm restricted to the override-group levels.
func (a *Attributes) RmOverride(path ...any) any {
	return a.rm(setOf(OverrideLevels()...), OverrideLevels(), path)
}

// rm reads the previous value through the levels in view and unlinks path
// from levels.
func (a *Attributes) rm(view levelSet, levels []Level, segs []any) any {
	path := normalizePath(segs)
	if len(path) == 0 {
		return nil
	}
	scope := a.rootCell(view)
	parent, ok := readPath(scope, path[:len(path)-1])
	if !ok || !isMapValue(parent) {
		return nil
	}
	prev, _ := readPath(parent, path[len(path)-1:])
	prev = toRaw(prev)

	a.logger.Trace("removing attribute", "path", path, "levels", levels)
	for _, l := range levels {
		a.levels[l].Unlink(path...)
	}
	return prev
}

// GroupView is a read-only merged view over a subset of the levels of an
// Attributes. It reads the level containers directly, so it always sees
// the latest writes.
type GroupView struct {
	attrs *Attributes
	mask  levelSet
}

// CombinedDefault returns the merged view of the default-group levels.
func (a *Attributes) CombinedDefault() *GroupView {
	return &GroupView{attrs: a, mask: setOf(DefaultLevels()...)}
}

// CombinedOverride returns the merged view of the override-group levels.
func (a *Attributes) CombinedOverride() *GroupView {
	return &GroupView{attrs: a, mask: setOf(OverrideLevels()...)}
}

// Cell returns the merged cell at the root of the view.
func (v *GroupView) Cell() *Cell {
	return v.attrs.rootCell(v.mask)
}

func (v *GroupView) Levels() []Level {
	ret := v.mask.descending()
	slices.Reverse(ret)
	return ret
}

func (v *GroupView) Exists(path ...any) bool {
	return v.Cell().Exists(path...)
}

// Read returns the merged value at path as an immutable snapshot or scalar.
func (v *GroupView) Read(path ...any) any {
	val, ok := readPath(v.Cell(), normalizePath(path))
	if !ok {
		return nil
	}
	return materialize(val, normalizePath(path))
}

func (v *GroupView) ReadStrict(path ...any) (any, error) {
	p := normalizePath(path)
	val, err := readStrictPath(v.Cell(), p)
	if err != nil {
		return nil, err
	}
	return materialize(val, p), nil
}

func (v *GroupView) Keys() []string {
	return v.Cell().Keys()
}

func (v *GroupView) ToMap() map[string]any {
	return v.Cell().ToMap()
}
