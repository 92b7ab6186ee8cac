// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

// DeferredWriter accumulates a path in one level and writes only when Set
// is called, so that chained access like
//
//	attrs.UnlessWriter(attrs.Default).Key("nginx").Key("port").Set(80)
//
// does not create anything until a value is actually written.
//
// Each call to Key returns a new writer; a DeferredWriter can be reused as
// a prefix for several writes.
type DeferredWriter struct {
	attrs *Attributes
	level Level
	path  Path
	mode  writeMode
}

// Key returns a writer for the child seg of the current path. seg is a map
// key or a list index.
func (w *DeferredWriter) Key(seg any) *DeferredWriter {
	return &DeferredWriter{
		attrs: w.attrs,
		level: w.level,
		path:  w.path.child(normalizeSegment(seg)),
		mode:  w.mode,
	}
}

// Path returns the path accumulated so far.
func (w *DeferredWriter) Path() Path {
	return w.path
}

// Set writes value at the accumulated path. It reports whether the value
// was stored, which is only false for a set-unless writer that found an
// existing value.
//
// Set with no accumulated path merges a map value into the level root.
func (w *DeferredWriter) Set(value any) bool {
	level := w.attrs.levels[w.level]
	if len(w.path) == 0 {
		raw, ok := rawMap(value)
		if !ok {
			return false
		}
		stored := false
		for _, k := range sortedKeys(raw) {
			if level.store(k, raw[k], w.mode) {
				stored = true
			}
		}
		return stored
	}
	return writePath(level, w.path, value, w.mode)
}

// Read returns what this writer's level stores at the accumulated path,
// without merging and without creating anything.
func (w *DeferredWriter) Read() any {
	return w.attrs.levels[w.level].Read(w.path...)
}
