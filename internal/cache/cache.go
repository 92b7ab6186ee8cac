// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package cache holds small memoization helpers for values that are
// expensive to compute and cheap to invalidate.
package cache

// Memo remembers the result of a populate function per key until it is
// marked dirty. Marking dirty is O(1); the stale entries are discarded
// lazily by the next Get.
//
// Memo is not safe for concurrent use.
type Memo[K comparable, V any] struct {
	entries map[K]*entry[V]
	dirty   bool
}

type entry[V any] struct {
	populated bool
	value     V
}

func NewMemo[K comparable, V any]() *Memo[K, V] {
	return &Memo[K, V]{
		entries: map[K]*entry[V]{},
	}
}

// Get returns the remembered value for key, calling populate to compute it
// if there is none or if the memo was marked dirty since it was computed.
func (m *Memo[K, V]) Get(key K, populate func() V) V {
	if m.dirty {
		clear(m.entries)
		m.dirty = false
	}

	e, ok := m.entries[key]
	if !ok {
		e = &entry[V]{}
		m.entries[key] = e
	}
	if !e.populated {
		e.value = populate()
		e.populated = true
	}
	return e.value
}

// MarkDirty invalidates every remembered value.
func (m *Memo[K, V]) MarkDirty() {
	m.dirty = true
}

// Dirty reports whether the memo has been invalidated and not yet
// repopulated.
func (m *Memo[K, V]) Dirty() bool {
	return m.dirty
}

// Len returns the number of keys currently remembered, not counting
// entries that are pending a lazy purge.
func (m *Memo[K, V]) Len() int {
	if m.dirty {
		return 0
	}
	n := 0
	for _, e := range m.entries {
		if e.populated {
			n++
		}
	}
	return n
}
