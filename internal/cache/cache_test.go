// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package cache

import "testing"

func TestMemoGet(t *testing.T) {
	m := NewMemo[string, int]()
	calls := 0
	populate := func() int {
		calls++
		return calls
	}

	if got := m.Get("a", populate); got != 1 {
		t.Fatalf("wrong first value %d", got)
	}
	if got := m.Get("a", populate); got != 1 {
		t.Fatalf("value was recomputed: %d", got)
	}
	if got := m.Get("b", populate); got != 2 {
		t.Fatalf("wrong value for second key %d", got)
	}
	if m.Len() != 2 {
		t.Fatalf("wrong length %d", m.Len())
	}
}

func TestMemoMarkDirty(t *testing.T) {
	m := NewMemo[string, int]()
	calls := 0
	populate := func() int {
		calls++
		return calls
	}

	m.Get("a", populate)
	m.Get("b", populate)
	m.MarkDirty()
	if !m.Dirty() {
		t.Fatal("memo should be dirty")
	}
	if m.Len() != 0 {
		t.Fatalf("dirty memo should report no entries, got %d", m.Len())
	}

	if got := m.Get("a", populate); got != 3 {
		t.Fatalf("expected recompute after MarkDirty, got %d", got)
	}
	if m.Dirty() {
		t.Fatal("Get should clear the dirty flag")
	}
	// b was purged along with everything else
	if got := m.Get("b", populate); got != 4 {
		t.Fatalf("expected b to be recomputed, got %d", got)
	}
}
