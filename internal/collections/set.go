// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package collections

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Set is a container that can hold each item only once and has a fast lookup time.
//
// You can define a new set like this:
//
//	var levelNames = collections.Set[string]{
//	    "default": {},
//	    "normal":  {},
//	}
type Set[T comparable] map[T]struct{}

// NewSet returns a set holding the given values.
func NewSet[T comparable](values ...T) Set[T] {
	s := make(Set[T], len(values))
	s.Add(values...)
	return s
}

// Has returns true if the item exists in the Set
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Add inserts the given values, ignoring those already present.
func (s Set[T]) Add(values ...T) {
	for _, v := range values {
		s[v] = struct{}{}
	}
}

// String creates a comma-separated list of all values in the set.
func (s Set[T]) String() string {
	parts := make([]string, 0, len(s))
	for v := range s {
		parts = append(parts, fmt.Sprintf("%v", v))
	}
	slices.Sort(parts)
	return strings.Join(parts, ", ")
}

// Sorted returns the members of an ordered set in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	return slices.Sorted(maps.Keys(s))
}
