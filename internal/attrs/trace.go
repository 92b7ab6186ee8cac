// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"fmt"
	"strings"

	"github.com/opentofu/nodeattrs/internal/collections"
)

// TraceMode selects which writes an Attributes records in its trace log.
type TraceMode int

const (
	TraceOff TraceMode = iota
	TraceAll
	TracePath
)

func (m TraceMode) String() string {
	switch m {
	case TraceOff:
		return "off"
	case TraceAll:
		return "all"
	case TracePath:
		return "path"
	default:
		return fmt.Sprintf("TraceMode(%d)", int(m))
	}
}

// TraceConfig configures the diagnostic trace of an Attributes. The zero
// value disables tracing.
type TraceConfig struct {
	Mode TraceMode

	// Path is the slash-separated path, such as "/a/b", that is traced in
	// TracePath mode. Writes to the path itself, to anything below it and
	// to any of its ancestors are recorded.
	Path string
}

// ParseTraceConfig parses the textual form of a trace setting: "off" (or
// empty), "all", or a path written either as "/a/b" or as "a.b".
func ParseTraceConfig(s string) (TraceConfig, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "", "off":
		return TraceConfig{Mode: TraceOff}, nil
	case "all":
		return TraceConfig{Mode: TraceAll}, nil
	}

	path, err := ParsePath(s)
	if err != nil {
		return TraceConfig{}, fmt.Errorf("invalid trace setting: %w", err)
	}
	if len(path) == 0 {
		return TraceConfig{}, fmt.Errorf("invalid trace setting %q: use \"all\" to trace the whole tree", s)
	}
	return TraceConfig{Mode: TracePath, Path: path.TracePath()}, nil
}

func (c TraceConfig) String() string {
	if c.Mode == TracePath {
		return c.Path
	}
	return c.Mode.String()
}

func (c TraceConfig) matches(path string) bool {
	switch c.Mode {
	case TraceAll:
		return true
	case TracePath:
		return path == "/" ||
			path == c.Path ||
			strings.HasPrefix(path, c.Path+"/") ||
			strings.HasPrefix(c.Path, path+"/")
	default:
		return false
	}
}

// TraceEntry records a single write observed by the trace log.
type TraceEntry struct {
	Level Level
	Path  string
	Value any

	// ChildrenCleared is set when the write replaced a non-empty container.
	ChildrenCleared bool

	// Ignored is set for set-unless writes that found an existing value and
	// so stored nothing.
	Ignored bool

	// Source names where the write came from, such as an attribute file,
	// when the writer declared one with Attributes.WithSource.
	Source string
}

// Trace is the path-keyed log of writes kept by an Attributes with tracing
// enabled.
type Trace struct {
	byPath map[string][]TraceEntry
	all    []TraceEntry
}

func newTrace() *Trace {
	return &Trace{
		byPath: map[string][]TraceEntry{},
	}
}

func (t *Trace) record(e TraceEntry) {
	t.byPath[e.Path] = append(t.byPath[e.Path], e)
	t.all = append(t.all, e)
}

// Entries returns the entries recorded for exactly the given path, oldest
// first.
func (t *Trace) Entries(path string) []TraceEntry {
	if t == nil {
		return nil
	}
	return t.byPath[path]
}

// All returns every recorded entry, oldest first.
func (t *Trace) All() []TraceEntry {
	if t == nil {
		return nil
	}
	return t.all
}

// Paths returns the traced paths in sorted order.
func (t *Trace) Paths() []string {
	if t == nil {
		return nil
	}
	paths := collections.NewSet[string]()
	for p := range t.byPath {
		paths.Add(p)
	}
	return collections.Sorted(paths)
}
