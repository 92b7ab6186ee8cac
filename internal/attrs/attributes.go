// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"github.com/hashicorp/go-hclog"

	"github.com/opentofu/nodeattrs/internal/cache"
	"github.com/opentofu/nodeattrs/internal/logging"
)

// Config holds the settings of an Attributes.
type Config struct {
	// Trace selects which writes are recorded in the diagnostic trace log.
	Trace TraceConfig

	// Logger receives debug output. It defaults to the process logger.
	Logger hclog.Logger
}

// Attributes is the root of a node's attribute data: one container per
// precedence level and a cache of merged snapshots.
//
// Writers change the per-level containers, reached with the level accessors
// or the path-based writer methods. Readers use Read and friends, which see
// the deep merge of every level and return immutable snapshots that are
// reused until the next write anywhere in the tree.
//
// Attributes is not safe for concurrent use.
type Attributes struct {
	cfg    Config
	logger hclog.Logger

	levels [numLevels]*VividMap
	memo   *cache.Memo[cacheKey, any]

	trace  *Trace
	source string
}

// cacheKey identifies a memoized snapshot: either the subtree under one
// top-level key, or the whole merged tree.
type cacheKey struct {
	top string
	all bool
}

type absentValue struct{}

// absent marks a memoized lookup that found nothing. nil cannot be used
// for that, since nil is a legitimate stored value.
var absent = absentValue{}

var _ owner = (*Attributes)(nil)

// New returns an empty Attributes.
func New(cfg Config) *Attributes {
	a := &Attributes{
		cfg:    cfg,
		logger: cfg.Logger,
		memo:   cache.NewMemo[cacheKey, any](),
	}
	if a.logger == nil {
		a.logger = logging.HCLogger().Named("attrs")
	}
	if cfg.Trace.Mode != TraceOff {
		a.trace = newTrace()
	}
	for l := range a.levels {
		a.levels[l] = newVividMap(nil, nodeInfo{
			owner: a,
			level: Level(l),
		})
	}
	return a
}

// Config returns the configuration the Attributes was created with.
func (a *Attributes) Config() Config {
	return a.cfg
}

func (a *Attributes) invalidate() {
	if !a.memo.Dirty() && a.memo.Len() > 0 {
		a.logger.Trace("invalidating merged attribute cache")
	}
	a.memo.MarkDirty()
}

func (a *Attributes) traced(path Path) bool {
	return a.trace != nil && a.cfg.Trace.matches(path.TracePath())
}

func (a *Attributes) recordTrace(e TraceEntry) {
	e.Source = a.source
	a.trace.record(e)
}

// WithSource runs fn with every trace entry it causes attributed to source,
// such as the name of the file the written data was loaded from.
func (a *Attributes) WithSource(source string, fn func()) {
	prev := a.source
	a.source = source
	defer func() { a.source = prev }()
	fn()
}

// TraceLog returns the diagnostic trace, or nil when tracing is off.
func (a *Attributes) TraceLog() *Trace {
	return a.trace
}

// Level returns the container for the given level.
func (a *Attributes) Level(l Level) *VividMap {
	return a.levels[l]
}

func (a *Attributes) Default() *VividMap       { return a.levels[Default] }
func (a *Attributes) EnvDefault() *VividMap    { return a.levels[EnvDefault] }
func (a *Attributes) RoleDefault() *VividMap   { return a.levels[RoleDefault] }
func (a *Attributes) ForceDefault() *VividMap  { return a.levels[ForceDefault] }
func (a *Attributes) Normal() *VividMap        { return a.levels[Normal] }
func (a *Attributes) Override() *VividMap      { return a.levels[Override] }
func (a *Attributes) RoleOverride() *VividMap  { return a.levels[RoleOverride] }
func (a *Attributes) EnvOverride() *VividMap   { return a.levels[EnvOverride] }
func (a *Attributes) ForceOverride() *VividMap { return a.levels[ForceOverride] }
func (a *Attributes) Automatic() *VividMap     { return a.levels[Automatic] }

// SetLevel replaces the whole content of one level with a converted copy of
// raw. The level's container keeps its identity.
func (a *Attributes) SetLevel(l Level, raw map[string]any) {
	a.logger.Debug("replacing attribute level", "level", l, "keys", len(raw))
	a.levels[l].Replace(raw)
}

// ReplaceAutomatic replaces the automatic level, as done when facts about
// the node are gathered.
func (a *Attributes) ReplaceAutomatic(raw map[string]any) {
	a.SetLevel(Automatic, raw)
}

// RootCell returns the live merged view of the whole tree. Unlike Read, it
// is recomputed on every call and never cached.
func (a *Attributes) RootCell() *Cell {
	return a.rootCell(allLevels)
}

func (a *Attributes) rootCell(mask levelSet) *Cell {
	var values [numLevels]any
	for l, m := range a.levels {
		values[l] = m
	}
	return newCell(nil, values, mask)
}

// Merged returns the immutable snapshot of the whole merged tree. The same
// snapshot is returned until the next write.
func (a *Attributes) Merged() *ImmutableMap {
	v := a.memo.Get(cacheKey{all: true}, func() any {
		return materialize(a.RootCell(), nil)
	})
	return v.(*ImmutableMap)
}

// MergedCopy returns a copy-on-write wrapper over the merged snapshot. Reads
// are served from the snapshot until the first write duplicates it.
func (a *Attributes) MergedCopy() *COWMap {
	return NewCOWMap(a.Merged())
}

// snapshot returns the cached immutable value at path.
func (a *Attributes) snapshot(path Path) (any, bool) {
	if len(path) == 0 {
		return a.Merged(), true
	}
	key := mapKey(path[0])
	top := a.memo.Get(cacheKey{top: key}, func() any {
		v, ok := a.RootCell().lookup(key)
		if !ok {
			return absent
		}
		return materialize(v, Path{key})
	})
	if top == absent {
		return nil, false
	}
	return readPath(top, path[1:])
}

// Exists reports whether path resolves in the merged tree.
func (a *Attributes) Exists(path ...any) bool {
	_, ok := a.snapshot(normalizePath(path))
	return ok
}

// Read returns the merged value at path: a scalar, an *ImmutableMap or an
// *ImmutableList. It returns nil if the path does not resolve.
func (a *Attributes) Read(path ...any) any {
	v, _ := a.snapshot(normalizePath(path))
	return v
}

// ReadStrict is like Read but returns a *NoSuchAttributeError when the path
// does not resolve.
func (a *Attributes) ReadStrict(path ...any) (any, error) {
	p := normalizePath(path)
	if v, ok := a.snapshot(p); ok {
		return v, nil
	}
	return nil, noSuchAttribute(a.Merged(), p)
}

// Keys returns the merged top-level keys in sorted order.
func (a *Attributes) Keys() []string {
	return a.Merged().Keys()
}

// Len returns the number of merged top-level keys.
func (a *Attributes) Len() int {
	return a.Merged().Len()
}

// Each calls fn for every merged top-level entry in key order.
func (a *Attributes) Each(fn func(key string, value any)) {
	a.Merged().Each(fn)
}

// Dup returns a deep copy of every level. The copy has the same
// configuration but starts with an empty trace log.
func (a *Attributes) Dup() *Attributes {
	ret := New(a.cfg)
	for l, m := range a.levels {
		ret.levels[l].Replace(m.ToMap())
	}
	if ret.trace != nil {
		ret.trace = newTrace()
	}
	return ret
}

// ToMap returns the merged tree as plain Go values.
func (a *Attributes) ToMap() map[string]any {
	return a.Merged().ToMap()
}
