// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

// MapReader is the read-only surface shared by every map-shaped attribute
// container.
type MapReader interface {
	Lookup(key string) (any, bool)
	Has(key string) bool
	Keys() []string
	Len() int
	Exists(path ...any) bool
	Read(path ...any) any
	ReadStrict(path ...any) (any, error)
	ToMap() map[string]any
}

var (
	_ MapReader = (*VividMap)(nil)
	_ MapReader = (*ImmutableMap)(nil)
	_ MapReader = (*Cell)(nil)
	_ MapReader = (*COWMap)(nil)
)

// COWMap passes reads through to a target map until the first write, which
// makes a private mutable copy of the target. The target is never changed
// through the COWMap.
//
// Values read before the first write are the target's own, so containers
// obtained from a mutable target that way must not be written to.
type COWMap struct {
	target MapReader
	copy   *VividMap
}

var _ mutableMap = (*COWMap)(nil)

// NewCOWMap returns a copy-on-write wrapper around target.
func NewCOWMap(target MapReader) *COWMap {
	return &COWMap{target: target}
}

// Copied reports whether the wrapper has made its private copy yet.
func (c *COWMap) Copied() bool {
	return c.copy != nil
}

func (c *COWMap) reader() MapReader {
	if c.copy != nil {
		return c.copy
	}
	return c.target
}

func (c *COWMap) writer() *VividMap {
	if c.copy == nil {
		c.copy = NewVividMap(c.target.ToMap())
	}
	return c.copy
}

func (c *COWMap) Lookup(key string) (any, bool)       { return c.reader().Lookup(key) }
func (c *COWMap) Has(key string) bool                 { return c.reader().Has(key) }
func (c *COWMap) Keys() []string                      { return c.reader().Keys() }
func (c *COWMap) Len() int                            { return c.reader().Len() }
func (c *COWMap) Exists(path ...any) bool             { return c.reader().Exists(path...) }
func (c *COWMap) Read(path ...any) any                { return c.reader().Read(path...) }
func (c *COWMap) ReadStrict(path ...any) (any, error) { return c.reader().ReadStrict(path...) }
func (c *COWMap) ToMap() map[string]any               { return c.reader().ToMap() }

func (c *COWMap) Equal(other any) bool {
	return equalRaw(c, other)
}

func (c *COWMap) Get(key string) any                   { return c.writer().Get(key) }
func (c *COWMap) Set(key string, value any)            { c.writer().Set(key, value) }
func (c *COWMap) SetUnless(key string, value any) bool { return c.writer().SetUnless(key, value) }
func (c *COWMap) Delete(key string) (any, bool)        { return c.writer().Delete(key) }
func (c *COWMap) Clear()                               { c.writer().Clear() }
func (c *COWMap) Replace(raw map[string]any)           { c.writer().Replace(raw) }
func (c *COWMap) Merge(raw map[string]any)             { c.writer().Merge(raw) }
func (c *COWMap) Write(path Path, value any)           { c.writer().Write(path, value) }

func (c *COWMap) WriteUnless(path Path, value any) bool {
	return c.writer().WriteUnless(path, value)
}

func (c *COWMap) WriteStrict(path Path, value any) error {
	return c.writer().WriteStrict(path, value)
}

func (c *COWMap) Unlink(path ...any) any {
	return c.writer().Unlink(path...)
}

func (c *COWMap) UnlinkStrict(path ...any) (any, error) {
	return c.writer().UnlinkStrict(path...)
}

func (c *COWMap) lookup(key string) (any, bool) {
	return c.Lookup(key)
}

func (c *COWMap) keys() []string {
	return c.Keys()
}

func (c *COWMap) vivify(key string) any {
	return c.writer().vivify(key)
}

func (c *COWMap) store(key string, value any, mode writeMode) bool {
	return c.writer().store(key, value, mode)
}

func (c *COWMap) remove(key string) (any, bool) {
	return c.writer().remove(key)
}

// COWAttributes defers duplicating an Attributes until it is first written
// to. Until then every read is served by the original.
type COWAttributes struct {
	target *Attributes
	copy   *Attributes
}

// NewCOWAttributes returns a copy-on-write wrapper around a.
func NewCOWAttributes(a *Attributes) *COWAttributes {
	return &COWAttributes{target: a}
}

func (c *COWAttributes) Copied() bool {
	return c.copy != nil
}

// Reader returns the Attributes that reads are currently served from. It
// must not be written to.
func (c *COWAttributes) Reader() *Attributes {
	if c.copy != nil {
		return c.copy
	}
	return c.target
}

// Writer returns the private copy, duplicating the original first if
// needed.
func (c *COWAttributes) Writer() *Attributes {
	if c.copy == nil {
		c.copy = c.target.Dup()
	}
	return c.copy
}

func (c *COWAttributes) Exists(path ...any) bool             { return c.Reader().Exists(path...) }
func (c *COWAttributes) Read(path ...any) any                { return c.Reader().Read(path...) }
func (c *COWAttributes) ReadStrict(path ...any) (any, error) { return c.Reader().ReadStrict(path...) }
func (c *COWAttributes) Merged() *ImmutableMap               { return c.Reader().Merged() }

func (c *COWAttributes) Write(l Level, path Path, value any) {
	c.Writer().Write(l, path, value)
}

func (c *COWAttributes) WriteStrict(l Level, path Path, value any) error {
	return c.Writer().WriteStrict(l, path, value)
}

func (c *COWAttributes) WriteUnless(l Level, path Path, value any) bool {
	return c.Writer().WriteUnless(l, path, value)
}

func (c *COWAttributes) Rm(path ...any) any {
	return c.Writer().Rm(path...)
}
