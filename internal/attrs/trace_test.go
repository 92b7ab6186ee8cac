// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTraceConfig(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    TraceConfig
		wantErr bool
	}{
		"empty":       {"", TraceConfig{Mode: TraceOff}, false},
		"off":         {"off", TraceConfig{Mode: TraceOff}, false},
		"all":         {"all", TraceConfig{Mode: TraceAll}, false},
		"slash path":  {"/a/b/", TraceConfig{Mode: TracePath, Path: "/a/b"}, false},
		"dotted path": {"a.b.0", TraceConfig{Mode: TracePath, Path: "/a/b/0"}, false},
		"empty seg":   {"a..b", TraceConfig{}, true},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTraceConfig(test.input)
			if (err != nil) != test.wantErr {
				t.Fatalf("wrong error %v", err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("wrong result\n%s", diff)
			}
		})
	}
}

func TestTraceAll(t *testing.T) {
	a := New(Config{Trace: TraceConfig{Mode: TraceAll}})

	a.SetNormal(Path{"a", "b"}, 1)
	a.SetNormal(Path{"a"}, "x")
	a.NormalUnless(Path{"a"}, "y")
	a.WithSource("normal.hcl", func() {
		a.SetDefault(Path{"d"}, true)
	})

	want := []TraceEntry{
		{Level: Normal, Path: "/a", Value: map[string]any{}},
		{Level: Normal, Path: "/a", Value: "x", ChildrenCleared: true},
		{Level: Normal, Path: "/a", Value: "y", Ignored: true},
	}
	if diff := cmp.Diff(want, a.TraceLog().Entries("/a")); diff != "" {
		t.Errorf("wrong entries for /a\n%s", diff)
	}

	wantB := []TraceEntry{{Level: Normal, Path: "/a/b", Value: 1}}
	if diff := cmp.Diff(wantB, a.TraceLog().Entries("/a/b")); diff != "" {
		t.Errorf("wrong entries for /a/b\n%s", diff)
	}

	wantD := []TraceEntry{{Level: Default, Path: "/d", Value: true, Source: "normal.hcl"}}
	if diff := cmp.Diff(wantD, a.TraceLog().Entries("/d")); diff != "" {
		t.Errorf("wrong entries for /d\n%s", diff)
	}

	if diff := cmp.Diff([]string{"/a", "/a/b", "/d"}, a.TraceLog().Paths()); diff != "" {
		t.Errorf("wrong paths\n%s", diff)
	}
	if got := len(a.TraceLog().All()); got != 5 {
		t.Errorf("wrong number of entries %d", got)
	}
}

func TestTracePath(t *testing.T) {
	a := New(Config{Trace: TraceConfig{Mode: TracePath, Path: "/a/b"}})

	a.SetNormal(Path{"a", "b", "c"}, 1)
	a.SetNormal(Path{"a", "other"}, 2)
	a.SetNormal(Path{"ab"}, 3)

	if diff := cmp.Diff([]string{"/a", "/a/b", "/a/b/c"}, a.TraceLog().Paths()); diff != "" {
		t.Errorf("wrong paths\n%s", diff)
	}
}

func TestTraceOff(t *testing.T) {
	a := New(Config{})
	a.SetNormal(Path{"a"}, 1)
	if a.TraceLog() != nil {
		t.Error("trace log exists with tracing off")
	}
	if got := a.TraceLog().Entries("/a"); got != nil {
		t.Errorf("nil trace returned %v", got)
	}
}

// Tracing is diagnostic only and never changes what is read back.
func TestTraceDoesNotAffectMerge(t *testing.T) {
	write := func(a *Attributes) {
		a.SetDefault(Path{"a", "l"}, []any{1})
		a.Write(RoleDefault, Path{"a", "l"}, []any{2})
		a.SetOverride(Path{"a", "x"}, "o")
		a.DefaultUnless(Path{"a", "x"}, "d")
		a.Rm("a", "missing")
	}

	plain := New(Config{})
	traced := New(Config{Trace: TraceConfig{Mode: TraceAll}})
	write(plain)
	write(traced)

	if diff := cmp.Diff(plain.ToMap(), traced.ToMap()); diff != "" {
		t.Errorf("tracing changed the merge result\n%s", diff)
	}
}
