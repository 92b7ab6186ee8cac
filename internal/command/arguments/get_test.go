// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

func TestParseGet(t *testing.T) {
	t.Setenv(EnvTrace, "")

	got, err := ParseGet([]string{"-json", "-dir", "node", "/pkg/version"})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := &Get{
		Source:      Source{Dir: "node", Trace: attrs.TraceConfig{Mode: attrs.TraceOff}},
		ViewOptions: ViewOptions{ViewType: ViewJSON},
		Path:        attrs.Path{"pkg", "version"},
	}
	if diff := cmp.Diff(want, got, cmpopts.IgnoreUnexported(ViewOptions{}, Source{})); diff != "" {
		t.Errorf("unexpected result\n%s", diff)
	}
}

func TestParseGet_errors(t *testing.T) {
	for name, args := range map[string][]string{
		"no path":      nil,
		"two paths":    {"a", "b"},
		"unknown flag": {"-nope", "a"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseGet(args); err == nil {
				t.Fatal("succeeded; want error")
			}
		})
	}
}

func TestParseTrace(t *testing.T) {
	tests := map[string]struct {
		args []string
		want attrs.TraceConfig
		path attrs.Path
	}{
		"path":       {[]string{"pkg.names"}, attrs.TraceConfig{Mode: attrs.TracePath, Path: "/pkg/names"}, attrs.Path{"pkg", "names"}},
		"slash path": {[]string{"-no-color", "/pkg/0"}, attrs.TraceConfig{Mode: attrs.TracePath, Path: "/pkg/0"}, attrs.Path{"pkg", 0}},
		"root":       {[]string{"/"}, attrs.TraceConfig{Mode: attrs.TraceAll}, attrs.Path{}},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseTrace(test.args)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(test.want, got.Trace); diff != "" {
				t.Errorf("wrong trace config\n%s", diff)
			}
			if diff := cmp.Diff(test.path, got.Path); diff != "" {
				t.Errorf("wrong path\n%s", diff)
			}
		})
	}

	if _, err := ParseTrace(nil); err == nil {
		t.Error("missing path accepted")
	}
	if _, err := ParseTrace([]string{"-trace=all", "a"}); err == nil {
		t.Error("-trace accepted by the trace command")
	}
}
