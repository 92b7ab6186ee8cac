// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

func TestParseShow(t *testing.T) {
	testCases := map[string]struct {
		args        []string
		env         string
		want        *Show
		wantErrText string
	}{
		"defaults": {
			args: nil,
			want: showArgsWithDefaults(nil),
		},
		"dir and path": {
			args: []string{"-dir=node", "pkg.names.0"},
			want: showArgsWithDefaults(func(s *Show) {
				s.Dir = "node"
				s.Path = attrs.Path{"pkg", "names", 0}
			}),
		},
		"json": {
			args: []string{"-json"},
			want: showArgsWithDefaults(func(s *Show) {
				s.ViewOptions.ViewType = ViewJSON
			}),
		},
		"yaml and no-color": {
			args: []string{"-yaml", "-no-color"},
			want: showArgsWithDefaults(func(s *Show) {
				s.ViewOptions.ViewType = ViewYAML
				s.NoColor = true
			}),
		},
		"trace flag": {
			args: []string{"-trace=all"},
			want: showArgsWithDefaults(func(s *Show) {
				s.Trace = attrs.TraceConfig{Mode: attrs.TraceAll}
			}),
		},
		"trace from the environment": {
			env: "pkg",
			want: showArgsWithDefaults(func(s *Show) {
				s.Trace = attrs.TraceConfig{Mode: attrs.TracePath, Path: "/pkg"}
			}),
		},
		"trace flag beats the environment": {
			args: []string{"-trace=off"},
			env:  "pkg",
			want: showArgsWithDefaults(nil),
		},
		"json and yaml": {
			args:        []string{"-json", "-yaml"},
			want:        showArgsWithDefaults(nil),
			wantErrText: "mutually exclusive",
		},
		"too many paths": {
			args:        []string{"a", "b"},
			want:        showArgsWithDefaults(nil),
			wantErrText: "Too many command line arguments",
		},
		"bad path": {
			args:        []string{"a..b"},
			want:        showArgsWithDefaults(nil),
			wantErrText: "Invalid attribute path",
		},
		"empty dir": {
			args:        []string{"-dir="},
			want:        showArgsWithDefaults(func(s *Show) { s.Dir = "" }),
			wantErrText: "-dir must not be empty",
		},
	}

	cmpOpts := cmpopts.IgnoreUnexported(ViewOptions{}, Source{})

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(EnvTrace, tc.env)

			got, err := ParseShow(tc.args)
			if tc.wantErrText == "" && err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if tc.wantErrText != "" {
				if err == nil {
					t.Fatal("succeeded; want error")
				}
				if !strings.Contains(err.Error(), tc.wantErrText) {
					t.Fatalf("wrong error\ngot:  %s\nwant: %s", err, tc.wantErrText)
				}
				return
			}
			if diff := cmp.Diff(tc.want, got, cmpOpts); diff != "" {
				t.Errorf("unexpected result\n%s", diff)
			}
		})
	}
}

func showArgsWithDefaults(mutate func(*Show)) *Show {
	ret := &Show{
		Source: Source{
			Dir:   DefaultDir,
			Trace: attrs.TraceConfig{Mode: attrs.TraceOff},
		},
		ViewOptions: ViewOptions{ViewType: ViewHuman},
	}
	if mutate != nil {
		mutate(ret)
	}
	return ret
}
