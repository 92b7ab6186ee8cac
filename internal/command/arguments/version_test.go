// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseVersion_basicValidation(t *testing.T) {
	testCases := map[string]struct {
		args        []string
		want        *Version
		wantErrText string
	}{
		"defaults": {
			args: nil,
			want: versionArgsWithDefaults(nil),
		},
		"version flag short": {
			args: []string{"-v"},
			want: versionArgsWithDefaults(nil),
		},
		"version flag long": {
			args: []string{"-version"},
			want: versionArgsWithDefaults(nil),
		},
		"version flag double dash": {
			args: []string{"--version"},
			want: versionArgsWithDefaults(nil),
		},
		"json flag": {
			args: []string{"-json"},
			want: versionArgsWithDefaults(func(version *Version) {
				version.ViewOptions.ViewType = ViewJSON
			}),
		},
		"multiple version flags": {
			args: []string{"-v", "-version"},
			want: versionArgsWithDefaults(nil),
		},
		"yaml is not accepted": {
			args:        []string{"-yaml"},
			want:        versionArgsWithDefaults(nil),
			wantErrText: "Failed to parse command-line flags: flag provided but not defined: -yaml",
		},
		"invalid flag": {
			args:        []string{"-foo"},
			want:        versionArgsWithDefaults(nil),
			wantErrText: "Failed to parse command-line flags: flag provided but not defined: -foo",
		},
	}

	cmpOpts := cmpopts.IgnoreUnexported(ViewOptions{})

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseVersion(tc.args)

			if tc.wantErrText != "" && err == nil {
				t.Errorf("test wanted error but got nothing")
			} else if tc.wantErrText == "" && err != nil {
				t.Errorf("test didn't expect errors but got some: %s", err)
			} else if tc.wantErrText != "" && err != nil {
				if !strings.Contains(err.Error(), tc.wantErrText) {
					t.Errorf("the returned error does not contain the expected message.\nerror:\n%s\nwanted: %s\n", err, tc.wantErrText)
				}
			}
			if diff := cmp.Diff(tc.want, got, cmpOpts); diff != "" {
				t.Errorf("unexpected result\n%s", diff)
			}
		})
	}
}

func versionArgsWithDefaults(mutate func(version *Version)) *Version {
	ret := &Version{
		ViewOptions: ViewOptions{
			ViewType: ViewHuman,
		},
	}
	if mutate != nil {
		mutate(ret)
	}
	return ret
}
