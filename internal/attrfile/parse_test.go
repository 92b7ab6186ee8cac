// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
)

func TestParse(t *testing.T) {
	want := map[string]any{
		"pkg": map[string]any{
			"names":   []any{"nginx", "curl"},
			"version": "1.2",
			"port":    8080,
			"ratio":   0.5,
			"enabled": true,
		},
		"empty": nil,
	}

	tests := map[string]string{
		"default.hcl": `
pkg = {
  names   = ["nginx", "curl"]
  version = "1.2"
  port    = 8080
  ratio   = 0.5
  enabled = true
}
empty = null
`,
		"default.json": `{
  "pkg": {
    "names": ["nginx", "curl"],
    "version": "1.2",
    "port": 8080,
    "ratio": 0.5,
    "enabled": true
  },
  "empty": null
}`,
		"default.yaml": `
pkg:
  names: [nginx, curl]
  version: "1.2"
  port: 8080
  ratio: 0.5
  enabled: true
empty: null
`,
	}

	for filename, src := range tests {
		t.Run(filename, func(t *testing.T) {
			got, err := Parse(filename, []byte(src))
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("wrong result\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"default.hcl":  `a = `,
		"normal.hcl":   `a = var.foo`,
		"override.hcl": "block {\n}\n",
		"default.json": `{"a": `,
		"default.yaml": "- a\n- b\n",
		"default.txt":  `a = 1`,
	}

	for filename, src := range tests {
		t.Run(filename, func(t *testing.T) {
			_, err := Parse(filename, []byte(src))
			if err == nil {
				t.Fatal("succeeded; want error")
			}
		})
	}
}

func TestParseDiagnostics(t *testing.T) {
	_, err := Parse("default.hcl", []byte(`a = var.foo`))

	var diags hcl.Diagnostics
	if !errors.As(err, &diags) {
		t.Fatalf("error is %T, not diagnostics", err)
	}
	if !diags.HasErrors() {
		t.Error("diagnostics have no errors")
	}
	if got := diags[0].Subject.Filename; got != "default.hcl" {
		t.Errorf("wrong filename in diagnostic %q", got)
	}
}

func TestParseEmptyYAML(t *testing.T) {
	got, err := Parse("default.yml", []byte(""))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if len(got) != 0 {
		t.Errorf("empty file produced %v", got)
	}
}
