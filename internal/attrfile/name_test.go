// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

func TestParseFileName(t *testing.T) {
	tests := map[string]struct {
		want    FileName
		wantOK  bool
		wantErr bool
	}{
		"default.hcl":            {FileName{Level: attrs.Default, Format: FormatHCL}, true, false},
		"role_default.web.json":  {FileName{Level: attrs.RoleDefault, Name: "web", Format: FormatJSON}, true, false},
		"force_override.a.b.yml": {FileName{Level: attrs.ForceOverride, Name: "a.b", Format: FormatYAML}, true, false},
		"automatic.yaml":         {FileName{Level: attrs.Automatic, Format: FormatYAML}, true, false},
		"README.md":              {FileName{}, false, false},
		".default.hcl":           {FileName{}, false, false},
		"nonsense.hcl":           {FileName{}, true, true},
	}

	for input, test := range tests {
		t.Run(input, func(t *testing.T) {
			got, ok, err := ParseFileName(input)
			if (err != nil) != test.wantErr {
				t.Fatalf("wrong error %v", err)
			}
			if ok != test.wantOK {
				t.Errorf("wrong ok %t", ok)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("wrong result\n%s", diff)
			}
		})
	}
}
