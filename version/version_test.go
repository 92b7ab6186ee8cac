// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package version

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	got := String()
	if !strings.HasPrefix(got, Version) {
		t.Errorf("version string %q does not start with %q", got, Version)
	}
	if Prerelease != "" && !strings.HasSuffix(got, "-"+Prerelease) {
		t.Errorf("version string %q does not end with prerelease %q", got, Prerelease)
	}
	if SemVer.Prerelease() != "" {
		t.Errorf("SemVer carries prerelease %q", SemVer.Prerelease())
	}
}
