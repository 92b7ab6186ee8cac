// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"
	"testing"

	"github.com/mitchellh/cli"
)

func TestColorizeUi_impl(t *testing.T) {
	var _ cli.Ui = new(ColorizeUi)
}

func TestColorizeUi_noColor(t *testing.T) {
	mock := cli.NewMockUi()
	u := NewColorizeUi(mock, false)
	u.Error("failed")
	u.Warn("careful")

	if got, want := mock.ErrorWriter.String(), "failed\ncareful\n"; got != want {
		t.Fatalf("wrong stderr %q; want %q", got, want)
	}
}

func TestColorizeUi_color(t *testing.T) {
	mock := cli.NewMockUi()
	u := NewColorizeUi(mock, true)
	u.Error("failed")

	got := mock.ErrorWriter.String()
	if !strings.HasPrefix(got, "\033[31mfailed\033[0m") {
		t.Fatalf("stderr is not red: %q", got)
	}
}

func TestWarnOutput(t *testing.T) {
	mock := cli.NewMockUi()
	wrapped := NewWrappedUi(mock)
	wrapped.Warn("WARNING")

	stderr := mock.ErrorWriter.String()
	stdout := mock.OutputWriter.String()

	if stderr != "" {
		t.Fatalf("unexpected stderr: %q", stderr)
	}

	if stdout != "WARNING\n" {
		t.Fatalf("unexpected stdout: %q\n", stdout)
	}
}
