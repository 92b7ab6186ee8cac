// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package errorhandling has helpers for call sites where an error means a
// bug rather than bad input, such as test fixtures and CLI bootstrap.
package errorhandling

import (
	"errors"

	"github.com/hashicorp/hcl/v2"
)

// Must converts an error into a panic. hcl.Diagnostics that carry only
// warnings are not an error.
func Must(err error) {
	var diags hcl.Diagnostics
	if errors.As(err, &diags) {
		if diags.HasErrors() {
			panic(diags)
		}
		return
	}

	if err != nil {
		panic(err)
	}
}
