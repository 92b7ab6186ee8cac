// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package traceattrs

import (
	"context"
	"testing"
)

// NewResource fails when the semconv schema URL imported here disagrees
// with the one the SDK resource package uses internally.
func TestNewResource(t *testing.T) {
	res, err := NewResource(context.Background(), "nodeattrs test")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if res.SchemaURL() == "" {
		t.Error("resource has no schema URL")
	}
}
