// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package tracing

import (
	"fmt"
	"iter"

	"go.opentelemetry.io/otel/trace"
)

// Strings renders items for use as a span attribute value. Nothing is
// rendered, and items is not consumed, unless span is recording.
//
//	span.SetAttributes(traceattrs.Levels(tracing.Strings(span, slices.Values(set.Levels()))))
func Strings[E fmt.Stringer](span trace.Span, items iter.Seq[E]) []string {
	if !span.IsRecording() {
		return nil
	}
	var ret []string
	for item := range items {
		ret = append(ret, item.String())
	}
	return ret
}
