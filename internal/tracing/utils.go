// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package tracing

import (
	"context"
	"errors"
	"log"
	"runtime"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// Tracer returns a tracer named after the package of its caller. While
// tracing is disabled it returns the global no-op tracer.
func Tracer() trace.Tracer {
	if !isTracingEnabled {
		return otel.Tracer("")
	}
	pc, _, _, ok := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	if !ok || fn == nil {
		return otel.Tracer("")
	}
	return otel.GetTracerProvider().Tracer(extractImportPath(fn.Name()))
}

// SetSpanError marks span as failed and records input, which may be
// hcl.Diagnostics, an error or a message string. Diagnostics without errors
// and empty strings leave the span alone.
func SetSpanError(span trace.Span, input any) {
	if span == nil || input == nil {
		return
	}

	var err error
	switch v := input.(type) {
	case hcl.Diagnostics:
		if v.HasErrors() {
			err = v
		}
	case error:
		err = v
	case string:
		if v != "" {
			err = errors.New(v)
		}
	default:
		span.SetStatus(codes.Error, "unsupported input type for SetSpanError")
		span.AddEvent("unsupported input type for SetSpanError")
		return
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	}
}

// ForceFlush exports any buffered spans, waiting at most timeout. The CLI
// calls it on the way out because the batcher would otherwise drop spans
// still queued when the process exits.
func ForceFlush(timeout time.Duration) {
	if !isTracingEnabled {
		return
	}
	provider, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider)
	if !ok {
		log.Printf("[TRACE] OpenTelemetry: tracer provider is %T, not flushing", otel.GetTracerProvider())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	log.Printf("[TRACE] OpenTelemetry: flushing spans")
	if err := provider.ForceFlush(ctx); err != nil {
		log.Printf("[WARN] OpenTelemetry: error flushing spans: %v", err)
	}
}

// extractImportPath returns the package part of a function name as reported
// by runtime.FuncForPC, such as "main.main" or
// "github.com/you/pkg.(*T).Method-fm".
func extractImportPath(fullName string) string {
	// The package path ends at the first dot after its last slash.
	dir, base := "", fullName
	if i := strings.LastIndex(fullName, "/"); i >= 0 {
		dir, base = fullName[:i], fullName[i:]
	}
	pkg, _, found := strings.Cut(base, ".")
	if !found {
		log.Printf("[WARN] unable to extract import path from function name %q; this is a bug in nodeattrs", fullName)
		return "unknown"
	}
	return dir + pkg
}

// SpanFromContext returns the span carried by ctx, or a no-op span.
func SpanFromContext(ctx context.Context) trace.Span {
	return trace.SpanFromContext(ctx)
}

// SpanAttributes is [trace.WithAttributes], so that callers need only
// import the tracing packages.
func SpanAttributes(attrs ...attribute.KeyValue) trace.SpanStartEventOption {
	return trace.WithAttributes(attrs...)
}
