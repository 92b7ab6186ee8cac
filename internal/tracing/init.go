// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

// Package tracing wires optional OpenTelemetry tracing into nodeattrs. The
// span layout is not a stable interface.
package tracing

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-logr/stdr"
	"go.opentelemetry.io/contrib/exporters/autoexport"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/opentofu/nodeattrs/internal/tracing/traceattrs"
)

// OTELExporterEnvVar selects the span exporter. Tracing is on only when it
// is "otlp".
const OTELExporterEnvVar = "OTEL_TRACES_EXPORTER"

// Environment variables through which a calling process passes its trace
// context, as defined by W3C Trace Context.
const (
	traceParentEnvVar = "TRACEPARENT"
	traceStateEnvVar  = "TRACESTATE"
)

var isTracingEnabled bool

// OpenTelemetryInit installs a global tracer provider exporting over OTLP
// when OTEL_TRACES_EXPORTER=otlp. The exporter itself is configured by the
// standard OTEL_EXPORTER_OTLP_* variables. With tracing off every span is a
// no-op.
//
// The returned context carries the caller's trace from TRACEPARENT, if set.
func OpenTelemetryInit(ctx context.Context) (context.Context, error) {
	isTracingEnabled = false

	// autoexport would otherwise default to an OTLP collector on localhost.
	if os.Getenv(OTELExporterEnvVar) != "otlp" {
		log.Printf("[TRACE] OpenTelemetry: %s not set, OTel tracing is not enabled", OTELExporterEnvVar)
		return ctx, nil
	}
	isTracingEnabled = true
	log.Printf("[TRACE] OpenTelemetry: enabled")

	res, err := traceattrs.NewResource(context.Background(), "nodeattrs CLI")
	if err != nil {
		return ctx, fmt.Errorf("failed to create resource: %w", err)
	}
	ctx = parentFromEnv(ctx)

	exporter, err := autoexport.NewSpanExporter(ctx)
	if err != nil {
		return ctx, err
	}
	otel.SetTracerProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBlocking()),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
	))
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	// The standard logger already writes through hclog.
	otel.SetLogger(stdr.New(log.Default()))
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		log.Printf("[ERROR] OpenTelemetry: %s", err)
	}))

	return ctx, nil
}

// parentFromEnv returns ctx with the remote span context described by
// TRACEPARENT and TRACESTATE, or ctx unchanged when TRACEPARENT is unset.
func parentFromEnv(ctx context.Context) context.Context {
	parent := os.Getenv(traceParentEnvVar)
	if parent == "" {
		return ctx
	}
	log.Printf("[TRACE] OpenTelemetry: trace parent from environment: %s", parent)

	// TraceContext reads lowercase keys.
	carrier := propagation.MapCarrier{"traceparent": parent}
	if state := os.Getenv(traceStateEnvVar); state != "" {
		carrier["tracestate"] = state
	}
	return propagation.TraceContext{}.Extract(ctx, carrier)
}
