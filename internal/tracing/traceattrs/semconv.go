// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package traceattrs

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk"
	"go.opentelemetry.io/otel/sdk/resource"

	// Must be the semconv version that go.opentelemetry.io/otel/sdk/resource
	// uses, or NewResource fails with a schema URL conflict. Bump it together
	// with the SDK.
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	"github.com/opentofu/nodeattrs/version"
)

// NewResource describes this process to the tracer provider: host, OS and
// process details plus the service name and nodeattrs version.
func NewResource(ctx context.Context, serviceName string) (*resource.Resource, error) {
	return resource.New(ctx,
		resource.WithOS(),
		resource.WithHost(),
		resource.WithProcess(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version.Version),
			// Set explicitly so the SDK detector does not add a second
			// schema URL.
			semconv.TelemetrySDKName("opentelemetry"),
			semconv.TelemetrySDKLanguageGo,
			semconv.TelemetrySDKVersion(sdk.Version()),
		),
	)
}

// FilePath is the semantic convention attribute for a file's path.
func FilePath(val string) attribute.KeyValue {
	return semconv.FilePath(val)
}

// FileSize is the semantic convention attribute for a file's size in bytes.
func FileSize(val int) attribute.KeyValue {
	return semconv.FileSize(val)
}
