// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package traceattrs

import (
	"go.opentelemetry.io/otel/attribute"
)

// This file contains functions representing nodeattrs-specific semantic
// conventions, which we use alongside the general OpenTelemetry-specified
// semantic conventions.
//
// These functions take strings that are expected to be the canonical string
// representation of some more specific type from elsewhere in the codebase,
// because this package must not import any other packages from this module.

// Level returns an attribute naming the precedence level a span is working
// on. The given name should be the result of calling [attrs.Level.String].
func Level(name string) attribute.KeyValue {
	return attribute.String(AttrLevel, name)
}

// Levels returns an attribute listing precedence level names, each as
// returned by [attrs.Level.String].
func Levels(names []string) attribute.KeyValue {
	return attribute.StringSlice(AttrLevels, names)
}

// FileFormat returns an attribute naming the syntax an attribute file was
// parsed with: "hcl", "json" or "yaml".
func FileFormat(format string) attribute.KeyValue {
	return attribute.String(AttrFileFormat, format)
}

// Dir returns an attribute naming the directory attribute files were loaded
// from.
func Dir(dir string) attribute.KeyValue {
	return attribute.String(AttrDir, dir)
}

// AttributePath returns an attribute naming an attribute path, as returned
// by [attrs.Path.String].
func AttributePath(path string) attribute.KeyValue {
	return attribute.String(AttrPath, path)
}
