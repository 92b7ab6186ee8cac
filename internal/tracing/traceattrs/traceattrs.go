// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package traceattrs

const (
	// Common attributes names used across the codebase

	AttrLevel      = "nodeattrs.level"
	AttrLevels     = "nodeattrs.levels"
	AttrFileFormat = "nodeattrs.file.format"
	AttrDir        = "nodeattrs.dir"
	AttrPath       = "nodeattrs.path"
)
