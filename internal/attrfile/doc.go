// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package attrfile loads precedence levels from attribute files on disk and
// encodes merged attribute trees back to JSON and YAML.
//
// A directory holds any number of files named <level>[.<name>].<ext>, where
// <level> is a precedence level name such as "default" or "force_override"
// and <ext> is one of .hcl, .json, .yaml or .yml. Files of the same level are
// deep-merged in lexical order of their names, later files winning.
package attrfile
