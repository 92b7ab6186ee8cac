// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

// Package attrs implements the precedence-layered attribute store of a
// node.
//
// Attribute data is written at one of ten precedence levels, from Default
// up to Automatic, and read back as a single deep-merged tree. Maps merge
// key by key across every level; lists only combine within one precedence
// group, and the normal and automatic levels never combine with anything;
// a scalar at the highest level that defines a path wins outright.
//
// Writes go to per-level containers (VividMap and VividList), which
// create intermediate maps on demand. Reads go through Attributes.Read,
// which returns immutable snapshots cached until the next write.
package attrs
