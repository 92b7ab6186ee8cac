// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSuchAttribute is matched by errors.Is for every
	// *NoSuchAttributeError.
	ErrNoSuchAttribute = errors.New("no such attribute")

	// ErrAttributeTypeMismatch is matched by errors.Is for every
	// *AttributeTypeMismatchError.
	ErrAttributeTypeMismatch = errors.New("attribute type mismatch")

	// ErrFrozen is matched by errors.Is for every *FrozenError.
	ErrFrozen = errors.New("attribute is frozen")
)

// NoSuchAttributeError is returned by the strict read and unlink operations
// when the requested path does not resolve.
type NoSuchAttributeError struct {
	Path Path

	// Suggestion is a nearby key at the depth where resolution stopped,
	// if any is close enough to the requested one.
	Suggestion string
}

func (e *NoSuchAttributeError) Error() string {
	msg := fmt.Sprintf("no such attribute %s", e.Path)
	if e.Suggestion != "" {
		msg += fmt.Sprintf("; did you mean %q?", e.Suggestion)
	}
	return msg
}

func (e *NoSuchAttributeError) Is(target error) bool {
	return target == ErrNoSuchAttribute
}

// AttributeTypeMismatchError is returned by the strict write operations when
// an existing intermediate value is not a container that the next path
// segment can address.
type AttributeTypeMismatchError struct {
	// Path is the full path that was being written.
	Path Path

	// At is the prefix of Path whose value had the wrong type.
	At Path

	// Level is the precedence level being written, when known.
	Level Level
	// HasLevel is false for containers detached from any root.
	HasLevel bool

	// Found describes the kind of value that was found at At.
	Found string
}

func (e *AttributeTypeMismatchError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot write %s", e.Path)
	if e.HasLevel {
		fmt.Fprintf(&b, " at %s level", e.Level)
	}
	fmt.Fprintf(&b, ": value at %s is %s, not a container", e.At, e.Found)
	return b.String()
}

func (e *AttributeTypeMismatchError) Is(target error) bool {
	return target == ErrAttributeTypeMismatch
}

// FrozenError is returned by every mutating method of the immutable
// snapshot types.
type FrozenError struct {
	Op   string
	Path Path
}

func (e *FrozenError) Error() string {
	return fmt.Sprintf("cannot %s %s: immutable attribute snapshot", e.Op, e.Path)
}

func (e *FrozenError) Is(target error) bool {
	return target == ErrFrozen
}

// kindName describes a stored value for error messages.
func kindName(v any) string {
	if v == nil {
		return "null"
	}
	if _, ok := asMap(v); ok {
		return "a map"
	}
	if _, ok := asList(v); ok {
		return "a list"
	}
	return fmt.Sprintf("a scalar (%T)", v)
}
