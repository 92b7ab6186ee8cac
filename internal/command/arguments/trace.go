// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

// Trace represents the command-line arguments for the trace command.
type Trace struct {
	Source

	// Path is the attribute whose writes are reported.
	Path attrs.Path
}

// ParseTrace processes CLI arguments, returning a Trace value and errors.
// The trace setting always follows the path argument; there is no -trace
// option.
func ParseTrace(args []string) (*Trace, error) {
	var errs *multierror.Error
	ret := &Trace{}

	cmdFlags := defaultFlagSet("trace")
	ret.Source.addFlags(cmdFlags, false)

	if err := cmdFlags.Parse(args); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("Failed to parse command-line flags: %w", err))
	}
	errs = multierror.Append(errs, ret.Source.parse())

	args = cmdFlags.Args()
	if len(args) != 1 {
		errs = multierror.Append(errs, fmt.Errorf("Invalid number of command line arguments: expected exactly one attribute path"))
		return ret, errs.ErrorOrNil()
	}

	path, err := parsePathArg(args[0])
	if err != nil {
		errs = multierror.Append(errs, err)
		return ret, errs.ErrorOrNil()
	}
	ret.Path = path
	if len(path) == 0 {
		ret.Trace = attrs.TraceConfig{Mode: attrs.TraceAll}
	} else {
		ret.Trace = attrs.TraceConfig{Mode: attrs.TracePath, Path: path.TracePath()}
	}
	return ret, errs.ErrorOrNil()
}
