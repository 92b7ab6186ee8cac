// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

// Get represents the command-line arguments for the get command.
type Get struct {
	Source
	ViewOptions ViewOptions

	// Path is the attribute to read. It must exist.
	Path attrs.Path
}

// ParseGet processes CLI arguments, returning a Get value and errors.
// If errors are encountered, a Get value is still returned representing
// the best effort interpretation of the arguments.
func ParseGet(args []string) (*Get, error) {
	var errs *multierror.Error
	ret := &Get{}

	cmdFlags := defaultFlagSet("get")
	ret.Source.addFlags(cmdFlags, true)
	ret.ViewOptions.AddFlags(cmdFlags, true)

	if err := cmdFlags.Parse(args); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("Failed to parse command-line flags: %w", err))
	}
	errs = multierror.Append(errs, ret.Source.parse(), ret.ViewOptions.Parse())

	args = cmdFlags.Args()
	if len(args) != 1 {
		errs = multierror.Append(errs, fmt.Errorf("Invalid number of command line arguments: expected exactly one attribute path"))
	} else {
		path, err := parsePathArg(args[0])
		errs = multierror.Append(errs, err)
		ret.Path = path
	}

	return ret, errs.ErrorOrNil()
}
