// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

// Show represents the command-line arguments for the show command.
type Show struct {
	Source
	ViewOptions ViewOptions

	// Path is the subtree to show. Empty means the whole tree.
	Path attrs.Path
}

// ParseShow processes CLI arguments, returning a Show value and errors.
// If errors are encountered, a Show value is still returned representing
// the best effort interpretation of the arguments.
func ParseShow(args []string) (*Show, error) {
	var errs *multierror.Error
	ret := &Show{}

	cmdFlags := defaultFlagSet("show")
	ret.Source.addFlags(cmdFlags, true)
	ret.ViewOptions.AddFlags(cmdFlags, true)

	if err := cmdFlags.Parse(args); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("Failed to parse command-line flags: %w", err))
	}
	errs = multierror.Append(errs, ret.Source.parse(), ret.ViewOptions.Parse())

	args = cmdFlags.Args()
	switch len(args) {
	case 0:
	case 1:
		path, err := parsePathArg(args[0])
		errs = multierror.Append(errs, err)
		ret.Path = path
	default:
		errs = multierror.Append(errs, fmt.Errorf("Too many command line arguments: expected at most one attribute path"))
	}

	return ret, errs.ErrorOrNil()
}
