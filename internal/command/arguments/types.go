// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"errors"
	"flag"
	"io"
)

// ViewType represents which view layer to use for a given command. Not all
// commands will support all view types, and validation that the type is
// supported should happen in the command.
type ViewType rune

const (
	ViewNone  ViewType = 0
	ViewHuman ViewType = 'H'
	ViewJSON  ViewType = 'J'
	ViewYAML  ViewType = 'Y'
)

func (vt ViewType) String() string {
	switch vt {
	case ViewNone:
		return "none"
	case ViewHuman:
		return "human"
	case ViewJSON:
		return "json"
	case ViewYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ViewOptions contains all of the information necessary for choosing how a
// command renders its result.
type ViewOptions struct {
	// Raw cli flags
	jsonFlag bool
	yamlFlag bool

	// ViewType specifies which output format to use
	ViewType ViewType
}

// AddFlags adds -json, and -yaml when yaml is set, to the flag set.
func (v *ViewOptions) AddFlags(cmdFlags *flag.FlagSet, yaml bool) {
	cmdFlags.BoolVar(&v.jsonFlag, "json", false, "json")
	if yaml {
		cmdFlags.BoolVar(&v.yamlFlag, "yaml", false, "yaml")
	}
}

// Parse decides the view type from the flags after they have been parsed.
func (v *ViewOptions) Parse() error {
	// Default to Human
	v.ViewType = ViewHuman
	switch {
	case v.jsonFlag && v.yamlFlag:
		return errors.New("Invalid output format: the -json and -yaml options are mutually exclusive")
	case v.jsonFlag:
		v.ViewType = ViewJSON
	case v.yamlFlag:
		v.ViewType = ViewYAML
	}
	return nil
}

// defaultFlagSet creates a FlagSet with the common settings to override
// the flag package's noisy defaults.
func defaultFlagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.Usage = func() {}
	return f
}
