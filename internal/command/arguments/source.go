// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package arguments

import (
	"flag"
	"fmt"
	"os"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

// EnvTrace names the environment variable holding the default for -trace.
const EnvTrace = "NODEATTRS_TRACE"

// DefaultDir is the attribute directory used when -dir is not given.
const DefaultDir = "attributes"

// Source holds the arguments shared by every command that loads an
// attribute directory.
type Source struct {
	// Dir is the directory holding the attribute files.
	Dir string

	// Trace is the attribute write tracing setting.
	Trace attrs.TraceConfig

	// NoColor disables colored output.
	NoColor bool

	traceFlag string
}

func (s *Source) addFlags(cmdFlags *flag.FlagSet, trace bool) {
	cmdFlags.StringVar(&s.Dir, "dir", DefaultDir, "dir")
	cmdFlags.BoolVar(&s.NoColor, "no-color", false, "no-color")
	if trace {
		cmdFlags.StringVar(&s.traceFlag, "trace", os.Getenv(EnvTrace), "trace")
	}
}

func (s *Source) parse() error {
	if s.Dir == "" {
		return fmt.Errorf("Invalid attribute directory: -dir must not be empty")
	}
	trace, err := attrs.ParseTraceConfig(s.traceFlag)
	if err != nil {
		return fmt.Errorf("Invalid -trace option: %w", err)
	}
	s.Trace = trace
	return nil
}

func parsePathArg(arg string) (attrs.Path, error) {
	path, err := attrs.ParsePath(arg)
	if err != nil {
		return nil, fmt.Errorf("Invalid attribute path: %w", err)
	}
	return path, nil
}
