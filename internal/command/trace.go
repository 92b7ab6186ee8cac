// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/opentofu/nodeattrs/internal/command/arguments"
	"github.com/opentofu/nodeattrs/internal/tracing"
	"github.com/opentofu/nodeattrs/internal/tracing/traceattrs"
)

// TraceCommand is a Command implementation that reports every write that
// touched one attribute path while the attribute directory loaded.
type TraceCommand struct {
	Meta
}

func (c *TraceCommand) Help() string {
	helpText := `
Usage: nodeattrs [global options] trace [options] PATH

  Loads the attribute directory with write tracing enabled for PATH and
  prints, in order, every write to PATH, to anything below it and to any
  of its ancestors: the level written, the value, and the file it came
  from. The merged value at PATH follows.

Options:

  -dir=DIR       Directory holding the attribute files. Defaults to
                 "attributes".

  -no-color      If specified, output won't contain any color.
`
	return strings.TrimSpace(helpText)
}

func (c *TraceCommand) Run(rawArgs []string) int {
	args, err := arguments.ParseTrace(rawArgs)
	if err != nil {
		c.showError(err)
		return cli.RunResultHelp
	}
	c.applySource(args.Source)
	tracing.SpanFromContext(c.CommandContext()).SetAttributes(traceattrs.AttributePath(args.Path.String()))

	a, err := c.loadAttributes(args.Source)
	if err != nil {
		c.showError(err)
		return 1
	}

	entries := a.TraceLog().All()
	if len(entries) == 0 {
		c.Ui.Output(fmt.Sprintf("No writes touched %s.", args.Path))
	} else {
		c.Ui.Output(renderTrace(c.Colorize(), entries))
	}

	c.Ui.Output("")
	if !a.Exists(args.Path...) {
		c.Ui.Output(c.Colorize().Color(fmt.Sprintf("[bold]%s[reset] does not exist in the merged tree.", args.Path)))
		return 0
	}
	out, err := renderValue(a.RootCell().Read(args.Path...), args.Path, arguments.ViewHuman)
	if err != nil {
		c.showError(err)
		return 1
	}
	c.Ui.Output(out)
	return 0
}

func (c *TraceCommand) Synopsis() string {
	return "Show the writes that produced an attribute"
}
