// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"

	"github.com/mitchellh/cli"

	"github.com/opentofu/nodeattrs/internal/command/arguments"
)

// ShowCommand is a Command implementation that prints the merged attribute
// tree, or one subtree of it.
type ShowCommand struct {
	Meta
}

func (c *ShowCommand) Help() string {
	helpText := `
Usage: nodeattrs [global options] show [options] [PATH]

  Loads every attribute file in the attribute directory, merges the
  precedence levels and prints the result. With PATH, prints only the
  value at that path, written as "a.b.0" or "/a/b/0".

  The default output is a tree naming, for each map and list, the levels
  its merged value came from.

Options:

  -dir=DIR       Directory holding the attribute files. Defaults to
                 "attributes".

  -json          Print the merged value as JSON.

  -yaml          Print the merged value as YAML.

  -trace=MODE    Also print the recorded writes: "all", or an attribute
                 path. Defaults to the NODEATTRS_TRACE environment variable.

  -no-color      If specified, output won't contain any color.
`
	return strings.TrimSpace(helpText)
}

func (c *ShowCommand) Run(rawArgs []string) int {
	args, err := arguments.ParseShow(rawArgs)
	if err != nil {
		c.showError(err)
		return cli.RunResultHelp
	}
	c.applySource(args.Source)

	a, err := c.loadAttributes(args.Source)
	if err != nil {
		c.showError(err)
		return 1
	}

	if len(args.Path) != 0 {
		if _, err := a.ReadStrict(args.Path...); err != nil {
			c.showError(err)
			return 1
		}
	}

	out, err := renderValue(a.RootCell().Read(args.Path...), args.Path, args.ViewOptions.ViewType)
	if err != nil {
		c.showError(err)
		return 1
	}
	c.Ui.Output(out)

	if entries := a.TraceLog().All(); len(entries) != 0 {
		c.Ui.Output("")
		c.Ui.Output(renderTrace(c.Colorize(), entries))
	}
	return 0
}

func (c *ShowCommand) Synopsis() string {
	return "Show the merged attribute tree"
}
