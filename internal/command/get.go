// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"strings"

	"github.com/mitchellh/cli"

	"github.com/opentofu/nodeattrs/internal/command/arguments"
	"github.com/opentofu/nodeattrs/internal/tracing"
	"github.com/opentofu/nodeattrs/internal/tracing/traceattrs"
)

// GetCommand is a Command implementation that prints the merged value of
// one attribute.
type GetCommand struct {
	Meta
}

func (c *GetCommand) Help() string {
	helpText := `
Usage: nodeattrs [global options] get [options] PATH

  Prints the merged value at PATH, written as "a.b.0" or "/a/b/0". Scalars
  print on their own; maps and lists print as JSON unless -yaml is given.

  Fails if nothing exists at PATH, suggesting a similar key when there is
  one.

Options:

  -dir=DIR       Directory holding the attribute files. Defaults to
                 "attributes".

  -json          Print the value as JSON, even when it is a scalar.

  -yaml          Print the value as YAML.

  -no-color      If specified, output won't contain any color.
`
	return strings.TrimSpace(helpText)
}

func (c *GetCommand) Run(rawArgs []string) int {
	args, err := arguments.ParseGet(rawArgs)
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

	v, err := a.ReadStrict(args.Path...)
	if err != nil {
		c.showError(err)
		return 1
	}

	viewType := args.ViewOptions.ViewType
	raw := rawValue(a.RootCell().Read(args.Path...))
	switch raw.(type) {
	case map[string]any, []any:
		if viewType == arguments.ViewHuman {
			viewType = arguments.ViewJSON
		}
	default:
		if viewType == arguments.ViewHuman {
			c.Ui.Output(formatGetScalar(v))
			return 0
		}
	}

	out, err := renderValue(raw, args.Path, viewType)
	if err != nil {
		c.showError(err)
		return 1
	}
	c.Ui.Output(out)
	return 0
}

// formatGetScalar prints strings bare, for use in shell scripts.
func formatGetScalar(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return formatScalar(v)
}

func (c *GetCommand) Synopsis() string {
	return "Print the merged value of one attribute"
}
