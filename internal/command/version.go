// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2023 HashiCorp, Inc.
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/opentofu/nodeattrs/internal/command/arguments"
)

// VersionCommand is a Command implementation prints the version.
type VersionCommand struct {
	Meta

	Version           string
	VersionPrerelease string
	Platform          string
}

// VersionOutput is the JSON shape of the version command output.
type VersionOutput struct {
	Version  string `json:"nodeattrs_version"`
	Platform string `json:"platform"`
}

func (c *VersionCommand) Help() string {
	helpText := `
Usage: nodeattrs [global options] version [options]

  Displays the version of nodeattrs.

Options:

  -json       Output the version information as a JSON object.
`
	return strings.TrimSpace(helpText)
}

func (c *VersionCommand) Run(rawArgs []string) int {
	args, err := arguments.ParseVersion(rawArgs)
	if err != nil {
		c.showError(err)
		return cli.RunResultHelp
	}

	versionString := c.Version
	if c.VersionPrerelease != "" {
		versionString = fmt.Sprintf("%s-%s", c.Version, c.VersionPrerelease)
	}
	platform := c.Platform
	if platform == "" {
		platform = runtime.GOOS + "_" + runtime.GOARCH
	}

	if args.ViewOptions.ViewType == arguments.ViewJSON {
		out, err := json.MarshalIndent(VersionOutput{Version: versionString, Platform: platform}, "", "  ")
		if err != nil {
			c.showError(err)
			return 1
		}
		c.Ui.Output(string(out))
		return 0
	}

	c.Ui.Output(fmt.Sprintf("nodeattrs v%s\non %s", versionString, platform))
	return 0
}

func (c *VersionCommand) Synopsis() string {
	return "Show the current nodeattrs version"
}
