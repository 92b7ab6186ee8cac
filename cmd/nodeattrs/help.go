// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/cli"
)

// helpFunc is a cli.HelpFunc that lists every command with its synopsis,
// aligned on the longest command name.
func helpFunc(commands map[string]cli.CommandFactory) string {
	names := make([]string, 0, len(commands))
	maxLen := 0
	for name := range commands {
		names = append(names, name)
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}
	sort.Strings(names)

	var buf bytes.Buffer
	buf.WriteString(strings.TrimSpace(`
Usage: nodeattrs [global options] <subcommand> [args]

Reads attribute files from a directory, one file per precedence level,
and shows the merged node attributes.

Commands:
`))
	buf.WriteString("\n")
	for _, name := range names {
		var synopsis string
		if cmd, err := commands[name](); err == nil {
			synopsis = cmd.Synopsis()
		}
		fmt.Fprintf(&buf, "  %s  %s\n", name+strings.Repeat(" ", maxLen-len(name)), synopsis)
	}

	buf.WriteString("\n")
	buf.WriteString(strings.TrimSpace(`
Global options (use these before the subcommand, if any):
  -help         Show this help output, or the help for a specified subcommand.
  -version      An alias for the "version" subcommand.
`))
	buf.WriteString("\n")
	return buf.String()
}
