// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"context"

	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/opentofu/nodeattrs/internal/command"
)

// commands is the mapping of all the available nodeattrs commands.
var commands map[string]cli.CommandFactory

// Ui is the cli.Ui used for communicating to the outside world.
var Ui cli.Ui

func initCommands(ctx context.Context, fs afero.Fs, color bool) {
	meta := command.Meta{
		Ui:    Ui,
		FS:    fs,
		Color: color,
		Ctx:   ctx,
	}

	commands = map[string]cli.CommandFactory{
		"show": func() (cli.Command, error) {
			return &command.ShowCommand{
				Meta: meta,
			}, nil
		},

		"get": func() (cli.Command, error) {
			return &command.GetCommand{
				Meta: meta,
			}, nil
		},

		"trace": func() (cli.Command, error) {
			return &command.TraceCommand{
				Meta: meta,
			}, nil
		},

		"version": func() (cli.Command, error) {
			return &command.VersionCommand{
				Meta:              meta,
				Version:           Version,
				VersionPrerelease: VersionPrerelease,
			}, nil
		},
	}
}
