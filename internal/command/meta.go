// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"context"
	"fmt"
	"log"

	"github.com/mitchellh/cli"
	"github.com/mitchellh/colorstring"
	"github.com/spf13/afero"

	"github.com/opentofu/nodeattrs/internal/attrfile"
	"github.com/opentofu/nodeattrs/internal/attrs"
	"github.com/opentofu/nodeattrs/internal/command/arguments"
	"github.com/opentofu/nodeattrs/internal/logging"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	// Ui is where all output goes.
	Ui cli.Ui

	// FS is the filesystem attribute directories are read from.
	FS afero.Fs

	// Color is true when the output may be colored. Commands clear it for
	// -no-color.
	Color bool

	// Ctx is the context of the whole CLI run. Nil means
	// context.Background.
	Ctx context.Context
}

// CommandContext returns the context commands should pass to blocking
// operations.
func (m *Meta) CommandContext() context.Context {
	if m.Ctx == nil {
		return context.Background()
	}
	return m.Ctx
}

// Colorize returns the colorizer for the current color setting.
func (m *Meta) Colorize() *colorstring.Colorize {
	return newColorize(m.Color)
}

func (m *Meta) applySource(src arguments.Source) {
	if src.NoColor {
		m.Color = false
	}
}

// loadAttributes loads the attribute directory named by src into a new
// attribute store. Any file that fails to load fails the whole load.
func (m *Meta) loadAttributes(src arguments.Source) (*attrs.Attributes, error) {
	set, err := attrfile.LoadDir(m.CommandContext(), m.FS, src.Dir)
	if err != nil {
		return nil, err
	}

	a := attrs.New(attrs.Config{
		Trace:  src.Trace,
		Logger: logging.NewLogger("attrs"),
	})
	set.Apply(a)
	log.Printf("[DEBUG] command: loaded levels %v from %s", set.Levels(), src.Dir)
	return a, nil
}

// showError prints err to the error stream, colored when color is on.
func (m *Meta) showError(err error) {
	ui := NewColorizeUi(m.Ui, m.Color)
	ui.Error(fmt.Sprintf("Error: %s", err))
}
