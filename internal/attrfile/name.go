// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/opentofu/nodeattrs/internal/attrs"
)

// Format is the syntax of an attribute file.
type Format int

const (
	FormatHCL Format = iota
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatHCL:
		return "hcl"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatForExt returns the format for a file extension including its
// leading dot, or false if the extension is not an attribute file
// extension.
func FormatForExt(ext string) (Format, bool) {
	switch ext {
	case ".hcl":
		return FormatHCL, true
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return 0, false
	}
}

// FileName is the decomposed name of an attribute file.
type FileName struct {
	Level  attrs.Level
	Name   string
	Format Format
}

// ParseFileName decomposes a base file name of the form
// <level>[.<name>].<ext>.
//
// The second result is false for names that are not attribute files at all:
// hidden files and files with other extensions. A name with a recognized
// extension but an unknown level is an error.
func ParseFileName(base string) (FileName, bool, error) {
	if strings.HasPrefix(base, ".") {
		return FileName{}, false, nil
	}
	ext := filepath.Ext(base)
	format, ok := FormatForExt(ext)
	if !ok {
		return FileName{}, false, nil
	}

	stem := strings.TrimSuffix(base, ext)
	levelName, name, _ := strings.Cut(stem, ".")
	level, err := attrs.ParseLevel(levelName)
	if err != nil {
		return FileName{}, true, fmt.Errorf("invalid attribute file name %q: %w", base, err)
	}
	return FileName{Level: level, Name: name, Format: format}, true, nil
}
