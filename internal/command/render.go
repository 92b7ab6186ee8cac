// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package command

import (
	"fmt"
	"strings"

	"github.com/mitchellh/colorstring"
	"github.com/xlab/treeprint"

	"github.com/opentofu/nodeattrs/internal/attrfile"
	"github.com/opentofu/nodeattrs/internal/attrs"
	"github.com/opentofu/nodeattrs/internal/command/arguments"
)

// renderValue formats a merged value read from a root cell. The human view
// is a tree labelled with the levels each container merges; JSON and YAML
// encode the plain value.
func renderValue(v any, path attrs.Path, viewType arguments.ViewType) (string, error) {
	switch viewType {
	case arguments.ViewJSON:
		out, err := attrfile.MarshalJSON(rawValue(v))
		return string(out), err
	case arguments.ViewYAML:
		out, err := attrfile.MarshalYAML(rawValue(v))
		return strings.TrimSuffix(string(out), "\n"), err
	default:
		return renderTree(path.String(), v), nil
	}
}

func rawValue(v any) any {
	if c, ok := v.(*attrs.Cell); ok {
		return c.ToRaw()
	}
	return v
}

func renderTree(label string, v any) string {
	c, ok := v.(*attrs.Cell)
	if !ok || !(c.IsMap() || c.IsList()) {
		return fmt.Sprintf("%s = %s", label, formatScalar(rawValue(v)))
	}
	rootLabel := label
	if len(c.Path()) != 0 {
		rootLabel = cellLabel(label, c)
	}
	tree := treeprint.NewWithRoot(rootLabel)
	addTreeChildren(tree, c)
	return strings.TrimSuffix(tree.String(), "\n")
}

func addTreeChildren(tree treeprint.Tree, c *attrs.Cell) {
	c.Each(func(seg any, v any) {
		name := fmt.Sprint(seg)
		if c.IsList() {
			name = fmt.Sprintf("[%d]", seg)
		}
		child, ok := v.(*attrs.Cell)
		if !ok || !(child.IsMap() || child.IsList()) {
			tree.AddNode(fmt.Sprintf("%s = %s", name, formatScalar(rawValue(v))))
			return
		}
		addTreeChildren(tree.AddBranch(cellLabel(name, child)), child)
	})
}

func cellLabel(name string, c *attrs.Cell) string {
	levels := c.Levels()
	names := make([]string, len(levels))
	for i, l := range levels {
		names[i] = l.String()
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(names, ", "))
}

func formatScalar(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

var groupColors = map[attrs.Group]string{
	attrs.GroupDefault:   "[green]",
	attrs.GroupNormal:    "[cyan]",
	attrs.GroupOverride:  "[yellow]",
	attrs.GroupAutomatic: "[magenta]",
}

// renderTrace formats trace entries one per line, in the order they were
// recorded.
func renderTrace(color *colorstring.Colorize, entries []attrs.TraceEntry) string {
	var b strings.Builder
	for _, e := range entries {
		line := fmt.Sprintf("[bold]%s[reset] %s%s[reset] = %s",
			e.Path, groupColors[e.Level.Group()], e.Level, formatScalar(traceValue(e.Value)))
		if e.Source != "" {
			line += fmt.Sprintf(" [dim](from %s)[reset]", e.Source)
		}
		if e.ChildrenCleared {
			line += " [dim](replaced children)[reset]"
		}
		if e.Ignored {
			line += " [dim](ignored, already set)[reset]"
		}
		b.WriteString(color.Color(line))
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// traceValue abbreviates containers recorded in a trace entry.
func traceValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return rawString(fmt.Sprintf("{%d keys}", len(v)))
	case []any:
		return rawString(fmt.Sprintf("[%d elements]", len(v)))
	}
	return v
}

type rawString string

func (s rawString) String() string { return string(s) }
