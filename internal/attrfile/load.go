// Copyright (c) The OpenTofu Authors
// SPDX-License-Identifier: MPL-2.0

package attrfile

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"slices"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"

	"github.com/opentofu/nodeattrs/internal/attrs"
	"github.com/opentofu/nodeattrs/internal/tracing"
	"github.com/opentofu/nodeattrs/internal/tracing/traceattrs"
)

// File is one parsed attribute file.
type File struct {
	FileName

	// Path is the path the file was read from.
	Path string

	// Values is the raw attribute tree the file defines.
	Values map[string]any
}

// LevelSet is the content of an attribute directory, grouped by level.
type LevelSet struct {
	files map[attrs.Level][]*File
}

// Levels returns the levels that at least one file defined, lowest first.
func (s *LevelSet) Levels() []attrs.Level {
	var ret []attrs.Level
	for _, l := range attrs.Levels() {
		if len(s.files[l]) != 0 {
			ret = append(ret, l)
		}
	}
	return ret
}

// Files returns the files of one level in the order they are merged.
func (s *LevelSet) Files(l attrs.Level) []*File {
	return s.files[l]
}

// Level returns the deep merge of every file of the given level, or nil if
// no file defined it.
func (s *LevelSet) Level(l attrs.Level) map[string]any {
	files := s.files[l]
	if len(files) == 0 {
		return nil
	}
	merged := attrs.NewVividMap(nil)
	for _, f := range files {
		merged.Merge(f.Values)
	}
	return merged.ToMap()
}

// Apply replaces each level that the set defines with its merged content.
// Levels without files are left untouched.
//
// Each file is merged key by key into the emptied level, so the attribute
// trace records one write per key, attributed to the file it came from.
func (s *LevelSet) Apply(a *attrs.Attributes) {
	for _, l := range s.Levels() {
		files := s.files[l]
		a.WithSource(files[0].Path, func() {
			a.SetLevel(l, nil)
		})
		for _, f := range files {
			a.WithSource(f.Path, func() {
				a.Level(l).Merge(f.Values)
			})
		}
	}
}

func (s *LevelSet) add(f *File) {
	if s.files == nil {
		s.files = make(map[attrs.Level][]*File)
	}
	s.files[f.Level] = append(s.files[f.Level], f)
}

// LoadDir reads every attribute file directly inside dir. Subdirectories
// and files whose names do not look like attribute files are ignored.
//
// Failures of individual files do not stop the others from loading: the
// returned set holds every file that loaded, and the error, if any, is a
// *multierror.Error with one entry per failing file.
func LoadDir(ctx context.Context, fs afero.Fs, dir string) (*LevelSet, error) {
	ctx, span := tracing.Tracer().Start(ctx, "Load attribute directory",
		tracing.SpanAttributes(traceattrs.Dir(dir)),
	)
	defer span.End()

	afs := afero.Afero{Fs: fs}
	entries, err := afs.ReadDir(dir)
	if err != nil {
		tracing.SetSpanError(span, err)
		return nil, fmt.Errorf("reading attribute directory: %w", err)
	}

	set := &LevelSet{}
	var errs *multierror.Error
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok, err := ParseFileName(entry.Name())
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		if !ok {
			log.Printf("[TRACE] attrfile: ignoring %s", entry.Name())
			continue
		}

		f, err := loadFile(ctx, afs, filepath.Join(dir, entry.Name()), name)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		set.add(f)
	}

	span.SetAttributes(
		traceattrs.Levels(tracing.Strings(span, slices.Values(set.Levels()))),
	)
	if err := errs.ErrorOrNil(); err != nil {
		tracing.SetSpanError(span, err)
		return set, err
	}
	return set, nil
}

func loadFile(ctx context.Context, afs afero.Afero, path string, name FileName) (*File, error) {
	_, span := tracing.Tracer().Start(ctx, "Load attribute file",
		tracing.SpanAttributes(
			traceattrs.FilePath(path),
			traceattrs.Level(name.Level.String()),
			traceattrs.FileFormat(name.Format.String()),
		),
	)
	defer span.End()
	tracing.ContextProbeReport(ctx, 0)

	log.Printf("[TRACE] attrfile: loading %s into the %s level", path, name.Level)
	src, err := afs.ReadFile(path)
	if err != nil {
		tracing.SetSpanError(span, err)
		return nil, err
	}
	span.SetAttributes(traceattrs.FileSize(len(src)))

	values, err := Parse(path, src)
	if err != nil {
		tracing.SetSpanError(span, err)
		return nil, err
	}
	return &File{FileName: name, Path: path, Values: values}, nil
}
