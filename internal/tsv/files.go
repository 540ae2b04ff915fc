// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tsv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StampLayout names the files of one run.
const StampLayout = "2006-01-02_15-04-05"

// FileSet opens one file per stream in a directory, all sharing the run's
// timestamp, e.g. OwnerHistory_2024-05-01_10-00-00.tsv.
type FileSet struct {
	dir   string
	stamp string
	files []*os.File
	paths []string
}

// NewFileSet creates dir if needed.
func NewFileSet(dir string, startedAt time.Time) (*FileSet, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return &FileSet{dir: dir, stamp: startedAt.Format(StampLayout)}, nil
}

// Open creates <name>_<stamp>.tsv and returns a sink with header written.
func (fs *FileSet) Open(name string, header []string) (*Sink, error) {
	path := filepath.Join(fs.dir, fmt.Sprintf("%s_%s.tsv", name, fs.stamp))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	fs.files = append(fs.files, f)
	fs.paths = append(fs.paths, path)
	return NewSink(f, header)
}

// Paths returns the files opened so far, in opening order.
func (fs *FileSet) Paths() []string {
	return fs.paths
}

// Stamp returns the timestamp shared by the set's file names.
func (fs *FileSet) Stamp() string {
	return fs.stamp
}

// Close closes every file and reports all failures.
func (fs *FileSet) Close() error {
	var errs []error
	for _, f := range fs.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	fs.files = nil
	return errors.Join(errs...)
}
