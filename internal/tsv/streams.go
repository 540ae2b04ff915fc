// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tsv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/recordscrape/pkg/types"
)

// Archiver receives a copy of every row a run writes.
type Archiver interface {
	AddStream(ctx context.Context, runID, name string, header []string) error
	Append(ctx context.Context, runID, stream, pid string, cells []string) error
}

// StreamSpec declares one stream of a run.
type StreamSpec struct {
	Name   string
	Header []string
}

// Streams is the output of one run: a FileSet with one sink per declared
// stream, optionally mirrored into an Archiver.
type Streams struct {
	files   *FileSet
	specs   []StreamSpec
	sinks   map[string]*Sink
	archive Archiver
}

// OpenStreams creates every stream file in dir and writes its header. The
// run id is the file-name timestamp. archive may be nil.
func OpenStreams(ctx context.Context, dir string, startedAt time.Time, archive Archiver, specs ...StreamSpec) (*Streams, error) {
	files, err := NewFileSet(dir, startedAt)
	if err != nil {
		return nil, err
	}
	s := &Streams{files: files, specs: specs, sinks: make(map[string]*Sink, len(specs)), archive: archive}
	for _, spec := range specs {
		sink, err := files.Open(spec.Name, spec.Header)
		if err != nil {
			files.Close()
			return nil, err
		}
		s.sinks[spec.Name] = sink
		if archive != nil {
			if err := archive.AddStream(ctx, s.RunID(), spec.Name, spec.Header); err != nil {
				files.Close()
				return nil, fmt.Errorf("archiving stream %s: %w", spec.Name, err)
			}
		}
	}
	return s, nil
}

// RunID identifies the run in file names and the archive.
func (s *Streams) RunID() string {
	return s.files.Stamp()
}

// Write appends one row to stream and mirrors it into the archive.
func (s *Streams) Write(ctx context.Context, stream, pid string, cells []string) error {
	sink, ok := s.sinks[stream]
	if !ok {
		return fmt.Errorf("unknown stream %q", stream)
	}
	if err := sink.WriteRow(cells); err != nil {
		return fmt.Errorf("%s: %w", stream, err)
	}
	if s.archive == nil {
		return nil
	}
	if err := s.archive.Append(ctx, s.RunID(), stream, pid, cells); err != nil {
		return fmt.Errorf("archiving %s row: %w", stream, err)
	}
	return nil
}

// WriteBlock appends a block of rows to stream and mirrors each line into
// the archive. The whole block is rejected if any line has the wrong width.
func (s *Streams) WriteBlock(ctx context.Context, stream, pid, block string) error {
	sink, ok := s.sinks[stream]
	if !ok {
		return fmt.Errorf("unknown stream %q", stream)
	}
	if err := sink.WriteBlock(block); err != nil {
		return fmt.Errorf("%s: %w", stream, err)
	}
	if s.archive == nil || block == "" {
		return nil
	}
	for _, line := range strings.Split(block, LineSeparator) {
		if err := s.archive.Append(ctx, s.RunID(), stream, pid, strings.Split(line, Separator)); err != nil {
			return fmt.Errorf("archiving %s row: %w", stream, err)
		}
	}
	return nil
}

// Summaries lists the streams in declaration order with their row counts.
func (s *Streams) Summaries() []types.StreamSummary {
	paths := s.files.Paths()
	out := make([]types.StreamSummary, len(s.specs))
	for i, spec := range s.specs {
		out[i] = types.StreamSummary{Name: spec.Name, Path: paths[i], Rows: s.sinks[spec.Name].Rows()}
	}
	return out
}

// Close closes every stream file.
func (s *Streams) Close() error {
	if err := s.files.Close(); err != nil {
		return fmt.Errorf("closing streams: %w", err)
	}
	return nil
}
