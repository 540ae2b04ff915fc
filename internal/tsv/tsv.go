// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tsv writes tab-separated streams whose first line is a fixed
// header. Values are not escaped: a tab or newline inside a value would
// split it, which the scraped sites never produce.
package tsv

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// Separator joins cells.
	Separator = "\t"
	// LineSeparator joins rows.
	LineSeparator = "\n"
)

// ErrColumnCount reports a row whose width differs from its header.
var ErrColumnCount = errors.New("row width does not match header")

// Join joins cells into one line without a terminator.
func Join(cells []string) string {
	return strings.Join(cells, Separator)
}

// Block joins rows into newline-separated lines without a final terminator.
func Block(rows [][]string) string {
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = Join(r)
	}
	return strings.Join(lines, LineSeparator)
}

// Sink is one output stream with a declared header.
type Sink struct {
	w      io.Writer
	header []string
	rows   int
}

// NewSink writes header to w and returns the sink.
func NewSink(w io.Writer, header []string) (*Sink, error) {
	if len(header) == 0 {
		return nil, errors.New("empty header")
	}
	if _, err := io.WriteString(w, Join(header)+LineSeparator); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	return &Sink{w: w, header: header}, nil
}

// Header returns the sink's column names.
func (s *Sink) Header() []string {
	return s.header
}

// Rows returns the number of data rows written so far.
func (s *Sink) Rows() int {
	return s.rows
}

// WriteRow writes one row. Rows of the wrong width are rejected with
// ErrColumnCount and nothing is written.
func (s *Sink) WriteRow(cells []string) error {
	if len(cells) != len(s.header) {
		return fmt.Errorf("%w: got %d cells, header has %d", ErrColumnCount, len(cells), len(s.header))
	}
	if _, err := io.WriteString(s.w, Join(cells)+LineSeparator); err != nil {
		return fmt.Errorf("writing row: %w", err)
	}
	s.rows++
	return nil
}

// WriteBlock appends a block produced by Block or a table extractor. Every
// line is checked against the header before anything is written. An empty
// block writes nothing.
func (s *Sink) WriteBlock(block string) error {
	if block == "" {
		return nil
	}
	lines := strings.Split(block, LineSeparator)
	for i, line := range lines {
		if n := strings.Count(line, Separator) + 1; n != len(s.header) {
			return fmt.Errorf("%w: line %d has %d cells, header has %d", ErrColumnCount, i+1, n, len(s.header))
		}
	}
	if _, err := io.WriteString(s.w, block+LineSeparator); err != nil {
		return fmt.Errorf("writing block: %w", err)
	}
	s.rows += len(lines)
	return nil
}
