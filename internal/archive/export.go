// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// ExportEntry is one archived row keyed by its column names.
type ExportEntry struct {
	Run    string            `json:"run" yaml:"run"`
	Stream string            `json:"stream" yaml:"stream"`
	Fields map[string]string `json:"fields" yaml:"fields"`
}

// Entries returns the rows of one archived stream as column/value maps.
func (s *Store) Entries(ctx context.Context, runID, stream string) ([]ExportEntry, error) {
	header, rows, err := s.Stream(ctx, runID, stream)
	if err != nil {
		return nil, err
	}
	out := make([]ExportEntry, len(rows))
	for i, cells := range rows {
		fields := make(map[string]string, len(header))
		for j, name := range header {
			if j < len(cells) {
				fields[name] = cells[j]
			}
		}
		out[i] = ExportEntry{Run: runID, Stream: stream, Fields: fields}
	}
	return out, nil
}

// ExportYAML writes one archived stream as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, runID, stream string) error {
	entries, err := s.Entries(ctx, runID, stream)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// ExportJSON writes one archived stream as an indented JSON array.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, runID, stream string) error {
	entries, err := s.Entries(ctx, runID, stream)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// ExportTSV rebuilds one archived stream, header first.
func (s *Store) ExportTSV(ctx context.Context, w io.Writer, runID, stream string) error {
	header, rows, err := s.Stream(ctx, runID, stream)
	if err != nil {
		return err
	}
	sink, err := tsv.NewSink(w, header)
	if err != nil {
		return err
	}
	for _, r := range rows {
		if err := sink.WriteRow(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteManifest writes m as manifest_<id>.yaml in dir and returns the path.
func WriteManifest(dir string, m types.RunManifest) (string, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("marshaling manifest: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("manifest_%s.yaml", m.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing manifest: %w", err)
	}
	return path, nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (types.RunManifest, error) {
	var m types.RunManifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("reading manifest: %w", err)
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
