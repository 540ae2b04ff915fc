// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunKind names the page family a run extracted.
type RunKind string

const (
	RunParcels RunKind = "parcels"
	RunDeeds   RunKind = "deeds"
)

// StreamSummary describes one output file of a run.
type StreamSummary struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
	Rows int    `json:"rows" yaml:"rows"`
}

// RunManifest records what a run read and wrote. It is written as YAML next
// to the run's streams and mirrored in the archive.
type RunManifest struct {
	ID          string          `json:"id" yaml:"id"`
	Kind        RunKind         `json:"kind" yaml:"kind"`
	StartedAt   time.Time       `json:"started_at" yaml:"started_at"`
	FinishedAt  time.Time       `json:"finished_at" yaml:"finished_at"`
	DataVersion string          `json:"data_version,omitempty" yaml:"data_version,omitempty"`
	Inputs      []string        `json:"inputs" yaml:"inputs"`
	Streams     []StreamSummary `json:"streams" yaml:"streams"`
	Processed   int             `json:"processed" yaml:"processed"`
	Succeeded   int             `json:"succeeded" yaml:"succeeded"`
	Suppressed  int             `json:"suppressed,omitempty" yaml:"suppressed,omitempty"`
	Failed      int             `json:"failed" yaml:"failed"`
}
