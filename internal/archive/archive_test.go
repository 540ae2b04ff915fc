// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

var started = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "archive", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

// seed archives a two-row owner stream through tsv.Streams.
func seed(t *testing.T, s *Store) string {
	t.Helper()
	ctx := context.Background()
	runID := started.Format(tsv.StampLayout)
	require.NoError(t, s.BeginRun(ctx, types.RunManifest{ID: runID, Kind: types.RunParcels, StartedAt: started}))

	streams, err := tsv.OpenStreams(ctx, t.TempDir(), started, s,
		tsv.StreamSpec{Name: "OwnerHistory", Header: []string{"Owner", "Sale Price", "PID", "CollectedOn"}},
		tsv.StreamSpec{Name: "Suppressed", Header: []string{"PID", "Map", "Lot", "CollectedOn"}},
	)
	require.NoError(t, err)
	require.NoError(t, streams.Write(ctx, "OwnerHistory", "1001", []string{"SMITH JOHN", "250000", "1001", "2024-05-01"}))
	require.NoError(t, streams.Write(ctx, "OwnerHistory", "1001", []string{"DOE JANE", "", "1001", "2024-05-01"}))
	require.NoError(t, streams.Close())

	require.NoError(t, s.FinishRun(ctx, types.RunManifest{
		ID: runID, FinishedAt: started.Add(time.Minute), Processed: 1, Succeeded: 1,
	}))
	return runID
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Close())
}

func TestSummary(t *testing.T) {
	s := testStore(t)
	runID := seed(t, s)

	sums, err := s.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []RunSummary{
		{RunID: runID, Kind: types.RunParcels, StartedAt: "2024-05-01T10:00:00Z", Stream: "OwnerHistory", Rows: 2},
		{RunID: runID, Kind: types.RunParcels, StartedAt: "2024-05-01T10:00:00Z", Stream: "Suppressed", Rows: 0},
	}, sums)
}

func TestExportTSVRebuildsStream(t *testing.T) {
	s := testStore(t)
	runID := seed(t, s)

	var buf bytes.Buffer
	require.NoError(t, s.ExportTSV(context.Background(), &buf, runID, "OwnerHistory"))
	assert.Equal(t,
		"Owner\tSale Price\tPID\tCollectedOn\nSMITH JOHN\t250000\t1001\t2024-05-01\nDOE JANE\t\t1001\t2024-05-01\n",
		buf.String())
}

func TestExportYAMLAndJSON(t *testing.T) {
	s := testStore(t)
	runID := seed(t, s)
	ctx := context.Background()

	var y bytes.Buffer
	require.NoError(t, s.ExportYAML(ctx, &y, runID, "OwnerHistory"))
	var fromYAML []ExportEntry
	require.NoError(t, yaml.Unmarshal(y.Bytes(), &fromYAML))
	require.Len(t, fromYAML, 2)
	assert.Equal(t, "SMITH JOHN", fromYAML[0].Fields["Owner"])
	assert.Equal(t, "", fromYAML[1].Fields["Sale Price"])

	var j bytes.Buffer
	require.NoError(t, s.ExportJSON(ctx, &j, runID, "OwnerHistory"))
	var fromJSON []ExportEntry
	require.NoError(t, json.Unmarshal(j.Bytes(), &fromJSON))
	assert.Equal(t, fromYAML, fromJSON)
}

func TestStreamNotArchived(t *testing.T) {
	s := testStore(t)
	_, _, err := s.Stream(context.Background(), "nope", "OwnerHistory")
	assert.ErrorContains(t, err, "not archived")
}

func TestManifestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := types.RunManifest{
		ID:         "2024-05-01_10-00-00",
		Kind:       types.RunDeeds,
		StartedAt:  started,
		FinishedAt: started.Add(2 * time.Second),
		Inputs:     []string{"results.html"},
		Streams:    []types.StreamSummary{{Name: "Deeds", Path: "out/Deeds_2024-05-01_10-00-00.tsv", Rows: 3}},
		Processed:  1,
		Succeeded:  3,
		Failed:     1,
	}
	path, err := WriteManifest(dir, m)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "manifest_2024-05-01_10-00-00.yaml"), path)

	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}
