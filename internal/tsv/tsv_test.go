// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tsv

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinAndBlock(t *testing.T) {
	assert.Equal(t, "a\tb\t", Join([]string{"a", "b", ""}))
	assert.Equal(t, "a\tb\nc\td", Block([][]string{{"a", "b"}, {"c", "d"}}))
	assert.Equal(t, "", Block(nil))
}

func TestSinkWriteRow(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSink(&buf, []string{"PID", "Owner"})
	require.NoError(t, err)

	require.NoError(t, s.WriteRow([]string{"1", "SMITH"}))
	err = s.WriteRow([]string{"2"})
	assert.ErrorIs(t, err, ErrColumnCount)

	assert.Equal(t, "PID\tOwner\n1\tSMITH\n", buf.String())
	assert.Equal(t, 1, s.Rows())
}

func TestSinkWriteBlock(t *testing.T) {
	var buf bytes.Buffer
	s, err := NewSink(&buf, []string{"a", "b"})
	require.NoError(t, err)

	require.NoError(t, s.WriteBlock(""))
	require.NoError(t, s.WriteBlock("1\t2\n3\t4"))
	assert.ErrorIs(t, s.WriteBlock("5\t6\n7"), ErrColumnCount)

	assert.Equal(t, "a\tb\n1\t2\n3\t4\n", buf.String(), "a bad block writes nothing")
	assert.Equal(t, 2, s.Rows())
}

func TestNewSinkEmptyHeader(t *testing.T) {
	_, err := NewSink(&bytes.Buffer{}, nil)
	assert.Error(t, err)
}

func TestFileSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	fs, err := NewFileSet(dir, started)
	require.NoError(t, err)

	s, err := fs.Open("OwnerHistory", []string{"Owner", "PID"})
	require.NoError(t, err)
	require.NoError(t, s.WriteRow([]string{"SMITH", "1"}))
	require.NoError(t, fs.Close())

	want := filepath.Join(dir, "OwnerHistory_2024-05-01_10-00-00.tsv")
	assert.Equal(t, []string{want}, fs.Paths())

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.Equal(t, "Owner\tPID\nSMITH\t1\n", string(data))
}

type recordingArchive struct {
	streams map[string][]string
	rows    []string
}

func (a *recordingArchive) AddStream(_ context.Context, runID, name string, header []string) error {
	if a.streams == nil {
		a.streams = map[string][]string{}
	}
	a.streams[runID+"/"+name] = header
	return nil
}

func (a *recordingArchive) Append(_ context.Context, runID, stream, pid string, cells []string) error {
	a.rows = append(a.rows, runID+"/"+stream+"/"+pid+"/"+Join(cells))
	return nil
}

func TestStreams(t *testing.T) {
	ctx := context.Background()
	arch := &recordingArchive{}
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	s, err := OpenStreams(ctx, t.TempDir(), started, arch,
		StreamSpec{Name: "ScrapedData", Header: []string{"PID", "Owner"}},
		StreamSpec{Name: "Suppressed", Header: []string{"PID", "Map", "Lot", "CollectedOn"}},
	)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01_10-00-00", s.RunID())

	require.NoError(t, s.Write(ctx, "ScrapedData", "1001", []string{"1001", "SMITH"}))
	assert.ErrorIs(t, s.Write(ctx, "ScrapedData", "1002", []string{"1002"}), ErrColumnCount)
	assert.Error(t, s.Write(ctx, "Nope", "1", []string{"x"}))
	require.NoError(t, s.Close())

	assert.Equal(t, []string{"PID", "Owner"}, arch.streams["2024-05-01_10-00-00/ScrapedData"])
	assert.Equal(t, []string{"2024-05-01_10-00-00/ScrapedData/1001/1001\tSMITH"}, arch.rows)

	sums := s.Summaries()
	require.Len(t, sums, 2)
	assert.Equal(t, "ScrapedData", sums[0].Name)
	assert.Equal(t, 1, sums[0].Rows)
	assert.Equal(t, 0, sums[1].Rows)
}

func TestStreamsWriteBlock(t *testing.T) {
	ctx := context.Background()
	arch := &recordingArchive{}
	started := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	s, err := OpenStreams(ctx, t.TempDir(), started, arch,
		StreamSpec{Name: "OwnerHistory", Header: []string{"Owner", "PID"}})
	require.NoError(t, err)

	require.NoError(t, s.WriteBlock(ctx, "OwnerHistory", "1001", ""))
	require.NoError(t, s.WriteBlock(ctx, "OwnerHistory", "1001", Block([][]string{{"SMITH", "1001"}, {"DOE", "1001"}})))
	assert.ErrorIs(t, s.WriteBlock(ctx, "OwnerHistory", "1002", "JONES\t1002\nBAD"), ErrColumnCount)
	assert.Error(t, s.WriteBlock(ctx, "Nope", "1", "x"))
	require.NoError(t, s.Close())

	assert.Equal(t, []string{
		"2024-05-01_10-00-00/OwnerHistory/1001/SMITH\t1001",
		"2024-05-01_10-00-00/OwnerHistory/1001/DOE\t1001",
	}, arch.rows)
	assert.Equal(t, 2, s.Summaries()[0].Rows)

	data, err := os.ReadFile(s.Summaries()[0].Path)
	require.NoError(t, err)
	assert.Equal(t, "Owner\tPID\nSMITH\t1001\nDOE\t1001\n", string(data))
}
