// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/recordscrape/internal/archive"
	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// Run scrapes ids into a fresh set of streams in outputDir and writes the
// run manifest beside them. store may be nil; otherwise every row is also
// archived. inputs names what the ids were read from.
func (s *Scraper) Run(ctx context.Context, ids []ParcelID, outputDir, dataVersion string, inputs []string, store *archive.Store, w io.Writer) (types.RunManifest, BatchResult, error) {
	started := s.now()
	m := types.RunManifest{
		ID:          started.Format(tsv.StampLayout),
		Kind:        types.RunParcels,
		StartedAt:   started,
		DataVersion: dataVersion,
		Inputs:      inputs,
	}

	var arch tsv.Archiver
	if store != nil {
		if err := store.BeginRun(ctx, m); err != nil {
			return m, BatchResult{}, err
		}
		arch = store
	}

	out, err := tsv.OpenStreams(ctx, outputDir, started, arch, s.StreamSpecs()...)
	if err != nil {
		return m, BatchResult{}, err
	}
	result := s.ScrapeBatch(ctx, ids, out, w)
	if err := out.Close(); err != nil {
		return m, result, err
	}

	m.FinishedAt = s.now()
	m.Streams = out.Summaries()
	m.Processed = result.Total()
	m.Succeeded = result.Scraped
	m.Suppressed = result.Suppressed
	m.Failed = result.Failed

	path, err := archive.WriteManifest(outputDir, m)
	if err != nil {
		return m, result, err
	}
	fmt.Fprintf(w, "manifest: %s\n", path)

	if store != nil {
		if err := store.FinishRun(context.WithoutCancel(ctx), m); err != nil {
			return m, result, err
		}
	}
	return m, result, nil
}
