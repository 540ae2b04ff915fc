// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deed

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/recordscrape/internal/archive"
	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// StreamDeeds names the deeds stream file.
const StreamDeeds = "Deeds"

// BatchResult holds the outcome of extracting a set of saved pages.
type BatchResult struct {
	Pages        int
	Transactions int
	Skipped      int
	Failed       int
}

// HasFailures reports whether any page could not be read or any
// transaction was malformed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0 || r.Skipped > 0
}

// ExtractFile writes the transactions of one saved page to out and returns
// how many were written and skipped.
func (e *Extractor) ExtractFile(ctx context.Context, path string, out *tsv.Streams) (written, skipped int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return 0, 0, err
	}
	records, skipped := e.Records(doc, e.now().Format(CollectedOnLayout))
	for _, r := range records {
		if err := out.Write(ctx, StreamDeeds, r[0], r); err != nil {
			return written, skipped, err
		}
		written++
	}
	return written, skipped, nil
}

// Run extracts every page in paths into a fresh deeds stream in outputDir,
// printing per-page status to w, and writes the run manifest. store may be
// nil.
func (e *Extractor) Run(ctx context.Context, paths []string, outputDir string, store *archive.Store, w io.Writer) (types.RunManifest, BatchResult, error) {
	started := e.now()
	m := types.RunManifest{
		ID:        started.Format(tsv.StampLayout),
		Kind:      types.RunDeeds,
		StartedAt: started,
		Inputs:    paths,
	}

	var arch tsv.Archiver
	if store != nil {
		if err := store.BeginRun(ctx, m); err != nil {
			return m, BatchResult{}, err
		}
		arch = store
	}

	out, err := tsv.OpenStreams(ctx, outputDir, started, arch, tsv.StreamSpec{Name: StreamDeeds, Header: e.Header()})
	if err != nil {
		return m, BatchResult{}, err
	}

	var result BatchResult
	for _, path := range paths {
		if ctx.Err() != nil {
			fmt.Fprintf(w, "stopped: %v\n", ctx.Err())
			break
		}
		result.Pages++
		written, skipped, err := e.ExtractFile(ctx, path, out)
		result.Transactions += written
		result.Skipped += skipped
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", path, err)
			e.log().Error("deed page failed", "path", path, "err", err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "extracted: %s (%d transactions, %d skipped)\n", path, written, skipped)
	}
	fmt.Fprintf(w, "\nBatch summary: %d pages, %d transactions, %d skipped, %d failed\n",
		result.Pages, result.Transactions, result.Skipped, result.Failed)

	if err := out.Close(); err != nil {
		return m, result, err
	}

	m.FinishedAt = e.now()
	m.Streams = out.Summaries()
	m.Processed = result.Pages
	m.Succeeded = result.Transactions
	m.Failed = result.Failed + result.Skipped

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
