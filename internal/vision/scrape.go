// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vision drives a scrape of an assessment site: it reads a PID
// list, fetches each parcel page and writes the main record, the history
// tables and the suppressed parcels to their streams.
package vision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/history"
	"github.com/pdiddy/recordscrape/internal/parcel"
	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// ErrParcelUnavailable reports the site's "error loading the parcel" page.
var ErrParcelUnavailable = errors.New("parcel unavailable")

var unavailableMarker = []byte("There was an error loading the parcel")

// BatchResult holds the outcome of a batch scrape.
type BatchResult struct {
	Scraped     int
	Suppressed  int
	Failed      int
	Interrupted bool
}

// Total returns the number of parcels processed.
func (r BatchResult) Total() int {
	return r.Scraped + r.Suppressed + r.Failed
}

// HasFailures reports whether any parcel failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Scraper turns parcel pages into stream rows.
type Scraper struct {
	Source  Source
	Records *parcel.Extractor
	History *history.Extractor
	// Delay separates consecutive page requests.
	Delay time.Duration
	Log   *slog.Logger
	// Now stamps CollectedOn; nil means time.Now.
	Now func() time.Time
}

// NewScraper wires a scraper from cfg. Snapshot directories are read
// without a delay.
func NewScraper(cfg types.ParcelConfig, log *slog.Logger) *Scraper {
	s := &Scraper{
		Source:  NewSource(cfg),
		Records: parcel.NewExtractor(cfg.DataVersion),
		History: &history.Extractor{Placement: cfg.IDPlacement, Log: log},
		Delay:   cfg.RequestDelay,
		Log:     log,
	}
	if cfg.PagesDir != "" {
		s.Delay = 0
	}
	return s
}

func (s *Scraper) log() *slog.Logger {
	if s.Log == nil {
		return slog.Default()
	}
	return s.Log
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// StreamSpecs declares the streams this scraper writes.
func (s *Scraper) StreamSpecs() []tsv.StreamSpec {
	return StreamSpecs(s.Records, s.History)
}

// ScrapeParcel writes everything one page yields. A suppressed parcel goes
// to the suppressed stream only. A page whose main record cannot be built
// still has its history tables written, and the record error is returned.
func (s *Scraper) ScrapeParcel(ctx context.Context, id ParcelID, recordNum int, out *tsv.Streams) (suppressed bool, err error) {
	body, err := s.Source.Page(ctx, id.PID)
	if err != nil {
		return false, err
	}
	if bytes.Contains(body, unavailableMarker) {
		return false, fmt.Errorf("%w: PID %s, map %s lot %s", ErrParcelUnavailable, id.PID, id.Map, id.Lot)
	}
	doc, err := dom.Parse(bytes.NewReader(body))
	if err != nil {
		return false, err
	}

	now := s.now()
	if parcel.Suppressed(doc) {
		row := []string{id.PID, id.Map, id.Lot, now.Format(parcel.CollectedOnLayout)}
		return true, out.Write(ctx, StreamSuppressed, id.PID, row)
	}

	rec, recErr := s.Records.Record(doc, recordNum, now)
	if recErr == nil {
		if err := out.Write(ctx, StreamMain, id.PID, rec); err != nil {
			return false, err
		}
	} else {
		s.log().Warn("main record dropped", "pid", id.PID, "err", recErr)
	}

	date := now.Format(history.CollectedOnLayout)
	for _, kind := range types.TableKinds {
		block := s.History.Block(doc, kind, id.PID, date)
		if err := out.WriteBlock(ctx, HistoryStreams[kind], id.PID, block); err != nil {
			return false, err
		}
	}
	return false, recErr
}

// ScrapeBatch processes ids in order, printing per-parcel status to w and
// returning a summary. It continues after individual failures and waits
// Delay between requests. A cancelled context stops the batch.
func (s *Scraper) ScrapeBatch(ctx context.Context, ids []ParcelID, out *tsv.Streams, w io.Writer) BatchResult {
	var result BatchResult
	for i, id := range ids {
		if i > 0 && s.Delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(s.Delay):
			}
		}
		if ctx.Err() != nil {
			fmt.Fprintf(w, "stopped: %v\n", ctx.Err())
			result.Interrupted = true
			break
		}

		suppressed, err := s.ScrapeParcel(ctx, id, i+1, out)
		switch {
		case err != nil:
			fmt.Fprintf(w, "failed:  %s (%v)\n", id.PID, err)
			s.log().Error("parcel failed", "pid", id.PID, "map", id.Map, "lot", id.Lot, "err", err)
			result.Failed++
		case suppressed:
			fmt.Fprintf(w, "suppressed: %s\n", id.PID)
			result.Suppressed++
		default:
			fmt.Fprintf(w, "scraped: %s\n", id.PID)
			result.Scraped++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d scraped, %d suppressed, %d failed (total: %d)\n",
		result.Scraped, result.Suppressed, result.Failed, result.Total())
	return result
}
