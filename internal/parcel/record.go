// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parcel builds the main assessment record of a parcel page: the
// labeled scalar fields, a recent/previous sale summary and the latest two
// assessment and appraisal snapshots.
package parcel

import (
	"errors"
	"strconv"
	"time"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/normalize"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// CollectedOnLayout formats the CollectedOn column of main records.
const CollectedOnLayout = "2006-01-02 15:04:05"

var (
	// ErrMissingField reports a required field absent from the page. The
	// page's main record is dropped; its history tables are still read.
	ErrMissingField = errors.New("missing required field")

	// ErrSuppressed reports a parcel whose details the site withholds.
	ErrSuppressed = errors.New("parcel details suppressed")
)

// Extractor turns parcel pages into main records.
type Extractor struct {
	Schema      types.Schema
	DataVersion string
}

// NewExtractor returns an Extractor over VisionSchema.
func NewExtractor(dataVersion string) *Extractor {
	return &Extractor{Schema: VisionSchema, DataVersion: dataVersion}
}

// Header returns the main stream's column names.
func (e *Extractor) Header() []string {
	h := e.Schema.Header()
	h = append(h, SaleColumns...)
	h = append(h, ValuationColumns...)
	return append(h, TrailerColumns...)
}

// Suppressed reports whether the page withholds the parcel's details.
func Suppressed(doc *dom.Document) bool {
	return !doc.Has(SuppressionMarker)
}

// Record extracts the main record of one page. It returns ErrSuppressed
// for withheld parcels and wraps ErrMissingField when a required field is
// absent. The record always has len(e.Header()) cells.
func (e *Extractor) Record(doc *dom.Document, recordNum int, collectedOn time.Time) (types.Record, error) {
	if Suppressed(doc) {
		return nil, ErrSuppressed
	}

	var rec types.Record
	for _, f := range e.Schema {
		cells, err := FieldCells(doc, f)
		if err != nil {
			return nil, err
		}
		rec = append(rec, cells...)
	}

	rec = append(rec, saleSummary(doc)...)
	rec = append(rec, valuationSummary(doc, assessHistoryID)...)
	rec = append(rec, valuationSummary(doc, appraisalHistoryID)...)
	return append(rec, e.DataVersion, collectedOn.Format(CollectedOnLayout), strconv.Itoa(recordNum)), nil
}

// saleSummary returns the recent sale price and date, then the first older
// sale that carries new information: a non-zero price different from the
// recent one.
func saleSummary(doc *dom.Document) []string {
	out := make([]string, len(SaleColumns))
	if sel, ok := doc.FindByID(salePriceID); ok {
		out[0] = normalize.Value(dom.Text(sel))
	}
	if sel, ok := doc.FindByID(saleDateID); ok {
		out[1] = normalize.Value(dom.Text(sel))
	}

	rows, _ := doc.TableRows(salesTableID)
	for _, cells := range rows {
		if len(cells) < 2 {
			continue
		}
		price := normalize.Value(cells[1])
		if price == "0" || price == out[0] {
			continue
		}
		out[2] = price
		out[3] = normalize.Value(cells[len(cells)-1])
		break
	}
	return out
}

// valuationSummary returns improvements, land and total for the current
// and previous rows of a valuation history table. Missing rows leave their
// cells empty.
func valuationSummary(doc *dom.Document, tableID string) []string {
	out := make([]string, 6)
	rows, _ := doc.TableRows(tableID)
	for i := 0; i < 2 && i < len(rows); i++ {
		cells := rows[i]
		if len(cells) < 4 {
			continue
		}
		for j := 0; j < 3; j++ {
			out[i*3+j] = normalize.Value(cells[j+1])
		}
	}
	return out
}
