// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history walks the repeating tables of a parcel page (ownership,
// appraisal and assessment history, buildings, outbuildings, special land
// and extra features) and emits one row per data row, tagged with the
// parcel id and collection date.
package history

import (
	"log/slog"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/normalize"
	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// CollectedOnLayout formats the CollectedOn column of history rows.
const CollectedOnLayout = "2006-01-02"

// NoDataSentinel fills the first cell of a valuation row the site left empty.
const NoDataSentinel = "No Data for PID"

// Extractor walks history tables.
type Extractor struct {
	Placement types.IDPlacement
	Log       *slog.Logger
}

func (e *Extractor) log() *slog.Logger {
	if e.Log == nil {
		return slog.Default()
	}
	return e.Log
}

// Header returns the column names of kind's stream.
func (e *Extractor) Header(kind types.TableKind) []string {
	return Header(kind, e.Placement)
}

// Rows extracts every row of kind from doc. Missing tables and tables the
// site marks as empty yield no rows.
func (e *Extractor) Rows(doc *dom.Document, kind types.TableKind, pid, collectedOn string) []types.HistoryRow {
	var body [][]string
	switch kind {
	case types.KindOwners:
		body = e.owners(doc, pid)
	case types.KindAppraisals:
		body = e.valuations(doc, appraisalTableID, pid)
	case types.KindAssessments:
		body = e.valuations(doc, assessmentTableID, pid)
	case types.KindBuildings:
		body = buildings(doc)
	case types.KindOutbuildings:
		body = e.features(doc, outbuildingsTableID, 4, kind, pid)
	case types.KindSpecialLand:
		body = e.specialLand(doc, pid)
	case types.KindExtraFeatures:
		body = e.features(doc, extraFeaturesTableID, 2, kind, pid)
	}

	rows := make([]types.HistoryRow, 0, len(body))
	for _, cells := range body {
		rows = append(rows, types.HistoryRow{Kind: kind, PID: pid, CollectedOn: collectedOn, Cells: cells})
	}
	return rows
}

// Block returns kind's rows as newline-joined, tab-separated lines, or the
// empty string when there are none.
func (e *Extractor) Block(doc *dom.Document, kind types.TableKind, pid, collectedOn string) string {
	rows := e.Rows(doc, kind, pid, collectedOn)
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = r.Record(e.Placement)
	}
	return tsv.Block(cells)
}

// keep reports whether a row of kind has the width of its column body, and
// logs the rows it drops.
func (e *Extractor) keep(kind types.TableKind, pid string, cells []string) bool {
	if len(cells) == len(bodies[kind]) {
		return true
	}
	e.log().Warn("dropping malformed history row",
		"kind", kind, "pid", pid, "cells", len(cells), "want", len(bodies[kind]))
	return false
}

// owners reads the ownership history. Book&Page is followed by its split
// Book and Page cells, and a row missing its Instrument gets "-" there.
func (e *Extractor) owners(doc *dom.Document, pid string) [][]string {
	rows, _ := doc.TableRows(ownersTableID)
	var out [][]string
	for _, raw := range rows {
		if dom.NonEmpty(raw) <= 1 {
			continue
		}
		var cells []string
		for _, c := range normalize.Cells(raw) {
			cells = append(cells, c)
			if len(cells) == 4 {
				book, page := normalize.BookPage(c)
				cells = append(cells, book, page)
			}
		}
		if len(cells) == 7 {
			cells = insert(cells, 6, "-")
		}
		if e.keep(types.KindOwners, pid, cells) {
			out = append(out, cells)
		}
	}
	return out
}

// valuations reads an appraisal or assessment history. A row holding a
// single value is the site's "no data" notice and becomes a sentinel row
// of full width.
func (e *Extractor) valuations(doc *dom.Document, tableID, pid string) [][]string {
	kind := types.KindAppraisals
	if tableID == assessmentTableID {
		kind = types.KindAssessments
	}
	rows, _ := doc.TableRows(tableID)
	var out [][]string
	for _, raw := range rows {
		if dom.NonEmpty(raw) == 1 && len(raw) != len(bodies[kind]) {
			out = append(out, []string{NoDataSentinel, "", "", ""})
			continue
		}
		cells := normalize.Cells(raw)
		if e.keep(kind, pid, cells) {
			out = append(out, cells)
		}
	}
	return out
}

// specialLand reads the special land table. Parcels without one yield
// nothing.
func (e *Extractor) specialLand(doc *dom.Document, pid string) [][]string {
	rows, ok := doc.TableRows(specialLandTableID)
	if !ok {
		return nil
	}
	var out [][]string
	for _, raw := range rows {
		if dom.NonEmpty(raw) <= 1 {
			continue
		}
		cells := normalize.Cells(raw)
		if e.keep(types.KindSpecialLand, pid, cells) {
			out = append(out, cells)
		}
	}
	return out
}

// features reads outbuildings or extra features. The "<number> <unit>"
// cell at sizeIndex is split in two. A single-value row means the parcel
// has none, and the whole table yields nothing.
func (e *Extractor) features(doc *dom.Document, tableID string, sizeIndex int, kind types.TableKind, pid string) [][]string {
	rows, _ := doc.TableRows(tableID)
	var out [][]string
	for _, raw := range rows {
		if dom.NonEmpty(raw) <= 1 {
			return nil
		}
		cells := normalize.Cells(raw)
		if sizeIndex < len(cells) {
			size, unit := normalize.SizeUnit(cells[sizeIndex])
			cells[sizeIndex] = size
			cells = insert(cells, sizeIndex+1, unit)
		}
		if e.keep(kind, pid, cells) {
			out = append(out, cells)
		}
	}
	return out
}

func insert(cells []string, at int, v string) []string {
	cells = append(cells, "")
	copy(cells[at+1:], cells[at:])
	cells[at] = v
	return cells
}
