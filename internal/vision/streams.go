// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package vision

import (
	"github.com/pdiddy/recordscrape/internal/history"
	"github.com/pdiddy/recordscrape/internal/parcel"
	"github.com/pdiddy/recordscrape/internal/tsv"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// Stream names; each becomes <name>_<timestamp>.tsv.
const (
	StreamMain       = "ScrapedData"
	StreamSuppressed = "Suppressed"
)

// HistoryStreams maps each history table to its stream.
var HistoryStreams = map[types.TableKind]string{
	types.KindOwners:        "OwnerHistory",
	types.KindAppraisals:    "ApprlHistory",
	types.KindAssessments:   "AssmtHistory",
	types.KindBuildings:     "Buildings",
	types.KindOutbuildings:  "Outbuildings",
	types.KindSpecialLand:   "SpecialLand",
	types.KindExtraFeatures: "ExtraFeatures",
}

// SuppressedHeader is the header of the suppressed-parcels stream.
var SuppressedHeader = []string{"PID", "Map", "Lot", "CollectedOn"}

// StreamSpecs declares every stream of a parcel run: the main records, one
// per history table, then the suppressed parcels.
func StreamSpecs(records *parcel.Extractor, hist *history.Extractor) []tsv.StreamSpec {
	specs := []tsv.StreamSpec{{Name: StreamMain, Header: records.Header()}}
	for _, kind := range types.TableKinds {
		specs = append(specs, tsv.StreamSpec{Name: HistoryStreams[kind], Header: hist.Header(kind)})
	}
	return append(specs, tsv.StreamSpec{Name: StreamSuppressed, Header: SuppressedHeader})
}
