// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TableKind identifies a repeating table and the stream its rows go to.
type TableKind string

const (
	KindOwners        TableKind = "owners"
	KindAppraisals    TableKind = "appraisals"
	KindAssessments   TableKind = "assessments"
	KindBuildings     TableKind = "buildings"
	KindOutbuildings  TableKind = "outbuildings"
	KindSpecialLand   TableKind = "special_land"
	KindExtraFeatures TableKind = "extra_features"
)

// TableKinds lists every history kind in stream order.
var TableKinds = []TableKind{
	KindOwners, KindAppraisals, KindAssessments, KindBuildings,
	KindOutbuildings, KindSpecialLand, KindExtraFeatures,
}

// HistoryRow is one row of a repeating table tagged with its parcel and
// collection date.
type HistoryRow struct {
	Kind        TableKind
	PID         string
	CollectedOn string
	Cells       []string
}

// Record places PID and CollectedOn around the row cells.
func (h HistoryRow) Record(place IDPlacement) Record {
	out := make(Record, 0, len(h.Cells)+2)
	if place == PlaceLeading {
		out = append(out, h.PID, h.CollectedOn)
		return append(out, h.Cells...)
	}
	out = append(out, h.Cells...)
	return append(out, h.PID, h.CollectedOn)
}

// WithIDs wraps body column names with the PID/CollectedOn columns.
func WithIDs(body []string, place IDPlacement) []string {
	out := make([]string, 0, len(body)+2)
	if place == PlaceLeading {
		out = append(out, "PID", "CollectedOn")
		return append(out, body...)
	}
	out = append(out, body...)
	return append(out, "PID", "CollectedOn")
}
