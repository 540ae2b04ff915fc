// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import "github.com/pdiddy/recordscrape/pkg/types"

// Table ids on the parcel page.
const (
	ownersTableID        = "MainContent_grdSales"
	appraisalTableID     = "MainContent_grdHistoryValuesAppr"
	assessmentTableID    = "MainContent_grdHistoryValuesAsmt"
	outbuildingsTableID  = "MainContent_grdOb"
	specialLandTableID   = "MainContent_grdSpecialLand"
	extraFeaturesTableID = "MainContent_grdXf"
)

// Per-building element suffixes; the prefix is MainContent_ctlNN_.
const (
	buildingPrefix   = "MainContent_ctl%02d_"
	yearBuiltSuffix  = "lblYearBuilt"
	livingAreaSuffix = "lblBldArea"
	rcnSuffix        = "lblRcn"
	pctGoodSuffix    = "lblPctGood"
	rcnldSuffix      = "lblRcnld"
	attributesSuffix = "grdCns"
	subAreaSuffix    = "grdSub"
)

// buildingAttributes are read from the construction table by label.
var buildingAttributes = []string{
	"Style", "Model", "Grade", "Stories", "Occupancy",
	"Exterior Wall 1", "Roof Cover", "Total Bedrooms", "Total Bthrms",
}

// Column bodies, without the PID/CollectedOn pair.
var bodies = map[types.TableKind][]string{
	types.KindOwners: {
		"Owner", "Sale Price", "Certificate", "Book&Page", "Book", "Page", "Instrument", "Sale Date",
	},
	types.KindAppraisals:  {"App. Year", "Improvements", "Land", "Total"},
	types.KindAssessments: {"Ass. Year", "Improvements", "Land", "Total"},
	types.KindBuildings: append(append([]string{
		"Bldg#", "Year Built", "Living Area", "Replacement Cost", "Percent Good", "Less Depreciation",
	}, buildingAttributes...), "Gross Area", "Living Area (Sub)"),
	types.KindOutbuildings: {
		"Code", "Description", "Sub Code", "Sub Description", "Size", "Unit", "Value", "Bldg #",
	},
	types.KindSpecialLand:   {"Code", "Description", "Size", "Value"},
	types.KindExtraFeatures: {"Code", "Description", "Size", "Unit", "Value", "Bldg #"},
}

// Header returns the column names of a history stream.
func Header(kind types.TableKind, place types.IDPlacement) []string {
	return types.WithIDs(bodies[kind], place)
}
