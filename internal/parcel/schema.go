// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parcel

import "github.com/pdiddy/recordscrape/pkg/types"

// VisionSchema lists the scalar fields of a parcel page in output order.
var VisionSchema = types.Schema{
	{ID: pidID, Column: "PID"},
	{ID: ownerID, Column: "Owner"},
	{ID: coOwnerID, Column: "Co-Owner", Optional: true},
	{ID: ownerAddressID, Column: "Owner Address", Optional: true, LineBreaks: true},
	{ID: locationID, Column: "Street Address", Split: types.SplitStreet},
	{ID: mbluID, Column: "MBLU", Split: types.SplitMBLU},
	{ID: bookPageID, Column: "Book&Page", Split: types.SplitBookPage, Optional: true},
	{ID: assessmentID, Column: "Assessment"},
	{ID: appraisalID, Column: "Appraisal"},
	{ID: acresID, Column: "Lot Size (acres)", Optional: true},
	{ID: useCodeID, Column: "Land Use Code", Optional: true},
	{ID: useDescriptionID, Column: "Description", Optional: true},
	{ID: zoneID, Column: "Zoning District", Optional: true},
	{ID: neighborhoodID, Column: "Neighborhood", Optional: true},
	{ID: buildingCountID, Column: "# Buildings", Optional: true},
}

// SaleColumns follow the schema columns.
var SaleColumns = []string{
	"Recent Sale Price", "Recent Sale Date", "Prev Sale Price", "Prev Sale Date",
}

// ValuationColumns follow the sale columns.
var ValuationColumns = []string{
	"Curr. Ass. Imp", "Curr. Ass. Land", "Curr. Ass. Tot",
	"Prev. Ass. Imp", "Prev. Ass. Land", "Prev. Ass. Tot",
	"Curr. App. Imp", "Curr. App. Land", "Curr. App. Tot",
	"Prev. App. Imp", "Prev. App. Land", "Prev. App. Tot",
}

// TrailerColumns close every main record.
var TrailerColumns = []string{"Version", "CollectedOn", "Record#"}
