// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parcel

// Element ids on the assessment site's parcel page.
const (
	pidID              = "MainContent_lblPid"
	ownerID            = "MainContent_lblGenOwner"
	coOwnerID          = "MainContent_lblCoOwner"
	ownerAddressID     = "MainContent_lblAddr1"
	locationID         = "MainContent_lblLocation"
	mbluID             = "MainContent_lblMblu"
	bookPageID         = "MainContent_lblBp"
	assessmentID       = "MainContent_lblGenAssessment"
	appraisalID        = "MainContent_lblGenAppraisal"
	acresID            = "MainContent_lblLndAcres"
	useCodeID          = "MainContent_lblUseCode"
	useDescriptionID   = "MainContent_lblUseCodeDescription"
	zoneID             = "MainContent_lblZone"
	neighborhoodID     = "MainContent_lblNbhd"
	buildingCountID    = "MainContent_lblBldCount"
	salePriceID        = "MainContent_lblPrice"
	saleDateID         = "MainContent_lblSaleDate"
	salesTableID       = "MainContent_grdSales"
	appraisalHistoryID = "MainContent_grdHistoryValuesAppr"
	assessHistoryID    = "MainContent_grdHistoryValuesAsmt"
)

// SuppressionMarker is the element whose absence means the site withheld
// the parcel's details.
const SuppressionMarker = ownerID
