// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records, schemas and configuration shared by the
// extraction stages.
package types

// SplitKind selects how a composite field is split into extra cells.
type SplitKind int

const (
	SplitNone SplitKind = iota
	// SplitBookPage splits "BBBB/PPPP" into Book and Page.
	SplitBookPage
	// SplitMBLU splits "M/B/L/U" into Map, Lot, Unit and Sub.
	SplitMBLU
	// SplitStreet splits a street address into number and street name.
	SplitStreet
)

// FieldSpec locates one scalar value on a page and names the columns it
// produces.
type FieldSpec struct {
	// ID is the element identifier holding the value.
	ID string

	// Column is the header name of the primary cell.
	Column string

	// Split adds the cells named by SplitColumns after the primary cell.
	Split SplitKind

	// Optional fields emit empty cells when their element is absent.
	// A missing required field aborts the page record.
	Optional bool

	// LineBreaks marks label-address fields whose <br> elements are folded
	// into single spaces.
	LineBreaks bool
}

// SplitColumns returns the header names of the cells appended after the
// primary cell.
func (f FieldSpec) SplitColumns() []string {
	switch f.Split {
	case SplitBookPage:
		return []string{"Book", "Page"}
	case SplitMBLU:
		return []string{"Map", "Lot", "Unit", "Sub"}
	case SplitStreet:
		return []string{"StreetNum", "StreetName"}
	}
	return nil
}

// Columns returns every header name the field contributes, primary first.
func (f FieldSpec) Columns() []string {
	return append([]string{f.Column}, f.SplitColumns()...)
}

// Schema is an ordered list of FieldSpecs.
type Schema []FieldSpec

// Header returns the column names produced by the schema, in order.
func (s Schema) Header() []string {
	var cols []string
	for _, f := range s {
		cols = append(cols, f.Columns()...)
	}
	return cols
}

// Record is one output row. Its length always equals the length of the
// header it was built for.
type Record []string
