// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parcel

import (
	"fmt"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/normalize"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// FieldCells resolves one field against doc and returns its primary cell
// followed by any split-out cells. An absent optional field yields empty
// cells; an absent required field returns ErrMissingField.
func FieldCells(doc *dom.Document, f types.FieldSpec) ([]string, error) {
	sel, ok := doc.FindByID(f.ID)
	if !ok {
		if f.Optional {
			return make([]string, len(f.Columns())), nil
		}
		return nil, fmt.Errorf("%w: %s (#%s)", ErrMissingField, f.Column, f.ID)
	}

	raw := dom.Text(sel)
	if f.LineBreaks {
		raw = dom.TextWithBreaks(sel)
	}
	value := normalize.Value(raw)

	cells := []string{value}
	switch f.Split {
	case types.SplitBookPage:
		book, page := normalize.BookPage(value)
		cells = append(cells, book, page)
	case types.SplitMBLU:
		cells = append(cells, normalize.MBLU(value)...)
	case types.SplitStreet:
		number, street := normalize.StreetAddress(value)
		cells = append(cells, number, street)
	}
	return cells, nil
}
