// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dom

import (
	"github.com/PuerkitoBio/goquery"
)

// Rows returns the trimmed <td> texts of every row in table. Rows made only
// of <th> cells (the header) carry no <td> and are left out.
func Rows(table *goquery.Selection) [][]string {
	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.ChildrenFiltered("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, Text(td))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})
	return rows
}

// TableRows looks up a table by id and returns its data rows. The boolean
// is false when the table is absent.
func (d *Document) TableRows(id string) ([][]string, bool) {
	table, ok := d.FindByID(id)
	if !ok {
		return nil, false
	}
	return Rows(table), true
}

// NonEmpty counts the cells that hold text.
func NonEmpty(cells []string) int {
	n := 0
	for _, c := range cells {
		if c != "" {
			n++
		}
	}
	return n
}
