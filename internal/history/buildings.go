// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"fmt"
	"iter"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/normalize"
)

// maxBuildings caps the per-building id probe.
const maxBuildings = 99

// buildingPrefixes yields the index and id prefix of every building on the
// page, stopping at the first index whose year-built element is absent.
func buildingPrefixes(doc *dom.Document) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i := 1; i <= maxBuildings; i++ {
			prefix := fmt.Sprintf(buildingPrefix, i)
			if !doc.Has(prefix + yearBuiltSuffix) {
				return
			}
			if !yield(i, prefix) {
				return
			}
		}
	}
}

// buildings reads one row per building: the five summary values, the
// construction attributes and the gross/living area from the last sub-area
// row. Attributes and areas the page lacks become MISSING-<name> cells.
func buildings(doc *dom.Document) [][]string {
	var out [][]string
	for i, prefix := range buildingPrefixes(doc) {
		cells := []string{fmt.Sprintf("%02d", i)}
		for _, suffix := range []string{yearBuiltSuffix, livingAreaSuffix, rcnSuffix, pctGoodSuffix, rcnldSuffix} {
			cells = append(cells, scalar(doc, prefix+suffix))
		}

		attrs, _ := doc.FindByID(prefix + attributesSuffix)
		for _, name := range buildingAttributes {
			v, ok := dom.LabelValue(attrs, name)
			if !ok {
				cells = append(cells, "MISSING-"+name)
				continue
			}
			cells = append(cells, normalize.Value(v))
		}

		sub, _ := doc.FindByID(prefix + subAreaSuffix)
		if last := dom.LastRowCells(sub); len(last) == 4 {
			cells = append(cells, normalize.Value(last[2]), normalize.Value(last[3]))
		} else {
			cells = append(cells, "MISSING-Gross", "MISSING-Living")
		}
		out = append(out, cells)
	}
	return out
}

func scalar(doc *dom.Document, id string) string {
	sel, ok := doc.FindByID(id)
	if !ok {
		return ""
	}
	return normalize.Value(dom.Text(sel))
}
