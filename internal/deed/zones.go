// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package deed

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/internal/normalize"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// Markup the registry pages hang transactions on.
const (
	markerTag      = "button"
	markerClass    = "font-semibold"
	containerDepth = 3
	zoneClass      = "w-1/4"
)

// Placeholder fills cells the page leaves blank or never provides.
const Placeholder = "-"

// containers returns one element per transaction: the ancestor holding the
// transaction's zones, found from its title button.
func containers(doc *dom.Document) []*goquery.Selection {
	var out []*goquery.Selection
	for _, b := range doc.FindAllByTag(markerTag, dom.WithClass(markerClass)) {
		if c := dom.Ancestor(b, containerDepth); c.Length() > 0 {
			out = append(out, c)
		}
	}
	return out
}

// zones returns the container's direct zone children. Any count other than
// types.ZoneCount is ErrMalformedTransaction.
func zones(container *goquery.Selection) ([]*goquery.Selection, error) {
	z := dom.FindAll(container, "*", dom.WithClass(zoneClass), dom.ChildOf(container))
	if len(z) != types.ZoneCount {
		return nil, fmt.Errorf("%w: %d zones, want %d", ErrMalformedTransaction, len(z), types.ZoneCount)
	}
	return z, nil
}

// identification reads zone 1. Its second-to-last element holds the
// document id; the children of its last element are the tag nodes. The
// first tag is always the date and time. A "B:"/"P:" tag is the book and
// page, and the remaining tags fill Type, Don't_Keep and Pages in order,
// a blank tag still taking its column.
func identification(zone *goquery.Selection) (types.Identification, error) {
	kids := dom.Children(zone)
	if len(kids) < 2 {
		return types.Identification{}, fmt.Errorf("%w: identification zone has %d elements", ErrMalformedTransaction, len(kids))
	}
	id := types.Identification{
		ID:       orPlaceholder(dom.Text(kids[len(kids)-2])),
		DateTime: Placeholder, Date: Placeholder, Time: Placeholder,
		Type: Placeholder, DontKeep: Placeholder,
		BookPage: Placeholder, Book: Placeholder, Page: Placeholder,
		Pages: Placeholder,
	}

	tags := dom.Children(kids[len(kids)-1])
	if len(tags) == 0 {
		return id, nil
	}
	if t := dom.Text(tags[0]); t != "" {
		id.DateTime = t
		day, _, _ := strings.Cut(t, " ")
		if iso, ok := normalize.Date(day); ok {
			id.Date = iso
		}
	}

	plain := []*string{&id.Type, &id.DontKeep, &id.Pages}
	for _, tag := range tags[1:] {
		t := dom.Text(tag)
		if strings.Contains(t, "B:") || strings.Contains(t, "P:") {
			id.BookPage = t
			book, page := normalize.BookPageMarkers(t)
			id.Book, id.Page = orPlaceholder(book), orPlaceholder(page)
			continue
		}
		if len(plain) == 0 {
			continue
		}
		*plain[0] = orPlaceholder(t)
		plain = plain[1:]
	}
	return id, nil
}

// parties reads zone 2. "Party 1:" and "Party 2:" labels switch the active
// party; the names after them are comma-joined.
func parties(zone *goquery.Selection) types.Parties {
	var names [3]string
	active := 0
	for _, l := range dom.FindAll(zone, "label") {
		switch t := dom.Text(l); t {
		case "Party 1:":
			active = 1
		case "Party 2:":
			active = 2
		case "Parties":
		default:
			names[active] = commaJoin(names[active], t)
		}
	}
	return types.Parties{Party1: names[1], Party2: names[2]}
}

// Zone 4 slots. Text seen before any label lands in slotNone and is dropped.
const (
	slotNone = iota
	slotNotes
	slotReturnTo
	slotConsideration
	slotAssocDocs
	slotCount
)

var supplementalLabels = map[string]int{
	"Notes:":               slotNotes,
	"Return To:":           slotReturnTo,
	"Consideration:":       slotConsideration,
	"Associated Documents": slotAssocDocs,
}

// supplemental reads zone 4. Labels switch the active slot and other label
// text is added to it; Return To keeps only its first line, the name. Every
// link in the zone is an associated document.
func supplemental(zone *goquery.Selection) types.Supplemental {
	var slots [slotCount]string
	for i := range slots {
		slots[i] = Placeholder
	}
	add := func(slot int, text string) {
		if slots[slot] == Placeholder {
			slots[slot] = ""
		}
		if slot == slotReturnTo && slots[slot] != "" {
			return
		}
		slots[slot] = commaJoin(slots[slot], text)
	}

	active := slotNone
	for _, l := range dom.FindAll(zone, "label") {
		t := dom.Text(l)
		if s, ok := supplementalLabels[t]; ok {
			active = s
			continue
		}
		if t == "Additional" {
			continue
		}
		add(active, t)
	}
	for _, a := range dom.FindAll(zone, "a") {
		add(slotAssocDocs, dom.Text(a))
	}

	return types.Supplemental{
		Notes:         slots[slotNotes],
		ReturnTo:      slots[slotReturnTo],
		Consideration: slots[slotConsideration],
		AssocDocs:     slots[slotAssocDocs],
	}
}

func commaJoin(acc, v string) string {
	if acc == "" {
		return v
	}
	return acc + ", " + v
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
