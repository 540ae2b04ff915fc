// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DeedHeader is the column contract of the deeds stream.
var DeedHeader = []string{
	"ID", "Date&Time", "Date", "Time", "Type", "Don't_Keep", "Book&Page", "Book", "Page", "Pages",
	"Party1", "Party2", "Legal", "Notes", "Return to", "Consideration", "Assoc. Docs",
	"Transfer Tax", "CollectedOn",
}

// ZoneCount is the number of zones every transaction block must carry.
const ZoneCount = 4

// Identification is zone 1 of a transaction.
type Identification struct {
	ID       string
	DateTime string
	Date     string
	Time     string
	Type     string
	DontKeep string
	BookPage string
	Book     string
	Page     string
	Pages    string
}

// Cells returns the ten identification cells in header order.
func (z Identification) Cells() []string {
	return []string{z.ID, z.DateTime, z.Date, z.Time, z.Type, z.DontKeep, z.BookPage, z.Book, z.Page, z.Pages}
}

// Parties is zone 2 of a transaction.
type Parties struct {
	Party1 string
	Party2 string
}

// Supplemental is zone 4 of a transaction.
type Supplemental struct {
	Notes         string
	ReturnTo      string
	Consideration string
	AssocDocs     string
}

// Transaction is one recorded document decomposed into its four zones.
type Transaction struct {
	Identification Identification
	Parties        Parties
	Legal          string
	Supplemental   Supplemental
}

// Record renders the transaction as a DeedHeader row.
func (t Transaction) Record(collectedOn string) Record {
	r := Record(t.Identification.Cells())
	r = append(r, t.Parties.Party1, t.Parties.Party2, t.Legal)
	s := t.Supplemental
	r = append(r, s.Notes, s.ReturnTo, s.Consideration, s.AssocDocs)
	return append(r, "", collectedOn)
}
