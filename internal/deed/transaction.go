// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package deed decomposes registry-of-deeds search result pages into one
// row per recorded transaction. Each transaction is a block of four zones:
// identification, parties, legal description and supplemental data.
package deed

import (
	"errors"
	"log/slog"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/recordscrape/internal/dom"
	"github.com/pdiddy/recordscrape/pkg/types"
)

// CollectedOnLayout formats the CollectedOn column of deed rows.
const CollectedOnLayout = "2006-01-02"

// DefaultJurisdiction is written to the Legal column when none is set.
const DefaultJurisdiction = "Lyme"

// ErrMalformedTransaction reports a transaction block whose zone layout
// cannot be read. Only that transaction is skipped.
var ErrMalformedTransaction = errors.New("malformed transaction")

// Extractor reads transactions from deed pages.
type Extractor struct {
	// Jurisdiction fills the Legal column.
	Jurisdiction string
	Log          *slog.Logger
	// Now stamps CollectedOn; nil means time.Now.
	Now func() time.Time
}

func (e *Extractor) log() *slog.Logger {
	if e.Log == nil {
		return slog.Default()
	}
	return e.Log
}

func (e *Extractor) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e *Extractor) jurisdiction() string {
	if e.Jurisdiction == "" {
		return DefaultJurisdiction
	}
	return e.Jurisdiction
}

// Header returns the deeds stream header.
func (e *Extractor) Header() []string {
	return types.DeedHeader
}

// Transaction decomposes one transaction container.
func (e *Extractor) Transaction(container *goquery.Selection) (types.Transaction, error) {
	z, err := zones(container)
	if err != nil {
		return types.Transaction{}, err
	}
	id, err := identification(z[0])
	if err != nil {
		return types.Transaction{}, err
	}
	return types.Transaction{
		Identification: id,
		Parties:        parties(z[1]),
		Legal:          e.jurisdiction(),
		Supplemental:   supplemental(z[3]),
	}, nil
}

// Transactions returns every readable transaction on the page in document
// order and the number of malformed ones skipped.
func (e *Extractor) Transactions(doc *dom.Document) ([]types.Transaction, int) {
	var (
		out     []types.Transaction
		skipped int
	)
	for i, c := range containers(doc) {
		t, err := e.Transaction(c)
		if err != nil {
			e.log().Warn("skipping transaction", "index", i, "error", err)
			skipped++
			continue
		}
		out = append(out, t)
	}
	return out, skipped
}

// Records renders every readable transaction as a deeds row.
func (e *Extractor) Records(doc *dom.Document, collectedOn string) ([]types.Record, int) {
	txns, skipped := e.Transactions(doc)
	out := make([]types.Record, len(txns))
	for i, t := range txns {
		out[i] = t.Record(collectedOn)
	}
	return out, skipped
}
