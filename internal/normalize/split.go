// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"regexp"
	"strings"
)

const (
	mbluParts = 4
	bookPage  = 2
)

var streetNumber = regexp.MustCompile(`^\s*([0-9.+\-]*)\s*(.*)$`)

// BookPage splits "BBBB/PPPP" into book and page. A value without a slash
// yields the whole text as the book and an empty page.
func BookPage(s string) (book, page string) {
	parts := splitPadded(s, bookPage)
	return parts[0], parts[1]
}

// MBLU splits a "Map/Block/Lot/Unit" locator into exactly four trimmed parts.
func MBLU(s string) []string {
	return splitPadded(s, mbluParts)
}

// StreetAddress separates a leading house number from the street name.
// "123 Main Street" yields ("123", "Main Street"); an address with no
// leading digits, such as "Flowage Rights", yields ("", "Flowage Rights").
func StreetAddress(s string) (number, street string) {
	m := streetNumber.FindStringSubmatch(s)
	if m == nil {
		return "", strings.TrimSpace(s)
	}
	return m[1], strings.TrimSpace(m[2])
}

// SizeUnit splits "<number> <unit>" (e.g. "240.00 S.F.") into its parts.
// A size without a unit yields an empty unit.
func SizeUnit(s string) (size, unit string) {
	s = strings.TrimSpace(s)
	size, unit, _ = strings.Cut(s, " ")
	return size, strings.TrimSpace(unit)
}

// BookPageMarkers splits registry text of the form "B:100 P:200" into book
// and page. Missing markers yield empty parts.
func BookPageMarkers(s string) (book, page string) {
	if i := strings.Index(s, "B:"); i >= 0 {
		book = s[i+2:]
		if j := strings.Index(book, "P:"); j >= 0 {
			book = book[:j]
		}
	}
	if i := strings.Index(s, "P:"); i >= 0 {
		page = s[i+2:]
	}
	return strings.TrimSpace(book), strings.TrimSpace(page)
}

// splitPadded splits s on "/" into exactly n trimmed parts. Extra parts are
// dropped and missing ones are empty.
func splitPadded(s string, n int) []string {
	out := make([]string, n)
	for i, p := range strings.SplitN(s, "/", n+1) {
		if i == n {
			break
		}
		out[i] = strings.TrimSpace(p)
	}
	return out
}
