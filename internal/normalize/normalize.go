// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize repairs the formatting quirks of values scraped from
// assessment and registry pages: US dates, currency, unit suffixes and
// hand-typed fractions.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Placeholders are texts the sites show while a value is still loading.
// They pass through untouched.
var Placeholders = []string{"Loading...", "Please wait..."}

// unitSuffixes are stripped from counts such as "2 Stories". Longer
// spellings come first so "Bedrooms" never leaves a dangling "s".
var unitSuffixes = []string{
	" Bathrooms", " Bathroom", " Bedrooms", " Bedroom", " Baths", " Bath",
	" Stories", " Story", " Rooms", " Room",
}

// fractions rewrites the ad-hoc fractions typed into counts.
var fractions = strings.NewReplacer(" 1/2", ".5", " 3/4", ".75", " 1/4", ".25")

var usDate = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)

// Value normalizes one scraped value. The rules are tried in order and the
// first match wins: loading placeholder, MM/DD/YYYY date, leading currency
// symbol, then unit suffix and fraction cleanup.
func Value(s string) string {
	s = strings.TrimSpace(s)
	for _, p := range Placeholders {
		if s == p {
			return s
		}
	}
	if iso, ok := Date(s); ok {
		return iso
	}
	if strings.HasPrefix(s, "$") {
		return Currency(s)
	}
	for _, suffix := range unitSuffixes {
		if strings.HasSuffix(s, suffix) {
			s = strings.TrimSuffix(s, suffix)
			break
		}
	}
	return fractions.Replace(s)
}

// Date rewrites an MM/DD/YYYY date as YYYY-MM-DD. The boolean is false when
// s is not such a date.
func Date(s string) (string, bool) {
	m := usDate.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return s, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	return fmt.Sprintf("%s-%02d-%02d", m[3], month, day), true
}

// Currency drops the currency symbol and thousands separators. Values are
// whole dollars on these sites, so no cent handling is done.
func Currency(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	return strings.ReplaceAll(s, ",", "")
}

// Cells normalizes every value in place and returns the slice.
func Cells(cells []string) []string {
	for i, c := range cells {
		cells[i] = Value(c)
	}
	return cells
}
