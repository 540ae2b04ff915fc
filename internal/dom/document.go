// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dom is a read-only view over a parsed HTML page. It exposes the
// three lookups every extractor uses: by element id, by tag plus a
// structural filter, and the trimmed visible text of an element.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Document wraps one parsed page.
type Document struct {
	doc *goquery.Document
}

// Parse reads and parses an HTML page.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// ParseString parses an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Root returns the document selection.
func (d *Document) Root() *goquery.Selection {
	return d.doc.Selection
}

// FindByID returns the element with the given id. The boolean is false when
// no such element exists, which callers treat as data, not as an error.
func (d *Document) FindByID(id string) (*goquery.Selection, bool) {
	sel := d.doc.Find(`[id="` + id + `"]`).First()
	return sel, sel.Length() > 0
}

// Has reports whether an element with the given id exists.
func (d *Document) Has(id string) bool {
	_, ok := d.FindByID(id)
	return ok
}

// FindAllByTag returns the elements named tag that pass every filter, in
// document order.
func (d *Document) FindAllByTag(tag string, filters ...Filter) []*goquery.Selection {
	return FindAll(d.Root(), tag, filters...)
}

// Filter is a structural predicate on a single element.
type Filter func(*goquery.Selection) bool

// WithClass keeps elements whose class list contains class. The class is
// matched literally, so names such as "w-1/4" need no selector escaping.
func WithClass(class string) Filter {
	return func(s *goquery.Selection) bool {
		return s.HasClass(class)
	}
}

// ChildOf keeps elements whose parent is the single element in parent.
func ChildOf(parent *goquery.Selection) Filter {
	want := firstNode(parent)
	return func(s *goquery.Selection) bool {
		n := firstNode(s)
		return n != nil && want != nil && n.Parent == want
	}
}

// FindAll returns the descendants of scope named tag that pass every filter.
func FindAll(scope *goquery.Selection, tag string, filters ...Filter) []*goquery.Selection {
	var out []*goquery.Selection
	scope.Find(tag).Each(func(_ int, s *goquery.Selection) {
		for _, f := range filters {
			if !f(s) {
				return
			}
		}
		out = append(out, s)
	})
	return out
}

// Children returns the element children of sel in order. Text and comment
// nodes are skipped.
func Children(sel *goquery.Selection) []*goquery.Selection {
	var out []*goquery.Selection
	sel.Children().Each(func(_ int, s *goquery.Selection) {
		out = append(out, s)
	})
	return out
}

// Ancestor returns the n-th parent element of sel, or an empty selection.
func Ancestor(sel *goquery.Selection, n int) *goquery.Selection {
	for i := 0; i < n && sel.Length() > 0; i++ {
		sel = sel.Parent()
	}
	return sel
}

func firstNode(sel *goquery.Selection) *html.Node {
	if sel == nil || len(sel.Nodes) == 0 {
		return nil
	}
	return sel.Nodes[0]
}

// Text returns the visible text of sel with nested markup flattened and
// surrounding whitespace trimmed.
func Text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}

// TextWithBreaks flattens sel like Text but turns every <br> into a space
// and collapses whitespace runs, yielding a single line.
func TextWithBreaks(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		flatten(n, &b)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func flatten(n *html.Node, b *strings.Builder) {
	switch {
	case n.Type == html.TextNode:
		b.WriteString(n.Data)
		return
	case n.Type == html.ElementNode && n.Data == "br":
		b.WriteByte(' ')
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, b)
	}
}
