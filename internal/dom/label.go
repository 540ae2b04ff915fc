// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dom

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
)

const (
	labelCellXPath = `.//td[normalize-space(.)=%s]/following-sibling::td[1]`
	lastRowXPath   = `(.//tr)[last()]`
)

// LabelValue finds, inside scope, the table cell whose text equals label
// (or label followed by a colon) and returns the trimmed text of the cell
// right after it. The boolean is false when neither spelling is present.
func LabelValue(scope *goquery.Selection, label string) (string, bool) {
	root := firstNode(scope)
	if root == nil {
		return "", false
	}
	for _, candidate := range []string{label, label + ":"} {
		node, err := htmlquery.Query(root, fmt.Sprintf(labelCellXPath, xpathLiteral(candidate)))
		if err != nil || node == nil {
			continue
		}
		return strings.TrimSpace(htmlquery.InnerText(node)), true
	}
	return "", false
}

// LastRowCells returns the trimmed cell texts of the last <tr> in scope.
func LastRowCells(scope *goquery.Selection) []string {
	root := firstNode(scope)
	if root == nil {
		return nil
	}
	row, err := htmlquery.Query(root, lastRowXPath)
	if err != nil || row == nil {
		return nil
	}
	var cells []string
	for _, td := range htmlquery.Find(row, "./td") {
		cells = append(cells, strings.TrimSpace(htmlquery.InnerText(td)))
	}
	return cells
}

// xpathLiteral quotes s for use inside an XPath expression.
func xpathLiteral(s string) string {
	if !strings.Contains(s, `'`) {
		return `'` + s + `'`
	}
	return `"` + s + `"`
}
