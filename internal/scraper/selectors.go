package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Every selector and text needle tied to the live federalreserve.gov markup
// lives in this file, so a site layout change breaks exactly here.
const (
	// projectionLinkNeedle and projectionLinkSuffix identify calendar links
	// that point at projection release pages, e.g.
	// /monetarypolicy/fomcprojtabl20240320.htm.
	projectionLinkNeedle = "fomcprojtabl"
	projectionLinkSuffix = ".htm"

	// headingSelector and headingNeedle locate the figure heading that
	// precedes the dot-plot table on a release page.
	headingSelector = "h4, h5"
	headingNeedle   = "assessments of appropriate monetary policy"

	// tableTag names the table element that follows the figure heading.
	// headerRowSelector and headerCellSelector walk its column headers,
	// bodyRowSelector and rowCellSelector its data rows. Row cells may be
	// th or td depending on the release year.
	tableTag           = "table"
	headerRowSelector  = "thead tr"
	headerCellSelector = "th"
	bodyRowSelector    = "tbody tr"
	rowCellSelector    = "th, td"
)

// isProjectionLink reports whether an anchor href points at a projection
// release page. PDF variants of the same release are skipped.
func isProjectionLink(href string) bool {
	return strings.Contains(href, projectionLinkNeedle) &&
		strings.Contains(href, projectionLinkSuffix)
}

// findProjectionHeading returns the figure heading that precedes the dot-plot
// table, or nil if the page has none.
func findProjectionHeading(doc *goquery.Document) *goquery.Selection {
	var heading *goquery.Selection
	doc.Find(headingSelector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(sel.Text()), headingNeedle) {
			heading = sel
			return false
		}
		return true
	})
	return heading
}
