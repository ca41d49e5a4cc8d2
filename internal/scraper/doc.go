// Package scraper fetches FOMC pages from federalreserve.gov and parses the
// dot-plot projection tables embedded in their markup.
//
// Discovery starts at the public meeting calendar: every linked projection
// release page carries a YYYYMMDD meeting date in its URL. Each release page
// is then fetched and the table following the "assessments of appropriate
// monetary policy" figure heading is parsed into its published wide shape.
// Fetch failures wrap ErrFetch, structural surprises wrap ErrParse. All
// selectors tied to the live site markup are isolated in selectors.go.
package scraper
