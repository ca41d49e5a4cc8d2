// Package main provides the entry point for the fomc-dots CLI.
//
// fomc-dots scrapes the FOMC "dot plot" rate projections published on
// federalreserve.gov and writes them to stdout as CSV, JSON or Markdown.
//
// Usage:
//
//	fomc-dots > dots.csv
//	fomc-dots --expand --format json
//
// See --help for all available options.
package main

import "github.com/pfrederiksen/fomc-dots/internal/cli"

// main is the entry point for fomc-dots.
func main() {
	cli.Execute()
}
