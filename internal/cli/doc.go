// Package cli implements the command-line interface for fomc-dots.
//
// The cli package provides the Cobra-based CLI that wires the scraper,
// projection and report packages into a single fetch, parse and emit run.
// Flags select the output shape (long, expanded, beeswarm or wide) and the
// encoding (CSV, JSON or Markdown). The dataset is written to stdout in one
// piece and all diagnostics go to stderr.
package cli
