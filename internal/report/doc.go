// Package report renders projection data as CSV, JSON or Markdown.
//
// Output is built in two steps: a builder materializes a complete Dataset,
// a header plus pre-rendered cell text, and only then does Write emit bytes.
// A run that fails part way through therefore produces no output at all.
// Builders exist for each shape the CLI offers: long, expanded, beeswarm and
// wide. ReadLong reads long-shape CSV back into records, field for field.
package report
