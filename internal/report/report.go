package report

import (
	"fmt"
	"io"
	"strings"
)

// Format represents an output encoding
type Format string

const (
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be csv, json or markdown)", s)
	}
}

// Dataset is a fully materialized table: column names plus pre-rendered cell
// text, ready to be encoded in any format.
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Write renders the dataset to w in the requested format.
func Write(w io.Writer, ds *Dataset, format Format) error {
	switch format {
	case FormatCSV:
		return writeCSV(w, ds)
	case FormatJSON:
		return writeJSON(w, ds)
	case FormatMarkdown:
		return writeMarkdown(w, ds)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
