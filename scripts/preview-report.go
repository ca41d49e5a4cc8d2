package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/fomc-dots/internal/projection"
	"github.com/pfrederiksen/fomc-dots/internal/report"
)

func main() {
	// Create a sample projection release
	tables := []*projection.Table{
		{
			MeetingDate: time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
			Years:       []string{"2024", "2025", "longer_run"},
			Rows: []projection.Row{
				{Midpoint: 4.625, Counts: map[string]int{"2024": 9, "2025": 2}},
				{Midpoint: 5.125, Counts: map[string]int{"2024": 1, "2025": 5, "longer_run": 1}},
			},
		},
	}

	recs := projection.Longify(tables)

	// Render the long shape in every format for eyeballing
	for _, format := range []report.Format{report.FormatCSV, report.FormatJSON, report.FormatMarkdown} {
		fmt.Printf("--- %s ---\n", format)
		if err := report.Write(os.Stdout, report.Long(recs), format); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}

	fmt.Println("--- wide ---")
	if err := report.Write(os.Stdout, report.Wide(tables), report.FormatCSV); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
