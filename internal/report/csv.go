package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pfrederiksen/fomc-dots/internal/projection"
)

// writeCSV emits the dataset as comma-separated text with a header row.
// Fields containing delimiters or quotes are quoted, embedded quotes doubled.
func writeCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range ds.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadLong parses long-shape CSV, as produced by Write with a Long dataset,
// back into records.
func ReadLong(r io.Reader) ([]*projection.Projection, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !equalColumns(header, longColumns) {
		return nil, fmt.Errorf("unexpected header %v", header)
	}

	recs := make([]*projection.Projection, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		date, err := time.Parse(dateLayout, row[0])
		if err != nil {
			return nil, fmt.Errorf("bad meeting_date %q: %w", row[0], err)
		}
		midpoint, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad midpoint %q: %w", row[2], err)
		}
		participants, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("bad participants %q: %w", row[3], err)
		}

		recs = append(recs, &projection.Projection{
			MeetingDate:  date,
			Year:         row[1],
			Midpoint:     midpoint,
			Participants: participants,
		})
	}
	return recs, nil
}

func equalColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
