package report

import (
	"sort"
	"strconv"

	"github.com/pfrederiksen/fomc-dots/internal/projection"
)

// dateLayout is the calendar-date form used by the long, expanded and wide
// shapes. The beeswarm shape uses the chart labels from projection instead.
const dateLayout = "2006-01-02"

// Column layouts for the record shapes.
var (
	longColumns     = []string{"meeting_date", "year", "midpoint", "participants"}
	expandedColumns = []string{"meeting_date", "year", "midpoint"}
	beeswarmColumns = []string{"meeting_date", "midpoint", "year"}
)

// Long builds the default shape: one row per (meeting, year, midpoint) with
// its participant count.
func Long(recs []*projection.Projection) *Dataset {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.MeetingDate.Format(dateLayout),
			rec.Year,
			formatRate(rec.Midpoint),
			strconv.Itoa(rec.Participants),
		})
	}
	return &Dataset{Columns: longColumns, Rows: rows}
}

// Expanded builds the per-dot shape: one row per participant projection, with
// the count column dropped.
func Expanded(recs []*projection.Projection) *Dataset {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			rec.MeetingDate.Format(dateLayout),
			rec.Year,
			formatRate(rec.Midpoint),
		})
	}
	return &Dataset{Columns: expandedColumns, Rows: rows}
}

// Beeswarm builds the per-dot shape in the column order and display labels
// the dot-plot chart consumes, e.g. "Mar 2024" and "Longer run".
func Beeswarm(recs []*projection.Projection) *Dataset {
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			projection.DisplayDate(rec.MeetingDate),
			formatRate(rec.Midpoint),
			projection.DisplayYear(rec.Year),
		})
	}
	return &Dataset{Columns: beeswarmColumns, Rows: rows}
}

// Wide builds the published shape: one row per (meeting, midpoint) with one
// column per year. Year columns are the sorted union across all tables, so
// releases with different projection horizons line up, with empty cells
// where a release did not cover a year.
func Wide(tables []*projection.Table) *Dataset {
	yearSet := make(map[string]bool)
	for _, tbl := range tables {
		for _, year := range tbl.Years {
			yearSet[year] = true
		}
	}
	years := make([]string, 0, len(yearSet))
	for year := range yearSet {
		years = append(years, year)
	}
	sort.Strings(years)

	columns := append([]string{"date", "midpoint"}, years...)
	rows := make([][]string, 0)
	for _, tbl := range tables {
		for _, row := range tbl.Rows {
			cells := make([]string, 0, len(columns))
			cells = append(cells, tbl.MeetingDate.Format(dateLayout), formatRate(row.Midpoint))
			for _, year := range years {
				if count, ok := row.Counts[year]; ok {
					cells = append(cells, strconv.Itoa(count))
				} else {
					cells = append(cells, "")
				}
			}
			rows = append(rows, cells)
		}
	}
	return &Dataset{Columns: columns, Rows: rows}
}

// formatRate renders a rate midpoint with no exponent notation and no
// trailing zeros, so 5.125 stays 5.125 and 4 stays 4.
func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
