package projection

import (
	"sort"
	"time"
)

// recentWindowMonths bounds FilterRecentMeetings to meetings within eleven
// months of the newest one, covering one year of projection releases.
const recentWindowMonths = 11

// Longify flattens parsed tables into long-form records, one per cell that
// was published with a participant count. Empty cells are dropped, explicit
// zero counts are kept. The result is sorted with SortLong.
func Longify(tables []*Table) []*Projection {
	recs := make([]*Projection, 0)
	for _, tbl := range tables {
		for _, row := range tbl.Rows {
			for _, year := range tbl.Years {
				count, ok := row.Counts[year]
				if !ok {
					continue
				}
				recs = append(recs, &Projection{
					MeetingDate:  tbl.MeetingDate,
					Year:         year,
					Midpoint:     row.Midpoint,
					Participants: count,
				})
			}
		}
	}
	SortLong(recs)
	return recs
}

// SortLong orders records by meeting date, then year key, then midpoint.
// String order on year keys places longer_run after the numeric years.
func SortLong(recs []*Projection) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		if !a.MeetingDate.Equal(b.MeetingDate) {
			return a.MeetingDate.Before(b.MeetingDate)
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Midpoint < b.Midpoint
	})
}

// Expand turns each record into one single-dot record per participant. A
// record counting three participants becomes three records, a zero count
// disappears.
func Expand(recs []*Projection) []*Projection {
	expanded := make([]*Projection, 0, len(recs))
	for _, rec := range recs {
		for i := 0; i < rec.Participants; i++ {
			expanded = append(expanded, &Projection{
				MeetingDate:  rec.MeetingDate,
				Year:         rec.Year,
				Midpoint:     rec.Midpoint,
				Participants: 1,
			})
		}
	}
	return expanded
}

// SortBeeswarm orders records for the dot-plot chart: dated years first with
// the newest meeting on top, then the longer-run column oldest meeting first.
func SortBeeswarm(recs []*Projection) {
	sort.SliceStable(recs, func(i, j int) bool {
		a, b := recs[i], recs[j]
		aLongRun := a.Year == YearLongerRun
		bLongRun := b.Year == YearLongerRun
		if aLongRun != bLongRun {
			return !aLongRun
		}
		if aLongRun {
			if !a.MeetingDate.Equal(b.MeetingDate) {
				return a.MeetingDate.Before(b.MeetingDate)
			}
			return a.Midpoint < b.Midpoint
		}
		if !a.MeetingDate.Equal(b.MeetingDate) {
			return a.MeetingDate.After(b.MeetingDate)
		}
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Midpoint < b.Midpoint
	})
}

// FilterRecentMeetings keeps records from meetings within eleven months of
// the newest meeting in the set.
func FilterRecentMeetings(recs []*Projection) []*Projection {
	if len(recs) == 0 {
		return recs
	}
	var newest time.Time
	for _, rec := range recs {
		if rec.MeetingDate.After(newest) {
			newest = rec.MeetingDate
		}
	}
	cutoff := newest.AddDate(0, -recentWindowMonths, 0)
	kept := make([]*Projection, 0, len(recs))
	for _, rec := range recs {
		if !rec.MeetingDate.Before(cutoff) {
			kept = append(kept, rec)
		}
	}
	return kept
}
