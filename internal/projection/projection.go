package projection

import "time"

// YearLongerRun is the column key for the "Longer run" column of the
// published tables.
const YearLongerRun = "longer_run"

// displayDateLayout is the month-year form used by chart output.
const displayDateLayout = "Jan 2006"

// Source identifies one projection release page linked from the FOMC meeting
// calendar.
type Source struct {
	URL  string    `json:"url"`
	Date time.Time `json:"date"`
}

// Row is one line of a published table: a rate midpoint and the participant
// count per year column. Years missing from Counts had empty cells in the
// published table.
type Row struct {
	Midpoint float64        `json:"midpoint"`
	Counts   map[string]int `json:"counts"`
}

// Table is one parsed projection release in its published wide shape. Years
// holds the column keys in published order.
type Table struct {
	MeetingDate time.Time `json:"meeting_date"`
	Years       []string  `json:"years"`
	Rows        []Row     `json:"rows"`
}

// Projection is one long-form record: the number of participants who
// projected a given rate midpoint for a given year at a given meeting.
type Projection struct {
	MeetingDate  time.Time `json:"meeting_date"`
	Year         string    `json:"year"`
	Midpoint     float64   `json:"midpoint"`
	Participants int       `json:"participants"`
}

// Equal reports whether two records carry the same values.
func (p *Projection) Equal(other *Projection) bool {
	return p.MeetingDate.Equal(other.MeetingDate) &&
		p.Year == other.Year &&
		p.Midpoint == other.Midpoint &&
		p.Participants == other.Participants
}

// DisplayDate renders a meeting date the way chart output labels it.
func DisplayDate(t time.Time) string {
	return t.Format(displayDateLayout)
}

// DisplayYear renders a year key the way chart output labels it.
func DisplayYear(year string) string {
	if year == YearLongerRun {
		return "Longer run"
	}
	return year
}
