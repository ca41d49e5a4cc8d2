package projection

import (
	"testing"
	"time"
)

func TestDisplayYear(t *testing.T) {
	tests := []struct {
		year     string
		expected string
	}{
		{"2024", "2024"},
		{"2025", "2025"},
		{YearLongerRun, "Longer run"},
	}

	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			if got := DisplayYear(tt.year); got != tt.expected {
				t.Errorf("DisplayYear(%q) = %q, want %q", tt.year, got, tt.expected)
			}
		})
	}
}

func TestDisplayDate(t *testing.T) {
	date := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	if got := DisplayDate(date); got != "Mar 2024" {
		t.Errorf("DisplayDate() = %q, want %q", got, "Mar 2024")
	}
}

func TestProjectionEqual(t *testing.T) {
	base := &Projection{
		MeetingDate:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Year:         "2025",
		Midpoint:     5.125,
		Participants: 5,
	}

	same := &Projection{
		MeetingDate:  time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		Year:         "2025",
		Midpoint:     5.125,
		Participants: 5,
	}
	if !base.Equal(same) {
		t.Error("identical records should be equal")
	}

	tests := []struct {
		name  string
		other *Projection
	}{
		{"different date", &Projection{MeetingDate: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), Year: "2025", Midpoint: 5.125, Participants: 5}},
		{"different year", &Projection{MeetingDate: base.MeetingDate, Year: "2026", Midpoint: 5.125, Participants: 5}},
		{"different midpoint", &Projection{MeetingDate: base.MeetingDate, Year: "2025", Midpoint: 4.875, Participants: 5}},
		{"different participants", &Projection{MeetingDate: base.MeetingDate, Year: "2025", Midpoint: 5.125, Participants: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if base.Equal(tt.other) {
				t.Error("records with differing fields should not be equal")
			}
		})
	}
}
