package report

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/pfrederiksen/fomc-dots/internal/projection"
)

var (
	decMeeting = time.Date(2023, 12, 13, 0, 0, 0, 0, time.UTC)
	marMeeting = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
)

func sampleRecords() []*projection.Projection {
	return []*projection.Projection{
		{MeetingDate: marMeeting, Year: "2025", Midpoint: 5.125, Participants: 5},
		{MeetingDate: marMeeting, Year: projection.YearLongerRun, Midpoint: 2.875, Participants: 4},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
		wantErr  bool
	}{
		{"csv", FormatCSV, false},
		{"CSV", FormatCSV, false},
		{"json", FormatJSON, false},
		{"Markdown", FormatMarkdown, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			format, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.input, err)
			}
			if format != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, format, tt.expected)
			}
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, Long(sampleRecords()), Format("yaml"))
	if err == nil {
		t.Fatal("Write() expected error for unknown format, got nil")
	}
	if buf.Len() != 0 {
		t.Error("Write() produced output despite unknown format")
	}
}

func TestLongDataset(t *testing.T) {
	ds := Long(sampleRecords())

	wantColumns := []string{"meeting_date", "year", "midpoint", "participants"}
	if !reflect.DeepEqual(ds.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", ds.Columns, wantColumns)
	}

	wantRows := [][]string{
		{"2024-03-20", "2025", "5.125", "5"},
		{"2024-03-20", "longer_run", "2.875", "4"},
	}
	if !reflect.DeepEqual(ds.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", ds.Rows, wantRows)
	}
}

func TestExpandedDataset(t *testing.T) {
	ds := Expanded(sampleRecords())

	wantColumns := []string{"meeting_date", "year", "midpoint"}
	if !reflect.DeepEqual(ds.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", ds.Columns, wantColumns)
	}
	if len(ds.Rows) != 2 {
		t.Fatalf("Expanded() produced %d rows, want 2", len(ds.Rows))
	}
	if len(ds.Rows[0]) != 3 {
		t.Errorf("Expanded() rows have %d cells, want 3", len(ds.Rows[0]))
	}
}

func TestBeeswarmDataset(t *testing.T) {
	ds := Beeswarm(sampleRecords())

	wantColumns := []string{"meeting_date", "midpoint", "year"}
	if !reflect.DeepEqual(ds.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", ds.Columns, wantColumns)
	}

	wantRows := [][]string{
		{"Mar 2024", "5.125", "2025"},
		{"Mar 2024", "2.875", "Longer run"},
	}
	if !reflect.DeepEqual(ds.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", ds.Rows, wantRows)
	}
}

func TestWideDataset(t *testing.T) {
	tables := []*projection.Table{
		{
			MeetingDate: decMeeting,
			Years:       []string{"2023", "2024", "longer_run"},
			Rows: []projection.Row{
				{Midpoint: 5.375, Counts: map[string]int{"2023": 19, "2024": 1}},
			},
		},
		{
			MeetingDate: marMeeting,
			Years:       []string{"2024", "longer_run"},
			Rows: []projection.Row{
				{Midpoint: 2.875, Counts: map[string]int{"longer_run": 4}},
			},
		},
	}

	ds := Wide(tables)

	// Year columns are the sorted union across releases
	wantColumns := []string{"date", "midpoint", "2023", "2024", "longer_run"}
	if !reflect.DeepEqual(ds.Columns, wantColumns) {
		t.Errorf("Columns = %v, want %v", ds.Columns, wantColumns)
	}

	wantRows := [][]string{
		{"2023-12-13", "5.375", "19", "1", ""},
		{"2024-03-20", "2.875", "", "", "4"},
	}
	if !reflect.DeepEqual(ds.Rows, wantRows) {
		t.Errorf("Rows = %v, want %v", ds.Rows, wantRows)
	}
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{5.125, "5.125"},
		{4.625, "4.625"},
		{2.875, "2.875"},
		{4, "4"},
		{0.125, "0.125"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatRate(tt.value); got != tt.expected {
				t.Errorf("formatRate(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	ds := Long(sampleRecords())

	var buf bytes.Buffer
	if err := Write(&buf, ds, FormatJSON); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	// Output should decode back to the identical dataset
	var decoded Dataset
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(&decoded, ds) {
		t.Errorf("decoded dataset = %+v, want %+v", decoded, ds)
	}

	if !strings.Contains(buf.String(), "\n  \"columns\"") {
		t.Error("JSON output should be indented")
	}
}

func TestWriteMarkdown(t *testing.T) {
	ds := Beeswarm(sampleRecords())

	var buf bytes.Buffer
	if err := Write(&buf, ds, FormatMarkdown); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	output := buf.String()

	requiredContent := []string{
		"meeting_date",
		"midpoint",
		"year",
		"Mar 2024",
		"5.125",
		"Longer run",
		"|",
	}
	for _, want := range requiredContent {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}
