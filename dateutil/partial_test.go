package dateutil

import (
	"testing"
	"time"
)

func TestLoadsDumps(t *testing.T) {
	testCases := []struct {
		in     string
		out    string
		failed bool
	}{
		{"2016", "2016", false},
		{"2016-05", "2016-05", false},
		{"2016-05-10", "2016-05-10", false},
		{" 2016-05-10 ", "2016-05-10", false},
		{"2016-5-1", "2016-05-01", false},
		{"", "", true},
		{"banana", "", true},
		{"0999", "", true},
		{"2016-13", "", true},
		{"2016-00-10", "", true},
	}
	for _, tc := range testCases {
		d, err := Loads(tc.in)
		if tc.failed {
			if err == nil {
				t.Errorf("Loads(%q): expected error, got %v", tc.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("Loads(%q): %v", tc.in, err)
			continue
		}
		if got := d.Dumps(); got != tc.out {
			t.Errorf("Loads(%q).Dumps() = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestParseFreeform(t *testing.T) {
	testCases := []struct {
		in  string
		out string
	}{
		{"June 1, 2016", "2016-06-01"},
		{"2016-05", "2016-05"},
		{"10 Mar 2017", "2017-03-10"},
	}
	for _, tc := range testCases {
		d, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got := d.Dumps(); got != tc.out {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestMin(t *testing.T) {
	dates := []PartialDate{
		{Year: 2016, Month: 5, Day: 10},
		{},
		{Year: 2016},
		{Year: 2015, Month: 12},
	}
	if got := Min(dates); got.Dumps() != "2015-12" {
		t.Errorf("Min = %q, want 2015-12", got.Dumps())
	}
	if got := Min(nil); !got.IsZero() {
		t.Errorf("Min(nil) = %v, want zero", got)
	}
}

func TestProvenanceDate(t *testing.T) {
	ts := time.Date(2017, 4, 3, 10, 26, 40, 0, time.UTC)
	if got := ProvenanceDate(ts, true); got != "2017-04-03" {
		t.Errorf("day granularity: got %q", got)
	}
	if got := ProvenanceDate(ts, false); got != "2017-04-03T10:26:40Z" {
		t.Errorf("datetime granularity: got %q", got)
	}
}
