// Package dateutil provides partial date handling. Publication dates in
// harvested metadata are often incomplete (year only, or year and month), and
// the HEP schema keeps them that way instead of padding to a full date.
package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/jinzhu/now"
)

// PartialDate is a date where month and day may be unknown. The zero value
// means "no date".
type PartialDate struct {
	Year  int
	Month int
	Day   int
}

// FromInts builds a partial date from numeric parts. Zero month and day mean
// unknown; a day without a month is invalid.
func FromInts(year, month, day int) (PartialDate, error) {
	if year < 1000 || year > 2100 {
		return PartialDate{}, fmt.Errorf("dateutil: year out of range: %d", year)
	}
	if month < 0 || month > 12 {
		return PartialDate{}, fmt.Errorf("dateutil: month out of range: %d", month)
	}
	if day < 0 || day > 31 {
		return PartialDate{}, fmt.Errorf("dateutil: day out of range: %d", day)
	}
	if day != 0 && month == 0 {
		return PartialDate{}, fmt.Errorf("dateutil: day %d given without month", day)
	}
	return PartialDate{Year: year, Month: month, Day: day}, nil
}

// FromParts builds a partial date from string parts, as found in split-up
// date nodes. Empty parts mean unknown.
func FromParts(year, month, day string) (PartialDate, error) {
	atoi := func(s string) (int, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return 0, nil
		}
		return strconv.Atoi(s)
	}
	y, err := atoi(year)
	if err != nil {
		return PartialDate{}, fmt.Errorf("dateutil: bad year %q", year)
	}
	m, err := atoi(month)
	if err != nil {
		return PartialDate{}, fmt.Errorf("dateutil: bad month %q", month)
	}
	d, err := atoi(day)
	if err != nil {
		return PartialDate{}, fmt.Errorf("dateutil: bad day %q", day)
	}
	return FromInts(y, m, d)
}

// Loads parses an ISO-8601 date prefix: "2006", "2006-01" or "2006-01-02".
func Loads(s string) (PartialDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PartialDate{}, fmt.Errorf("dateutil: empty date")
	}
	parts := strings.SplitN(s, "-", 3)
	var buf [3]string
	copy(buf[:], parts)
	return FromParts(buf[0], buf[1], buf[2])
}

// Parse accepts an ISO-8601 prefix or a freeform date string like
// "June 1, 2016". Freeform dates always come back with full precision.
func Parse(s string) (PartialDate, error) {
	if d, err := Loads(s); err == nil {
		return d, nil
	}
	t, err := dateparse.ParseAny(strings.TrimSpace(s))
	if err != nil {
		return PartialDate{}, fmt.Errorf("dateutil: unparseable date %q", s)
	}
	return FromInts(t.Year(), int(t.Month()), t.Day())
}

// IsZero reports whether no date is set.
func (d PartialDate) IsZero() bool {
	return d.Year == 0
}

// Dumps renders the date with exactly the known precision.
func (d PartialDate) Dumps() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// Before orders partial dates; unknown parts sort first, so "2016" comes
// before "2016-05".
func (d PartialDate) Before(other PartialDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Min returns the earliest of the given dates, ignoring zero values. Returns
// the zero value if nothing remains.
func Min(dates []PartialDate) PartialDate {
	var min PartialDate
	for _, d := range dates {
		if d.IsZero() {
			continue
		}
		if min.IsZero() || d.Before(min) {
			min = d
		}
	}
	return min
}

// ProvenanceDate formats an acquisition timestamp. The granularity must match
// whatever the orchestration layer uses for its resumption bookkeeping: with
// dayOnly the time is truncated to the beginning of the day and rendered as a
// date, otherwise as full RFC 3339.
func ProvenanceDate(t time.Time, dayOnly bool) string {
	if dayOnly {
		return now.With(t).BeginningOfDay().Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
