package analytics

import (
	"time"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

// Period is the half-open UTC interval [Start, End).
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Month returns the calendar month of the given year.
func Month(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: start.AddDate(0, 1, 0)}
}

// MonthOf returns the calendar month containing t.
func MonthOf(t time.Time) Period {
	t = t.UTC()
	return Month(t.Year(), t.Month())
}

// Range returns the period covering the days from through to, both included.
func Range(from, to time.Time) (Period, error) {
	start, end := club.Day(from), club.AddDays(club.Day(to), 1)
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// ContainsValue parses a stored date or timestamp and reports whether it
// falls inside the period. Unparseable values are outside.
func (p Period) ContainsValue(s string) bool {
	t, ok := club.ParseTimestamp(s)
	return ok && p.Contains(t)
}

// String formats the period as "start..end" with the end excluded.
func (p Period) String() string {
	return club.FormatDate(p.Start) + ".." + club.FormatDate(p.End)
}

// within reports whether s falls inside p. A nil period contains everything,
// including empty values.
func within(p *Period, s string) bool {
	return p == nil || p.ContainsValue(s)
}
