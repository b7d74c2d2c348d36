package club

import (
	"strings"
	"time"
)

const (
	// DateLayout is the layout of due dates and start dates.
	DateLayout = "2006-01-02"
	// ISOLayout is the layout of payment timestamps and history anchors.
	ISOLayout = "2006-01-02T15:04:05.000Z07:00"
)

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	DateLayout,
	"02.01.2006",
}

// Day returns the UTC midnight of the calendar day t falls on in UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseTimestamp reads a stored date or timestamp. Values without a zone are
// treated as UTC. The second result is false for empty or malformed input.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseDay is ParseTimestamp normalized to UTC midnight.
func ParseDay(s string) (time.Time, bool) {
	t, ok := ParseTimestamp(s)
	if !ok {
		return time.Time{}, false
	}
	return Day(t), true
}

// FormatDate renders the day of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return Day(t).Format(DateLayout)
}

// FormatISO renders t in UTC with millisecond precision.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// AddDays moves the day of t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Day(t).AddDate(0, 0, n)
}

// AddMonthsClamped moves the day of t by n calendar months. When the target
// month is shorter, the result is clamped to its last day, so January 31 plus
// one month is the last day of February.
func AddMonthsClamped(t time.Time, n int) time.Time {
	d := Day(t)
	first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day()
	if day > last {
		day = last
	}
	return time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, time.UTC)
}

// ISOWeekday maps time.Weekday to 1 (Monday) .. 7 (Sunday).
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}
