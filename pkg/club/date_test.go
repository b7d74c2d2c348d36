package club_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClamped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from time.Time
		n    int
		want time.Time
	}{
		{"leap february", day(2024, time.January, 31), 1, day(2024, time.February, 29)},
		{"regular february", day(2023, time.January, 31), 1, day(2023, time.February, 28)},
		{"thirty day month", day(2024, time.March, 31), 1, day(2024, time.April, 30)},
		{"plain advance", day(2024, time.May, 15), 1, day(2024, time.June, 15)},
		{"year boundary", day(2024, time.December, 31), 1, day(2025, time.January, 31)},
		{"drops time of day", time.Date(2024, time.January, 10, 18, 30, 0, 0, time.UTC), 1, day(2024, time.February, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, club.AddMonthsClamped(tt.from, tt.n))
		})
	}
}

func TestParseDay(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"2024-03-05",
		"2024-03-05T00:00:00.000Z",
		"2024-03-05T17:45:00Z",
		"2024-03-05T10:00:00",
		"05.03.2024",
		" 2024-03-05 ",
	} {
		got, ok := club.ParseDay(in)
		require.True(t, ok, in)
		assert.Equal(t, day(2024, time.March, 5), got, in)
	}

	for _, in := range []string{"", "soon", "2024-13-40", "31/01/2024"} {
		_, ok := club.ParseDay(in)
		assert.False(t, ok, in)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, time.February, 29, 13, 4, 5, 6_000_000, time.FixedZone("MSK", 3*3600))
	assert.Equal(t, "2024-02-29", club.FormatDate(ts))
	assert.Equal(t, "2024-02-29T10:04:05.006Z", club.FormatISO(ts))
}

func TestISOWeekday(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1, club.ISOWeekday(day(2024, time.January, 1)))
	assert.Equal(t, 7, club.ISOWeekday(day(2024, time.January, 7)))
}
