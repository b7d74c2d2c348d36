package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/schedule"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func kidsSlots() []club.ScheduleSlot {
	return []club.ScheduleSlot{
		{ID: "s1", Area: "Center", Group: "Kids", Weekday: 2, Time: "17:00"},
		{ID: "s2", Area: "Center", Group: "Kids", Weekday: 4, Time: "17:00"},
		{ID: "s3", Area: "Center", Group: "Индивидуальные", Weekday: 2, Time: "19:00"},
		{ID: "s4", Area: "North", Group: "Teens", Weekday: 1, Time: "18:00"},
	}
}

func TestEstimateGroupRemainingLessons(t *testing.T) {
	t.Parallel()

	slots := kidsSlots()

	tests := []struct {
		name    string
		area    string
		group   string
		payDate string
		today   time.Time
		want    int
		ok      bool
	}{
		{"two weeks", "Center", "Kids", "2024-01-15", day(2024, time.January, 1), 4, true},
		{"today counts, due day does not", "Center", "Kids", "2024-01-04", day(2024, time.January, 2), 1, true},
		{"time of day ignored", "Center", "Kids", "2024-01-04T00:00:00.000Z", time.Date(2024, time.January, 2, 22, 0, 0, 0, time.UTC), 1, true},
		{"lapsed", "Center", "Kids", "2023-12-20", day(2024, time.January, 1), 0, true},
		{"due today", "Center", "Kids", "2024-01-02", day(2024, time.January, 2), 0, true},
		{"long horizon", "Center", "Kids", "2024-03-01", day(2024, time.January, 1), 18, true},
		{"no schedule", "Center", "Adults", "2024-01-15", day(2024, time.January, 1), 0, false},
		{"invalid pay date", "Center", "Kids", "someday", day(2024, time.January, 1), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := schedule.EstimateGroupRemainingLessons(tt.area, tt.group, tt.payDate, slots, tt.today)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateManualPayDate(t *testing.T) {
	t.Parallel()

	slots := kidsSlots()

	t.Run("ninth tuesday after a monday", func(t *testing.T) {
		t.Parallel()
		got, ok := schedule.CalculateManualPayDate("Center", "Индивидуальные", 8, slots, day(2024, time.January, 1))
		require.True(t, ok)
		assert.Equal(t, day(2024, time.February, 27), got)
	})

	t.Run("reference day itself is not counted", func(t *testing.T) {
		t.Parallel()
		got, ok := schedule.CalculateManualPayDate("Center", "Индивидуальные", 0, slots, day(2024, time.January, 2))
		require.True(t, ok)
		assert.Equal(t, day(2024, time.January, 9), got)
	})

	t.Run("two sessions a week", func(t *testing.T) {
		t.Parallel()
		got, ok := schedule.CalculateManualPayDate("Center", "Kids", 3, slots, day(2024, time.January, 1))
		require.True(t, ok)
		assert.Equal(t, day(2024, time.January, 11), got)
	})

	t.Run("debt returns the reference day", func(t *testing.T) {
		t.Parallel()
		got, ok := schedule.CalculateManualPayDate("Center", "Kids", -3, slots, time.Date(2024, time.January, 5, 15, 0, 0, 0, time.UTC))
		require.True(t, ok)
		assert.Equal(t, day(2024, time.January, 5), got)
	})

	t.Run("no schedule", func(t *testing.T) {
		t.Parallel()
		_, ok := schedule.CalculateManualPayDate("Center", "Adults", 3, slots, day(2024, time.January, 1))
		assert.False(t, ok)
	})

	t.Run("lookahead exhausted", func(t *testing.T) {
		t.Parallel()
		_, ok := schedule.CalculateManualPayDate("North", "Teens", 200, slots, day(2024, time.January, 1))
		assert.False(t, ok)
	})
}

func TestEffectiveRemainingLessons(t *testing.T) {
	t.Parallel()

	slots := kidsSlots()

	t.Run("manual group keeps lesson debt", func(t *testing.T) {
		t.Parallel()
		c := club.Client{ID: "c1", Terms: club.Terms{
			Area: "Center", Group: "Индивидуальные", RemainingLessons: club.IntPtr(-2), PayDate: "2020-01-01",
		}}
		got, ok := schedule.EffectiveRemainingLessons(c, slots, day(2024, time.January, 1))
		require.True(t, ok)
		assert.Equal(t, -2, got)
	})

	t.Run("manual plan without counter", func(t *testing.T) {
		t.Parallel()
		c := club.Client{ID: "c1", Terms: club.Terms{Area: "Center", Group: "Kids", SubscriptionPlan: club.PlanIndividual}}
		_, ok := schedule.EffectiveRemainingLessons(c, slots, day(2024, time.January, 1))
		assert.False(t, ok)
	})

	t.Run("stored counter ignored for scheduled groups", func(t *testing.T) {
		t.Parallel()
		c := club.Client{ID: "c1", Terms: club.Terms{
			Area: "Center", Group: "Kids", SubscriptionPlan: club.PlanMonthly,
			RemainingLessons: club.IntPtr(99), PayDate: "2024-01-15",
		}}
		got, ok := schedule.EffectiveRemainingLessons(c, slots, day(2024, time.January, 1))
		require.True(t, ok)
		assert.Equal(t, 4, got)
	})

	t.Run("latest payment fact wins over pay date", func(t *testing.T) {
		t.Parallel()
		c := club.Client{
			ID: "c1",
			Terms: club.Terms{
				Area: "Center", Group: "Kids", SubscriptionPlan: club.PlanMonthly, PayDate: "2024-01-15",
			},
			PayHistory: []club.HistoryEntry{
				{Legacy: "2023-12-10"},
				{Record: &club.FactRecord{PaidAt: "2024-01-10T00:00:00.000Z", SubscriptionPlan: "monthly"}},
				{Record: &club.FactRecord{PaidAt: "2024-01-20T00:00:00.000Z", Area: "North", Group: "Teens"}},
			},
		}
		got, ok := schedule.EffectiveRemainingLessons(c, slots, day(2024, time.February, 1))
		require.True(t, ok)
		assert.Equal(t, 3, got)
	})

	t.Run("per placement", func(t *testing.T) {
		t.Parallel()
		c := club.Client{ID: "c1", Terms: club.Terms{Area: "Center", Group: "Kids"}}
		p := club.Placement{Terms: club.Terms{Area: "North", Group: "Teens", SubscriptionPlan: club.PlanMonthly, PayDate: "2024-01-29"}}
		got, ok := schedule.EffectiveRemainingLessonsFor(c, p, slots, day(2024, time.January, 1))
		require.True(t, ok)
		assert.Equal(t, 4, got)
	})
}

func TestBuildGroupsByArea(t *testing.T) {
	t.Parallel()

	slots := []club.ScheduleSlot{
		{Area: "North", Group: "Teens", Weekday: 3, Time: "18:00"},
		{Area: "North", Group: "Kids", Weekday: 5, Time: "16:00"},
		{Area: "North", Group: "Teens", Weekday: 1, Time: "19:00"},
		{Area: "Center", Group: "Adults", Weekday: 1, Time: "16:00"},
		{Area: "Center", Group: "Beginners", Weekday: 1, Time: "16:00"},
		{Area: "Center", Group: "Pro", Weekday: 2, Time: "bad"},
		{Area: "East", Group: "Kids", Weekday: 2, Time: "16:00"},
		{Area: "", Group: "Ghost", Weekday: 1, Time: "08:00"},
	}

	got := schedule.BuildGroupsByArea(slots)
	assert.Equal(t, []schedule.AreaGroups{
		{Area: "Center", Groups: []string{"Adults", "Beginners", "Pro"}},
		{Area: "East", Groups: []string{"Kids"}},
		{Area: "North", Groups: []string{"Kids", "Teens"}},
	}, got)

	assert.Empty(t, schedule.BuildGroupsByArea(nil))
}
