package payfact_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/payfact"
)

func mixedHistory() []club.HistoryEntry {
	return []club.HistoryEntry{
		{Legacy: "2023-11-05"},
		{Legacy: "not a date"},
		{Record: &club.FactRecord{
			PaidAt:           "2023-12-05T00:00:00.000Z",
			Amount:           "4 500,50",
			SubscriptionPlan: "monthly",
			RemainingLessons: "3.9",
			FrozenLessons:    "oops",
		}},
		{Record: &club.FactRecord{
			ID:               "f-jan",
			RecordedAt:       "2024-01-15T10:00:00.000Z",
			Amount:           5000.0,
			SubscriptionPlan: "half-month",
		}},
		{Record: &club.FactRecord{ID: "f-jan", PaidAt: "2024-01-20", SubscriptionPlan: "mystery"}},
		{Legacy: "2023-11-05"},
		{},
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	facts := payfact.Normalize(mixedHistory())
	require.Len(t, facts, 5)

	assert.Equal(t, "legacy-2023-11-05", facts[0].ID)
	assert.Equal(t, "2023-11-05T00:00:00.000Z", facts[0].PaidAt)
	assert.Nil(t, facts[0].Amount)
	assert.Empty(t, facts[0].PeriodLabel)

	assert.Equal(t, "fact-3", facts[1].ID)
	require.NotNil(t, facts[1].Amount)
	assert.InDelta(t, 4500.5, *facts[1].Amount, 1e-9)
	require.NotNil(t, facts[1].RemainingLessons)
	assert.Equal(t, 3, *facts[1].RemainingLessons)
	assert.Nil(t, facts[1].FrozenLessons, "unparsable counter is omitted, not zeroed")
	assert.Equal(t, "Декабрь 2023", facts[1].PeriodLabel)

	assert.Equal(t, "f-jan", facts[2].ID)
	assert.Equal(t, "14 дней", facts[2].PeriodLabel)

	assert.Equal(t, "f-jan-2", facts[3].ID, "ids stay unique per client")
	assert.Empty(t, facts[3].PeriodLabel, "unknown plan has no label")

	assert.Equal(t, "legacy-2023-11-05-2", facts[4].ID)
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	once := payfact.Normalize(mixedHistory())
	twice := payfact.Normalize(payfact.Entries(once))
	assert.Equal(t, once, twice)
}

func TestNormalize_KeepsExplicitLabel(t *testing.T) {
	t.Parallel()

	facts := payfact.Normalize([]club.HistoryEntry{{Record: &club.FactRecord{
		PaidAt:           "2024-03-01",
		SubscriptionPlan: "monthly",
		PeriodLabel:      "Весна 2024",
	}}})
	require.Len(t, facts, 1)
	assert.Equal(t, "Весна 2024", facts[0].PeriodLabel)
}

func TestPeriodLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1 день", payfact.PeriodLabel(club.PlanSingle, ""))
	assert.Equal(t, "14 дней", payfact.PeriodLabel(club.PlanHalfMonth, "garbage"))
	assert.Equal(t, "Февраль 2024", payfact.PeriodLabel(club.PlanMonthly, "2024-02-29T23:00:00Z"))
	assert.Equal(t, "Май 2025", payfact.PeriodLabel(club.PlanDiscount, "2025-05-01"))
	assert.Empty(t, payfact.PeriodLabel(club.PlanMonthly, ""))
	assert.Empty(t, payfact.PeriodLabel("", "2024-02-01"))
}

func TestLatest(t *testing.T) {
	t.Parallel()

	facts := []club.PaymentFact{
		{ID: "a", PaidAt: "2024-01-10", Area: "Center", Group: "Kids"},
		{ID: "b", PaidAt: "2024-03-10", Area: "North", Group: "Teens"},
		{ID: "c", RecordedAt: "2024-02-10T12:00:00Z"},
		{ID: "d", PaidAt: "garbage"},
	}

	got, ok := payfact.Latest(facts, nil)
	require.True(t, ok)
	assert.Equal(t, "b", got.ID)

	got, ok = payfact.Latest(facts, &payfact.Filter{Area: "Center", Group: "Kids"})
	require.True(t, ok)
	assert.Equal(t, "c", got.ID, "facts without area match any placement")

	got, ok = payfact.Latest(facts, &payfact.Filter{Area: "Center"})
	require.True(t, ok)
	assert.Equal(t, "c", got.ID)

	_, ok = payfact.Latest(facts[3:], nil)
	assert.False(t, ok)

	tie := []club.PaymentFact{{ID: "x", PaidAt: "2024-01-10"}, {ID: "y", PaidAt: "2024-01-10"}}
	got, _ = payfact.Latest(tie, nil)
	assert.Equal(t, "y", got.ID)
}

func TestDueDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fact club.PaymentFact
		plan club.Plan
		want time.Time
	}{
		{"monthly clamps", club.PaymentFact{PaidAt: "2024-01-31", SubscriptionPlan: club.PlanMonthly}, "", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"weekly uses month", club.PaymentFact{PaidAt: "2024-03-15", SubscriptionPlan: club.PlanWeekly}, "", time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"half month", club.PaymentFact{PaidAt: "2024-03-25T09:00:00Z", SubscriptionPlan: club.PlanHalfMonth}, "", time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC)},
		{"single unchanged", club.PaymentFact{PaidAt: "2024-03-25", SubscriptionPlan: club.PlanSingle}, "", time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC)},
		{"override plan", club.PaymentFact{RecordedAt: "2024-03-01", SubscriptionPlan: club.PlanSingle}, club.PlanDiscount, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := payfact.DueDate(tt.fact, tt.plan)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := payfact.DueDate(club.PaymentFact{SubscriptionPlan: club.PlanMonthly}, "")
	assert.False(t, ok)
}

func TestAppend(t *testing.T) {
	t.Parallel()

	entries := []club.HistoryEntry{{Legacy: "2024-01-10T00:00:00.000Z"}}

	out, added := payfact.Append(entries, club.PaymentFact{ID: "n1", PaidAt: "2024-01-10T00:00:00.000Z"})
	assert.False(t, added)
	assert.Len(t, out, 1)

	out, added = payfact.Append(entries, club.PaymentFact{ID: "n2", PaidAt: "2024-02-10T00:00:00.000Z"})
	assert.True(t, added)
	require.Len(t, out, 2)
	assert.Equal(t, "n2", out[1].Record.ID)
}
