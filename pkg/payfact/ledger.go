package payfact

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

// Normalize converts stored history entries into canonical facts, preserving
// order. Legacy bare dates become synthetic facts; entries with neither a
// parsable legacy date nor a record are skipped. Fact ids are unique within
// the result, so Normalize(Entries(Normalize(x))) equals Normalize(x).
func Normalize(entries []club.HistoryEntry) []club.PaymentFact {
	facts := make([]club.PaymentFact, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for i, e := range entries {
		var f club.PaymentFact
		switch {
		case e.Record != nil:
			f = fromRecord(*e.Record)
			if f.ID == "" {
				f.ID = "fact-" + strconv.Itoa(i+1)
			}
		case e.Legacy != "":
			d, ok := club.ParseDay(e.Legacy)
			if !ok {
				continue
			}
			f = club.PaymentFact{
				ID:     "legacy-" + club.FormatDate(d),
				PaidAt: club.FormatISO(d),
			}
		default:
			continue
		}

		f.ID = uniqueID(f.ID, seen)
		seen[f.ID] = struct{}{}
		facts = append(facts, f)
	}
	return facts
}

// Entries converts canonical facts back into their structured storage form.
func Entries(facts []club.PaymentFact) []club.HistoryEntry {
	out := make([]club.HistoryEntry, len(facts))
	for i, f := range facts {
		out[i] = club.FactEntry(f)
	}
	return out
}

func fromRecord(r club.FactRecord) club.PaymentFact {
	f := club.PaymentFact{
		ID:               strings.TrimSpace(r.ID),
		PaidAt:           strings.TrimSpace(r.PaidAt),
		RecordedAt:       strings.TrimSpace(r.RecordedAt),
		SubscriptionPlan: club.Plan(strings.TrimSpace(r.SubscriptionPlan)),
		PeriodLabel:      strings.TrimSpace(r.PeriodLabel),
		Area:             r.Area,
		Group:            r.Group,
		PlacementID:      r.PlacementID,
	}
	if v, ok := ParseAmount(r.Amount); ok {
		f.Amount = club.FloatPtr(v)
	}
	if v, ok := ParseLessonCount(r.RemainingLessons); ok {
		f.RemainingLessons = club.IntPtr(v)
	}
	if v, ok := ParseLessonCount(r.FrozenLessons); ok {
		f.FrozenLessons = club.IntPtr(v)
	}
	if f.PeriodLabel == "" {
		f.PeriodLabel = PeriodLabel(f.SubscriptionPlan, f.Reference())
	}
	return f
}

func uniqueID(id string, seen map[string]struct{}) string {
	if _, dup := seen[id]; !dup {
		return id
	}
	for n := 2; ; n++ {
		candidate := id + "-" + strconv.Itoa(n)
		if _, dup := seen[candidate]; !dup {
			return candidate
		}
	}
}

// Filter restricts fact lookups to one placement. An empty field on either
// the filter or the fact matches anything.
type Filter struct {
	Area  string
	Group string
}

func (flt *Filter) matches(f club.PaymentFact) bool {
	if flt == nil {
		return true
	}
	if flt.Area != "" && f.Area != "" && flt.Area != f.Area {
		return false
	}
	if flt.Group != "" && f.Group != "" && flt.Group != f.Group {
		return false
	}
	return true
}

// Latest returns the matching fact with the greatest paidAt (or recordedAt).
// Facts without a readable timestamp are ignored. On equal timestamps the fact
// recorded later in the slice wins.
func Latest(facts []club.PaymentFact, filter *Filter) (club.PaymentFact, bool) {
	var (
		best   club.PaymentFact
		bestTS time.Time
		found  bool
	)
	for _, f := range facts {
		if !filter.matches(f) {
			continue
		}
		ts, ok := club.ParseTimestamp(f.Reference())
		if !ok {
			continue
		}
		if !found || !ts.Before(bestTS) {
			best, bestTS, found = f, ts, true
		}
	}
	return best, found
}

// DueDate returns the date the payment described by f runs out. plan
// overrides the plan recorded on the fact when non-empty.
func DueDate(f club.PaymentFact, plan club.Plan) (time.Time, bool) {
	if plan == "" {
		plan = f.SubscriptionPlan
	}
	d, ok := club.ParseDay(f.Reference())
	if !ok {
		return time.Time{}, false
	}
	return AdvanceDueDate(d, plan), true
}

// AdvanceDueDate moves base forward by the length of one billing period:
// fourteen days for half-month plans, one clamped calendar month for monthly,
// weekly and discount plans. Other plans do not advance.
func AdvanceDueDate(base time.Time, plan club.Plan) time.Time {
	switch plan {
	case club.PlanHalfMonth:
		return club.AddDays(base, 14)
	case club.PlanMonthly, club.PlanWeekly, club.PlanDiscount:
		return club.AddMonthsClamped(base, 1)
	default:
		return club.Day(base)
	}
}

// HasReference reports whether any entry is identified by the exact value ref.
func HasReference(entries []club.HistoryEntry, ref string) bool {
	for _, e := range entries {
		if e.ReferenceValue() == ref {
			return true
		}
	}
	return false
}

// Append adds f to entries unless an entry with the same reference value is
// already present. The second result reports whether f was added.
func Append(entries []club.HistoryEntry, f club.PaymentFact) ([]club.HistoryEntry, bool) {
	if HasReference(entries, f.Reference()) {
		return entries, false
	}
	return append(entries, club.FactEntry(f)), true
}
