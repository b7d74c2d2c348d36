package schedule

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/payfact"
)

// lookaheadYears bounds the forward walk of CalculateManualPayDate.
const lookaheadYears = 2

// Week holds the number of sessions per ISO weekday; index 0 is unused.
type Week [8]int

// Total returns the number of sessions in one week.
func (w Week) Total() int {
	n := 0
	for _, c := range w[1:] {
		n += c
	}
	return n
}

// WeeklySessions counts the sessions of (area, group) per weekday. The second
// result is false when the pair has no valid slot.
func WeeklySessions(slots []club.ScheduleSlot, area, group string) (Week, bool) {
	var w Week
	found := false
	for _, s := range slots {
		if s.Area != area || s.Group != group || s.Weekday < 1 || s.Weekday > 7 {
			continue
		}
		w[s.Weekday]++
		found = true
	}
	return w, found
}

// EstimateGroupRemainingLessons counts the scheduled sessions of (area, group)
// from today (inclusive) up to payDate (exclusive). It reports false when the
// pair has no schedule or payDate is not a date, and returns 0 once the paid
// period has lapsed.
func EstimateGroupRemainingLessons(area, group, payDate string, slots []club.ScheduleSlot, today time.Time) (int, bool) {
	week, ok := WeeklySessions(slots, area, group)
	if !ok {
		return 0, false
	}
	due, ok := club.ParseDay(payDate)
	if !ok {
		return 0, false
	}
	return countSessions(week, club.Day(today), due), true
}

func countSessions(week Week, from, to time.Time) int {
	if !from.Before(to) {
		return 0
	}
	days := int(to.Sub(from).Hours() / 24)
	n := (days / 7) * week.Total()
	d := from.AddDate(0, 0, (days/7)*7)
	for d.Before(to) {
		n += week[club.ISOWeekday(d)]
		d = d.AddDate(0, 0, 1)
	}
	return n
}

// EffectiveRemainingLessons returns the remaining lessons of the client's
// primary enrollment. See EffectiveRemainingLessonsFor.
func EffectiveRemainingLessons(c club.Client, slots []club.ScheduleSlot, today time.Time) (int, bool) {
	return EffectiveRemainingLessonsFor(c, club.Placement{Terms: c.Terms}, slots, today)
}

// EffectiveRemainingLessonsFor returns the remaining lessons of placement p.
// Manually tracked enrollments return the stored counter unchanged, including
// negative values. Others are estimated from the schedule up to the due date
// derived from the latest matching payment fact, falling back to p.PayDate.
func EffectiveRemainingLessonsFor(c club.Client, p club.Placement, slots []club.ScheduleSlot, today time.Time) (int, bool) {
	plan := p.SubscriptionPlan
	if plan == "" {
		plan = c.SubscriptionPlan
	}

	if club.IsManualTracked(p.Group, plan) {
		if p.RemainingLessons == nil {
			return 0, false
		}
		return *p.RemainingLessons, true
	}

	ref := p.PayDate
	facts := payfact.Normalize(c.PayHistory)
	if latest, ok := payfact.Latest(facts, &payfact.Filter{Area: p.Area, Group: p.Group}); ok {
		if due, ok := payfact.DueDate(latest, plan); ok {
			ref = club.FormatDate(due)
		}
	}
	return EstimateGroupRemainingLessons(p.Area, p.Group, ref, slots, today)
}

// CalculateManualPayDate returns the date of the (remaining+1)-th session of
// (area, group) strictly after ref: the first session not covered by the
// lessons already paid for. When remaining is below zero the client is
// already in debt and the result is the day of ref. It reports false when the
// pair has no schedule or no such session exists within two years.
func CalculateManualPayDate(area, group string, remaining int, slots []club.ScheduleSlot, ref time.Time) (time.Time, bool) {
	week, ok := WeeklySessions(slots, area, group)
	if !ok {
		return time.Time{}, false
	}
	start := club.Day(ref)
	target := remaining + 1
	if target < 1 {
		return start, true
	}

	limit := start.AddDate(lookaheadYears, 0, 0)
	seen := 0
	for d := start.AddDate(0, 0, 1); !d.After(limit); d = d.AddDate(0, 0, 1) {
		seen += week[club.ISOWeekday(d)]
		if seen >= target {
			return d, true
		}
	}
	return time.Time{}, false
}

// AreaGroups lists the groups of one area in timetable order.
type AreaGroups struct {
	Area   string
	Groups []string
}

type slotKey struct {
	minutes int
	weekday int
}

func (k slotKey) compare(o slotKey) int {
	if c := cmp.Compare(k.minutes, o.minutes); c != 0 {
		return c
	}
	return cmp.Compare(k.weekday, o.weekday)
}

// BuildGroupsByArea orders groups within each area by their earliest session
// (time of day, then weekday), and areas by their earliest group. Remaining
// ties are broken alphabetically.
func BuildGroupsByArea(slots []club.ScheduleSlot) []AreaGroups {
	type groupEntry struct {
		name string
		key  slotKey
	}
	byArea := make(map[string]map[string]slotKey)
	for _, s := range slots {
		if s.Area == "" || s.Group == "" {
			continue
		}
		k := slotKey{minutes: parseMinutes(s.Time), weekday: s.Weekday}
		groups, ok := byArea[s.Area]
		if !ok {
			groups = make(map[string]slotKey)
			byArea[s.Area] = groups
		}
		if cur, ok := groups[s.Group]; !ok || k.compare(cur) < 0 {
			groups[s.Group] = k
		}
	}

	type areaEntry struct {
		groups AreaGroups
		key    slotKey
	}
	areas := make([]areaEntry, 0, len(byArea))
	for area, groups := range byArea {
		entries := make([]groupEntry, 0, len(groups))
		for name, k := range groups {
			entries = append(entries, groupEntry{name: name, key: k})
		}
		slices.SortFunc(entries, func(a, b groupEntry) int {
			if c := a.key.compare(b.key); c != 0 {
				return c
			}
			return strings.Compare(a.name, b.name)
		})

		ag := AreaGroups{Area: area, Groups: make([]string, len(entries))}
		for i, e := range entries {
			ag.Groups[i] = e.name
		}
		areas = append(areas, areaEntry{groups: ag, key: entries[0].key})
	}
	slices.SortFunc(areas, func(a, b areaEntry) int {
		if c := a.key.compare(b.key); c != 0 {
			return c
		}
		return strings.Compare(a.groups.Area, b.groups.Area)
	})

	out := make([]AreaGroups, len(areas))
	for i, a := range areas {
		out[i] = a.groups
	}
	return out
}

// parseMinutes reads "HH:MM" as minutes after midnight. Unreadable values sort last.
func parseMinutes(s string) int {
	const unknown = 24 * 60
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return unknown
	}
	hh, err := strconv.Atoi(h)
	if err != nil || hh < 0 || hh > 23 {
		return unknown
	}
	mm, err := strconv.Atoi(m)
	if err != nil || mm < 0 || mm > 59 {
		return unknown
	}
	return hh*60 + mm
}
