package analytics

import (
	"slices"
	"time"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/payfact"
	"github.com/dmitrymomot/clubledger/pkg/schedule"
)

// AllAreas is the scope that aggregates every active area of the club.
const AllAreas = "all"

// Projections are the four views of one metric.
type Projections struct {
	Actual    float64 `json:"actual"`
	Forecast  float64 `json:"forecast"`
	Remaining float64 `json:"remaining"`
	Target    float64 `json:"target"`
}

// AthleteStats break the roster down by lifecycle status.
type AthleteStats struct {
	New      int `json:"new"`
	Renewed  int `json:"renewed"`
	Returned int `json:"returned"`
	Canceled int `json:"canceled"`
	DropIn   int `json:"dropIn"`
	// AttendanceRate is the share of attended marks in percent.
	AttendanceRate float64 `json:"attendanceRate"`
}

// LeadStats count the lead funnel.
type LeadStats struct {
	Created   int `json:"created"`
	Converted int `json:"converted"`
	Canceled  int `json:"canceled"`
}

// Snapshot is the aggregated report for one scope and period.
type Snapshot struct {
	Scope  string   `json:"scope"`
	Period *Period  `json:"period,omitempty"`
	Areas  []string `json:"areas,omitempty"`

	Revenue  Projections `json:"revenue"`
	Profit   Projections `json:"profit"`
	Fill     Projections `json:"fill"`
	Athletes Projections `json:"athletes"`

	AthleteStats AthleteStats `json:"athleteStats"`
	LeadStats    LeadStats    `json:"leadStats"`

	Capacity   int     `json:"capacity"`
	MaxRevenue float64 `json:"maxRevenue"`
	Costs      float64 `json:"costs"`
}

// ComputeSnapshot aggregates db for scope, which is AllAreas or one area
// name. A nil period aggregates every record regardless of dates.
//
// Within a period only clients with a due date, a start date or a payment
// fact inside it are counted. Costs are the configured monthly figures and
// are not prorated. Drop-ins are judged by the remaining lessons as of today.
// Under AllAreas a client whose primary enrollment is parked in the reserve
// area is left out entirely.
func ComputeSnapshot(db club.Database, scope string, period *Period, today time.Time) Snapshot {
	snap := Snapshot{Scope: scope, Period: period}
	if scope == club.ReserveArea {
		return snap
	}

	snap.Areas = resolveAreas(db, scope)
	inScope := make(map[string]struct{}, len(snap.Areas))
	for _, a := range snap.Areas {
		inScope[a] = struct{}{}
	}

	for _, g := range scheduledGroups(db.Schedule, inScope) {
		if gs, ok := db.Settings.Group(g.area, g.group); ok && gs.Capacity > 0 {
			snap.Capacity += gs.Capacity
			snap.MaxRevenue += gs.Price * float64(gs.Capacity)
		}
	}
	for _, a := range snap.Areas {
		snap.Costs += db.Settings.Costs(a).Total()
	}

	var (
		revActual, revForecast float64
		actualCount, roster    int
	)
	rosterIDs := make(map[string]struct{})
	for _, m := range members(db.Clients, inScope, scope == AllAreas) {
		c := m.client
		if c.IsCanceled() {
			if within(period, c.CanceledAt) {
				snap.AthleteStats.Canceled++
			}
			continue
		}
		if period != nil && !m.activeIn(*period) {
			continue
		}

		roster++
		rosterIDs[c.ID] = struct{}{}
		amount := m.revenue(db.Settings, period)
		revForecast += amount
		if c.PayStatus == club.PayActive {
			actualCount++
			revActual += amount
		}

		switch c.Status {
		case club.StatusNew:
			snap.AthleteStats.New++
		case club.StatusRenewed:
			snap.AthleteStats.Renewed++
		case club.StatusReturned:
			snap.AthleteStats.Returned++
		}
		if m.dropIn(db.Schedule, today) {
			snap.AthleteStats.DropIn++
		}
	}
	snap.AthleteStats.AttendanceRate = attendanceRate(db.Attendance, rosterIDs, inScope, period)

	snap.Revenue = Projections{
		Actual:    revActual,
		Forecast:  revForecast,
		Remaining: max(0, revForecast-revActual),
		Target:    max(0, snap.MaxRevenue-revActual),
	}
	// Costs cancel out of the remaining tier.
	snap.Profit = Projections{
		Actual:    snap.Revenue.Actual - snap.Costs,
		Forecast:  snap.Revenue.Forecast - snap.Costs,
		Remaining: snap.Revenue.Remaining,
		Target:    snap.Revenue.Target - snap.Costs,
	}
	snap.Athletes = Projections{
		Actual:    float64(actualCount),
		Forecast:  float64(roster),
		Remaining: float64(max(0, roster-actualCount)),
		Target:    float64(max(0, snap.Capacity-actualCount)),
	}
	if snap.Capacity > 0 {
		capacity := float64(snap.Capacity)
		actual := float64(actualCount) / capacity * 100
		forecast := float64(roster) / capacity * 100
		snap.Fill = Projections{
			Actual:    actual,
			Forecast:  forecast,
			Remaining: max(0, forecast-actual),
			Target:    max(0, 100-actual),
		}
	}
	snap.LeadStats = leadStats(db, scope, inScope, period)
	return snap
}

// resolveAreas expands AllAreas to the areas that are scheduled or have at
// least one client. Areas listed in settings keep their configured order and
// the rest follow alphabetically. The reserve area is never included.
func resolveAreas(db club.Database, scope string) []string {
	if scope != AllAreas {
		return []string{scope}
	}
	seen := make(map[string]struct{})
	add := func(area string) {
		if area != "" && area != club.ReserveArea {
			seen[area] = struct{}{}
		}
	}
	for _, s := range db.Schedule {
		add(s.Area)
	}
	for _, c := range db.Clients {
		placements := club.EffectivePlacements(c)
		if len(placements) > 0 && placements[0].Area == club.ReserveArea {
			continue
		}
		for _, p := range placements {
			add(p.Area)
		}
	}

	out := make([]string, 0, len(seen))
	for _, a := range db.Settings.Areas {
		if _, ok := seen[a]; ok {
			out = append(out, a)
			delete(seen, a)
		}
	}
	rest := make([]string, 0, len(seen))
	for a := range seen {
		rest = append(rest, a)
	}
	slices.Sort(rest)
	return append(out, rest...)
}

type groupKey struct {
	area  string
	group string
}

// scheduledGroups returns the distinct scheduled groups of the scope areas.
func scheduledGroups(slots []club.ScheduleSlot, inScope map[string]struct{}) []groupKey {
	var out []groupKey
	seen := make(map[groupKey]struct{})
	for _, s := range slots {
		if _, ok := inScope[s.Area]; !ok || s.Group == "" {
			continue
		}
		k := groupKey{s.Area, s.Group}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

type scopedPlacement struct {
	club.Placement
	primary bool
}

// member is a client with its in-scope placements.
type member struct {
	client     club.Client
	placements []scopedPlacement
	facts      []club.PaymentFact
}

func members(clients []club.Client, inScope map[string]struct{}, skipReserved bool) []member {
	var out []member
	for _, c := range clients {
		placements := club.EffectivePlacements(c)
		if skipReserved && len(placements) > 0 && placements[0].Area == club.ReserveArea {
			continue
		}
		var ps []scopedPlacement
		for i, p := range placements {
			if _, ok := inScope[p.Area]; ok {
				ps = append(ps, scopedPlacement{Placement: p, primary: i == 0})
			}
		}
		if len(ps) == 0 {
			continue
		}
		out = append(out, member{client: c, placements: ps, facts: payfact.Normalize(c.PayHistory)})
	}
	return out
}

// activeIn reports whether the member has a due date or start date in p, or
// any payment recorded in p.
func (m member) activeIn(p Period) bool {
	for _, sp := range m.placements {
		if p.ContainsValue(sp.PayDate) || p.ContainsValue(sp.StartDate) {
			return true
		}
	}
	for _, f := range m.facts {
		if p.ContainsValue(f.Reference()) {
			return true
		}
	}
	return false
}

// dropIn reports whether any in-scope enrollment still has lessons left. The
// stored counter is used only for manually tracked enrollments; the rest are
// estimated from the schedule.
func (m member) dropIn(slots []club.ScheduleSlot, today time.Time) bool {
	for _, sp := range m.placements {
		if n, ok := schedule.EffectiveRemainingLessonsFor(m.client, sp.Placement, slots, today); ok && n > 0 {
			return true
		}
	}
	return false
}

func (m member) revenue(settings club.Settings, period *Period) float64 {
	var total float64
	for _, sp := range m.placements {
		total += m.placementAmount(sp, settings, period)
	}
	return total
}

// placementAmount resolves what one enrollment brings in: the payments
// recorded for it within the period, else its own amount, else the client's
// amount for the primary enrollment, else the group's default price.
func (m member) placementAmount(sp scopedPlacement, settings club.Settings, period *Period) float64 {
	if period != nil {
		var sum float64
		var found bool
		for _, f := range m.facts {
			if f.Amount == nil || !period.ContainsValue(f.Reference()) || !factMatches(f, sp) {
				continue
			}
			sum += *f.Amount
			found = true
		}
		if found {
			return sum
		}
	}
	switch {
	case sp.PayAmount > 0:
		return sp.PayAmount
	case sp.primary && m.client.PayAmount > 0:
		return m.client.PayAmount
	}
	if gs, ok := settings.Group(sp.Area, sp.Group); ok {
		return gs.Price
	}
	return 0
}

// factMatches links a fact to a placement by id when both carry one, else by
// area and group. Facts without any link belong to the primary placement.
func factMatches(f club.PaymentFact, sp scopedPlacement) bool {
	if f.PlacementID != "" && sp.ID != "" {
		return f.PlacementID == sp.ID
	}
	if f.Area == "" && f.Group == "" {
		return sp.primary
	}
	return (f.Area == "" || f.Area == sp.Area) && (f.Group == "" || f.Group == sp.Group)
}

func attendanceRate(entries []club.AttendanceEntry, roster, inScope map[string]struct{}, period *Period) float64 {
	var total, attended int
	for _, e := range entries {
		if _, ok := roster[e.ClientID]; !ok {
			continue
		}
		if e.Area != "" {
			if _, ok := inScope[e.Area]; !ok {
				continue
			}
		}
		if period != nil && !period.ContainsValue(e.Date) {
			continue
		}
		total++
		if e.Attended {
			attended++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(attended) / float64(total) * 100
}
