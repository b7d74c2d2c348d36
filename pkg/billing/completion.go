package billing

import (
	"time"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/payfact"
	"github.com/dmitrymomot/clubledger/pkg/schedule"
)

// CompletionInput describes a completed payment task.
type CompletionInput struct {
	Client      club.Client
	Task        club.Task
	Schedule    []club.ScheduleSlot
	CompletedAt time.Time
}

// ClientUpdate is the partial client change produced by a payment completion.
type ClientUpdate struct {
	// PlacementIndex is the index of the updated placement, or -1 when the
	// client has no placements and its top-level terms were updated instead.
	PlacementIndex int
	// Placements is the client's placement list with the target replaced.
	// It is nil for clients without placements.
	Placements []club.Placement
	// Terms and PayStatus are set only when the primary enrollment changed.
	Terms     *club.Terms
	PayStatus club.PayStatus
	// PayHistory is the history after appending Anchor.
	PayHistory []club.HistoryEntry
	// Anchor is the recorded payment fact, nil when an entry with the same
	// timestamp already existed.
	Anchor *club.PaymentFact
}

// Primary reports whether the update refreshes the client's top-level fields.
func (u ClientUpdate) Primary() bool {
	return u.Terms != nil
}

// Apply returns a copy of c with the update applied.
func (u ClientUpdate) Apply(c club.Client) club.Client {
	out := c.Clone()
	if u.Placements != nil {
		out.Placements = u.Placements
	}
	if u.Terms != nil {
		out.Terms = *u.Terms
	}
	if u.PayStatus != "" {
		out.PayStatus = u.PayStatus
	}
	out.PayHistory = u.PayHistory
	return out
}

// ResolvePaymentCompletion computes the client update for a completed payment
// task. The target placement is the one linked by task.PlacementID, else the
// one in (task.Area, task.Group), else the first placement.
func ResolvePaymentCompletion(in CompletionInput, opts ...Option) ClientUpdate {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := in.Client.Clone()
	idx := targetIndex(c.Placements, in.Task)

	var target club.Placement
	if idx >= 0 {
		target = c.Placements[idx]
	} else {
		target = club.Placement{Terms: c.Terms, PayStatus: c.PayStatus, Status: c.Status}
	}

	plan := target.SubscriptionPlan
	if plan == "" {
		plan = c.SubscriptionPlan
	}

	switch {
	case target.PayAmount > 0:
		target.PayActual = target.PayAmount
	case c.PayAmount > 0:
		target.PayActual = c.PayAmount
	}
	target.PayStatus = club.PayActive

	due, anchor := advance(&target, plan, in, o)
	target.PayDate = club.FormatDate(due)

	fact := club.PaymentFact{
		ID:               o.newFactID(),
		PaidAt:           club.FormatISO(anchor),
		SubscriptionPlan: plan,
		Area:             target.Area,
		Group:            target.Group,
		PlacementID:      target.ID,
		RemainingLessons: target.RemainingLessons,
		FrozenLessons:    target.FrozenLessons,
	}
	if !in.CompletedAt.IsZero() {
		fact.RecordedAt = club.FormatISO(in.CompletedAt)
	}
	if target.PayActual > 0 {
		fact.Amount = club.FloatPtr(target.PayActual)
	}
	fact.PeriodLabel = payfact.PeriodLabel(plan, fact.PaidAt)

	update := ClientUpdate{PlacementIndex: idx}
	var added bool
	update.PayHistory, added = payfact.Append(c.PayHistory, fact)
	if added {
		update.Anchor = &fact
	}

	if idx >= 0 {
		c.Placements[idx] = target
		update.Placements = c.Placements
	}
	if idx <= 0 {
		projected := club.Client{Terms: target.Terms, Placements: update.Placements}
		club.SyncPrimary(&projected)
		update.Terms = &projected.Terms
		update.PayStatus = club.PayActive
	}
	return update
}

// advance moves the target's due date and lesson counter forward and returns
// the new due date with the date the payment is recorded under.
func advance(target *club.Placement, plan club.Plan, in CompletionInput, o options) (due, anchor time.Time) {
	var completed, prior, start knownDate
	if !in.CompletedAt.IsZero() {
		completed = knownDate{club.Day(in.CompletedAt), true}
	}
	prior.t, prior.ok = club.ParseDay(target.PayDate)
	start.t, start.ok = club.ParseDay(target.StartDate)

	anchor = firstKnown(completed, prior, start)

	switch {
	case club.IsManualTracked(target.Group, plan):
		remaining := o.manualIncrement
		if target.RemainingLessons != nil {
			remaining += *target.RemainingLessons
		}
		target.RemainingLessons = club.IntPtr(remaining)
		if d, ok := schedule.CalculateManualPayDate(target.Area, target.Group, remaining, in.Schedule, anchor); ok {
			return d, anchor
		}
		return firstKnown(prior, knownDate{anchor, true}), anchor

	case plan == club.PlanHalfMonth:
		return club.AddDays(anchor, 14), anchor

	case plan == club.PlanMonthly || plan == club.PlanDiscount:
		base := firstKnown(prior, start, completed)
		if prior.ok && (!completed.ok || prior.t.Before(completed.t)) {
			anchor = prior.t
		}
		return club.AddMonthsClamped(base, 1), anchor

	default:
		return anchor, anchor
	}
}

type knownDate struct {
	t  time.Time
	ok bool
}

func firstKnown(dates ...knownDate) time.Time {
	for _, d := range dates {
		if d.ok {
			return d.t
		}
	}
	return time.Time{}
}

func targetIndex(placements []club.Placement, task club.Task) int {
	if len(placements) == 0 {
		return -1
	}
	if i := club.PlacementIndexByID(placements, task.PlacementID); i >= 0 {
		return i
	}
	if i := club.PlacementIndexByPair(placements, task.Area, task.Group); i >= 0 {
		return i
	}
	return 0
}
