package club

import "strings"

// Plan identifies the subscription plan a placement is billed under.
type Plan string

const (
	PlanSingle     Plan = "single"
	PlanHalfMonth  Plan = "half-month"
	PlanMonthly    Plan = "monthly"
	PlanWeekly     Plan = "weekly"
	PlanDiscount   Plan = "discount"
	PlanIndividual Plan = "individual" // remaining lessons are entered by the operator
)

// Known reports whether p is one of the plans the club sells.
func (p Plan) Known() bool {
	switch p {
	case PlanSingle, PlanHalfMonth, PlanMonthly, PlanWeekly, PlanDiscount, PlanIndividual:
		return true
	}
	return false
}

// IsManual reports whether the plan itself is flagged as manually tracked.
func (p Plan) IsManual() bool {
	return p == PlanIndividual
}

// manualGroupMarkers are substrings of group names whose lessons are booked
// one by one instead of following the weekly schedule.
var manualGroupMarkers = []string{"индив", "взросл", "individual", "adult"}

// IsManualGroup reports whether lessons in group are counted by hand.
func IsManualGroup(group string) bool {
	g := strings.ToLower(strings.TrimSpace(group))
	if g == "" {
		return false
	}
	for _, m := range manualGroupMarkers {
		if strings.Contains(g, m) {
			return true
		}
	}
	return false
}

// IsManualTracked reports whether remainingLessons is operator-entered for the
// given group and plan. For every other combination the count is derived from
// the schedule.
func IsManualTracked(group string, plan Plan) bool {
	return plan.IsManual() || IsManualGroup(group)
}
