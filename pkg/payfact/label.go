package payfact

import (
	"strconv"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// PeriodLabel returns the display label of the period a payment covers.
// Single visits and half-month plans have fixed labels, other known plans are
// labelled with the month and year of ref. The result is empty for unknown
// plans and, for month labels, when ref is not a valid date.
func PeriodLabel(plan club.Plan, ref string) string {
	switch plan {
	case club.PlanSingle:
		return "1 день"
	case club.PlanHalfMonth:
		return "14 дней"
	}
	if !plan.Known() {
		return ""
	}
	d, ok := club.ParseDay(ref)
	if !ok {
		return ""
	}
	return monthNames[d.Month()-1] + " " + strconv.Itoa(d.Year())
}
