package paystatus

import (
	"time"

	"github.com/dmitrymomot/clubledger/pkg/club"
)

// Derive computes the payment status of c from its payment tasks.
// Tasks assigned to other clients or with another topic are ignored.
func Derive(c club.Client, tasks []club.Task, today time.Time) club.PayStatus {
	var total, open int
	for _, t := range tasks {
		if !t.IsPaymentFor(c.ID) {
			continue
		}
		total++
		if !t.Done {
			open++
		}
	}

	switch {
	case total == 0:
		return club.PayPending
	case open > 0:
		return club.PayDebt
	}

	// An open task already forced debt above, so only lapsed shortfalls remain.
	if underpaid(c, club.Day(today)) {
		return club.PayDebt
	}
	return club.PayActive
}

// underpaid reports whether any placement was paid less than its expected
// amount and its due date has passed. A shortfall with a due date of today or
// later is tolerated.
func underpaid(c club.Client, today time.Time) bool {
	for _, p := range club.EffectivePlacements(c) {
		if p.PayActual <= 0 || p.PayAmount <= 0 || p.PayActual >= p.PayAmount {
			continue
		}
		if due, ok := club.ParseDay(p.PayDate); ok && due.Before(today) {
			return true
		}
	}
	return false
}

// Reconcile returns c with its derived status. The second result reports
// whether the stored status differed.
func Reconcile(c club.Client, tasks []club.Task, today time.Time) (club.Client, bool) {
	status := Derive(c, tasks, today)
	if status == c.PayStatus {
		return c, false
	}
	out := c.Clone()
	out.PayStatus = status
	return out, true
}

// ReconcileAll reconciles every client against the task list and returns only
// the clients whose status changed, in input order.
func ReconcileAll(clients []club.Client, tasks []club.Task, today time.Time) []club.Client {
	byClient := TasksByClient(tasks)
	var changed []club.Client
	for _, c := range clients {
		if out, ok := Reconcile(c, byClient[c.ID], today); ok {
			changed = append(changed, out)
		}
	}
	return changed
}

// TasksByClient groups payment tasks by their client id.
func TasksByClient(tasks []club.Task) map[string][]club.Task {
	out := make(map[string][]club.Task)
	for _, t := range tasks {
		if t.Topic != club.TopicPayment || t.ClientID == "" {
			continue
		}
		out[t.ClientID] = append(out[t.ClientID], t)
	}
	return out
}
