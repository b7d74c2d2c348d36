// Package club defines the records a multi-location sports club keeps about its
// members and the small set of rules that every other package relies on.
//
// The package is intentionally free of I/O. It describes:
//
//   - Client: identity, contacts, lifecycle status, payment status and the
//     ordered list of placements (index 0 is the primary placement).
//   - Placement: one (area, group) enrollment with its own Terms.
//   - HistoryEntry / PaymentFact: the payment history as it is persisted
//     (legacy bare date strings or loosely typed records) and its canonical form.
//   - ScheduleSlot, Task, Lead, LeadLifecycleEvent, AttendanceEntry, Settings:
//     the remaining collections consumed by billing and analytics.
//
// # Dates
//
// All date arithmetic runs on UTC midnight values. Use Day to normalize a
// time.Time, ParseDay to read a stored date in any of the tolerated layouts,
// and FormatDate / FormatISO to write one back.
//
// # Placements
//
// A client holds at most MaxPlacements placements spread over at most MaxAreas
// distinct areas, and never two placements for the same (area, group) pair.
// AddPlacement and ValidatePlacements enforce these limits and return errors
// whose messages can be shown to an operator as is.
//
// The top-level Terms of a Client mirror its primary placement for older
// readers of the data. SyncPrimary is the single place that performs this
// projection; mutation code changes placements and then calls it.
package club
