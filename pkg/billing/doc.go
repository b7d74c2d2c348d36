// Package billing advances a client's subscription when a payment task is
// completed.
//
// ResolvePaymentCompletion is a pure function: it receives the client, the
// completed task and the weekly schedule, and returns a ClientUpdate that the
// caller applies and persists. The update touches exactly one placement. Only
// when that placement is the primary one (index 0) are the client's top-level
// fields refreshed, through club.SyncPrimary; completing a payment for a
// secondary placement leaves the primary due date alone.
//
// Due dates advance per plan:
//
//   - manually tracked groups and plans: the paid lesson counter grows by the
//     configured increment (8 by default) and the due date becomes the first
//     scheduled session the counter no longer covers;
//   - half-month: fourteen days after the completion date;
//   - monthly and discount: one calendar month after the previous due date,
//     clamped to the end of shorter months;
//   - anything else: the completion date itself.
//
// Every completion also records a payment fact in the client's history,
// unless one with the same timestamp is already there.
package billing
