// Package paystatus derives the three-state payment status of a client.
//
// The status follows the client's payment tasks: no payment task means
// pending, any open task means debt, and all tasks done means active. An
// active client is additionally downgraded to debt when a placement was
// underpaid and its due date already passed or a payment task is still open.
//
// Reconcile and ReconcileAll re-run the derivation after out-of-band changes
// to tasks or clients so that the stored status never drifts from the derived
// one.
package paystatus
