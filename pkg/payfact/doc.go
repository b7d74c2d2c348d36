// Package payfact turns a client's persisted payment history into canonical
// payment facts and answers the questions billing and analytics ask of it.
//
// Stored history mixes two shapes: bare date strings written by older
// versions, and records whose numeric fields may be JSON numbers or strings
// such as "4 500,50". Normalize is the only boundary between the two worlds;
// code past it works with club.PaymentFact exclusively.
//
// Parsing never fails loudly. A value that cannot be read is left out of the
// resulting fact, so a single malformed import row cannot break reporting.
//
//	facts := payfact.Normalize(client.PayHistory)
//	last, ok := payfact.Latest(facts, &payfact.Filter{Area: "Center"})
//	if ok {
//		due, _ := payfact.DueDate(last, "")
//		fmt.Println("next payment due", club.FormatDate(due))
//	}
package payfact
