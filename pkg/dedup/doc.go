// Package dedup finds existing clients that likely describe the same person
// as a candidate record.
//
// Names are compared after Unicode normalization, whitespace collapsing and
// case folding. Phone numbers are reduced to digits in the Russian "7XXXXXXXXXX"
// form, and messenger handles lose URL prefixes and the leading "@". Contact
// fields are compared across kinds, so a candidate phone can match an existing
// WhatsApp number.
//
// Usage:
//
//	dupes := dedup.FindClientDuplicates(clients, candidate, dedup.ExcludeID(candidate.ID))
//	for _, d := range dupes {
//		for _, m := range d.Matches {
//			fmt.Println(d.Client.ID, m.Field, m.Value)
//		}
//	}
package dedup
