// Package analytics aggregates revenue, profit, fill rate, athlete and lead
// funnel metrics for one area or the whole club.
//
// Snapshots are derived from a club.Database on every call and are never
// cached. Each headline metric carries four projections:
//
//   - actual: what the paid clients bring
//   - forecast: what the whole roster would bring
//   - remaining: forecast minus actual, floored at zero
//   - target: headroom against the configured capacity
//
// The reserve area always yields an empty snapshot, and clients parked there
// are left out when every area is aggregated.
//
// Favorites are the dashboard tiles an operator pinned. They are stored as
// short strings and decoded strictly:
//
//	f, err := analytics.DecodeFavorite("card|Center|revenue|actual")
//	if err != nil {
//		return err
//	}
//	v, ok := f.Value(snapshot)
package analytics
