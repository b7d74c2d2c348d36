package analytics

import "github.com/dmitrymomot/clubledger/pkg/club"

// leadStats counts the funnel for the scope. Under AllAreas every lead
// outside the reserve area counts, including leads whose area is unknown.
// For a single area only leads known to belong to it count.
func leadStats(db club.Database, scope string, inScope map[string]struct{}, period *Period) LeadStats {
	areas := make(map[string]string, len(db.Leads)+len(db.ArchivedLeads))
	created := make(map[string]string)
	var order []string
	note := func(id, area, createdAt string) {
		if id == "" {
			return
		}
		if _, ok := areas[id]; !ok && area != "" {
			areas[id] = area
		}
		if _, ok := created[id]; !ok {
			order = append(order, id)
			created[id] = ""
		}
		if created[id] == "" {
			created[id] = createdAt
		}
	}
	for _, l := range db.Leads {
		note(l.ID, l.Area, l.CreatedAt)
	}
	for _, l := range db.ArchivedLeads {
		note(l.ID, l.Area, l.CreatedAt)
	}
	for _, e := range db.LeadHistory {
		note(e.LeadID, "", e.LeadCreatedAt)
	}

	counts := func(id string) bool {
		area, known := areas[id]
		if scope == AllAreas {
			return area != club.ReserveArea
		}
		if !known {
			return false
		}
		_, ok := inScope[area]
		return ok
	}

	var st LeadStats
	for _, id := range order {
		if counts(id) && within(period, created[id]) {
			st.Created++
		}
	}

	resolved := make(map[string]struct{}, len(db.LeadHistory))
	for _, e := range db.LeadHistory {
		resolved[e.LeadID] = struct{}{}
		if !counts(e.LeadID) || !within(period, e.ResolvedAt) {
			continue
		}
		switch e.Outcome {
		case club.LeadConverted:
			st.Converted++
		case club.LeadCanceled:
			st.Canceled++
		}
	}

	// Leads archived before lifecycle events were recorded count as canceled.
	for _, l := range db.ArchivedLeads {
		if _, ok := resolved[l.ID]; ok || !counts(l.ID) {
			continue
		}
		at := l.ArchivedAt
		if at == "" {
			at = l.CreatedAt
		}
		if within(period, at) {
			st.Canceled++
		}
	}
	return st
}
