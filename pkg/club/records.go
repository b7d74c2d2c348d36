package club

// TopicPayment is the topic of tasks that track an expected payment.
const TopicPayment = "payment"

// ReserveArea is the sentinel area used to park clients that must not count
// towards capacity or revenue.
const ReserveArea = "Резерв"

// Task is an operator to-do item linked to a client.
type Task struct {
	ID          string `json:"id"`
	Revision    int64  `json:"revision,omitempty"`
	Topic       string `json:"topic"`
	ClientID    string `json:"clientId,omitempty"`
	Done        bool   `json:"done"`
	PlacementID string `json:"placementId,omitempty"`
	Area        string `json:"area,omitempty"`
	Group       string `json:"group,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	DoneAt      string `json:"doneAt,omitempty"`
}

// IsPaymentFor reports whether t is a payment task assigned to clientID.
func (t Task) IsPaymentFor(clientID string) bool {
	return t.Topic == TopicPayment && t.ClientID != "" && t.ClientID == clientID
}

// ScheduleSlot is a recurring weekly session of a group.
type ScheduleSlot struct {
	ID       string `json:"id"`
	Revision int64  `json:"revision,omitempty"`
	Area     string `json:"area"`
	Group    string `json:"group"`
	Weekday  int    `json:"weekday"` // ISO: 1 = Monday .. 7 = Sunday
	Time     string `json:"time"`    // HH:MM
}

// LeadOutcome is how a lead was resolved.
type LeadOutcome string

const (
	LeadConverted LeadOutcome = "converted"
	LeadCanceled  LeadOutcome = "canceled"
)

// Lead is a prospective client. Archived leads share the shape.
type Lead struct {
	ID         string `json:"id"`
	Revision   int64  `json:"revision,omitempty"`
	Name       string `json:"name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Area       string `json:"area,omitempty"`
	Group      string `json:"group,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	ArchivedAt string `json:"archivedAt,omitempty"`
}

// LeadLifecycleEvent records the resolution of a lead.
type LeadLifecycleEvent struct {
	ID            string      `json:"id"`
	Revision      int64       `json:"revision,omitempty"`
	LeadID        string      `json:"leadId"`
	Outcome       LeadOutcome `json:"outcome"`
	LeadCreatedAt string      `json:"leadCreatedAt,omitempty"`
	ResolvedAt    string      `json:"resolvedAt,omitempty"`
}

// AttendanceEntry is one mark in the attendance journal.
type AttendanceEntry struct {
	ID       string `json:"id"`
	Revision int64  `json:"revision,omitempty"`
	ClientID string `json:"clientId"`
	Area     string `json:"area,omitempty"`
	Group    string `json:"group,omitempty"`
	Date     string `json:"date"`
	Attended bool   `json:"attended"`
}

// GroupSettings carries the defaults of one group.
type GroupSettings struct {
	Area     string  `json:"area"`
	Group    string  `json:"group"`
	Price    float64 `json:"price,omitempty"`
	Capacity int     `json:"capacity,omitempty"`
}

// AreaCosts are the monthly fixed costs of an area.
type AreaCosts struct {
	Area        string  `json:"area"`
	Rent        float64 `json:"rent,omitempty"`
	CoachSalary float64 `json:"coachSalary,omitempty"`
}

// Total returns rent plus coach salary.
func (c AreaCosts) Total() float64 {
	return c.Rent + c.CoachSalary
}

// SettingsID is the id of the single settings document.
const SettingsID = "settings"

// Settings is the club-wide configuration document.
type Settings struct {
	ID                 string          `json:"id"`
	Revision           int64           `json:"revision,omitempty"`
	Areas              []string        `json:"areas,omitempty"`
	Groups             []GroupSettings `json:"groups,omitempty"`
	AreaCosts          []AreaCosts     `json:"areaCosts,omitempty"`
	AnalyticsFavorites []string        `json:"analyticsFavorites,omitempty"`
}

// Group returns the defaults configured for (area, group).
func (s Settings) Group(area, group string) (GroupSettings, bool) {
	for _, g := range s.Groups {
		if g.Area == area && g.Group == group {
			return g, true
		}
	}
	return GroupSettings{}, false
}

// Costs returns the costs configured for area, zero if none.
func (s Settings) Costs(area string) AreaCosts {
	for _, c := range s.AreaCosts {
		if c.Area == area {
			return c
		}
	}
	return AreaCosts{Area: area}
}

// Database is a consistent snapshot of every collection the core reads.
type Database struct {
	Clients       []Client             `json:"clients,omitempty"`
	Tasks         []Task               `json:"tasks,omitempty"`
	Schedule      []ScheduleSlot       `json:"schedule,omitempty"`
	Leads         []Lead               `json:"leads,omitempty"`
	ArchivedLeads []Lead               `json:"archivedLeads,omitempty"`
	LeadHistory   []LeadLifecycleEvent `json:"leadHistory,omitempty"`
	Attendance    []AttendanceEntry    `json:"attendance,omitempty"`
	Settings      Settings             `json:"settings"`
}
