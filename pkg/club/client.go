package club

// Terms are the subscription terms and numeric state of one enrollment.
// Optional counters are pointers so that "not recorded" stays distinct from zero.
type Terms struct {
	Area             string  `json:"area,omitempty"`
	Group            string  `json:"group,omitempty"`
	SubscriptionPlan Plan    `json:"subscriptionPlan,omitempty"`
	PayAmount        float64 `json:"payAmount,omitempty"`
	PayActual        float64 `json:"payActual,omitempty"`
	RemainingLessons *int    `json:"remainingLessons,omitempty"`
	FrozenLessons    *int    `json:"frozenLessons,omitempty"`
	PayDate          string  `json:"payDate,omitempty"`
	StartDate        string  `json:"startDate,omitempty"`
}

// Placement is a client's enrollment in one (area, group) pair.
type Placement struct {
	ID string `json:"id,omitempty"`
	Terms
	PayStatus PayStatus    `json:"payStatus,omitempty"`
	Status    ClientStatus `json:"status,omitempty"`
}

// SamePair reports whether p and o are enrollments in the same (area, group).
func (p Placement) SamePair(o Placement) bool {
	return p.Area == o.Area && p.Group == o.Group
}

// Client is an enrolled member. The embedded Terms mirror Placements[0].
type Client struct {
	ID       string `json:"id"`
	Revision int64  `json:"revision,omitempty"`

	FullName   string `json:"fullName,omitempty"`
	ParentName string `json:"parentName,omitempty"`
	Phone      string `json:"phone,omitempty"`
	WhatsApp   string `json:"whatsApp,omitempty"`
	Telegram   string `json:"telegram,omitempty"`
	Instagram  string `json:"instagram,omitempty"`

	Status    ClientStatus `json:"status,omitempty"`
	PayStatus PayStatus    `json:"payStatus,omitempty"`
	Terms

	Placements []Placement    `json:"placements,omitempty"`
	PayHistory []HistoryEntry `json:"payHistory,omitempty"`

	CreatedAt  string `json:"createdAt,omitempty"`
	CanceledAt string `json:"canceledAt,omitempty"`
}

// IsCanceled reports whether the client left the club.
func (c Client) IsCanceled() bool {
	return c.Status == StatusCanceled
}

// Clone returns a copy of c that shares no slices or pointers with it.
func (c Client) Clone() Client {
	out := c
	out.Terms = c.Terms.clone()
	if c.Placements != nil {
		out.Placements = make([]Placement, len(c.Placements))
		for i, p := range c.Placements {
			p.Terms = p.Terms.clone()
			out.Placements[i] = p
		}
	}
	if c.PayHistory != nil {
		out.PayHistory = make([]HistoryEntry, len(c.PayHistory))
		for i, e := range c.PayHistory {
			out.PayHistory[i] = e.clone()
		}
	}
	return out
}

func (t Terms) clone() Terms {
	t.RemainingLessons = cloneInt(t.RemainingLessons)
	t.FrozenLessons = cloneInt(t.FrozenLessons)
	return t
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int { return &n }

// FloatPtr returns a pointer to f.
func FloatPtr(f float64) *float64 { return &f }
