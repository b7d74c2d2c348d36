package club

import (
	"bytes"
	"encoding/json"
)

// HistoryEntry is one persisted payment history item. Older records store a
// bare date string (Legacy); newer ones store a loosely typed Record whose
// numeric fields may still be strings. Exactly one of the two is set.
type HistoryEntry struct {
	Legacy string
	Record *FactRecord
}

// FactRecord is a payment record as found in storage. Numeric fields keep
// whatever JSON value was stored (number, string or null) and are resolved by
// the payfact package.
type FactRecord struct {
	ID               string `json:"id,omitempty"`
	PaidAt           string `json:"paidAt,omitempty"`
	RecordedAt       string `json:"recordedAt,omitempty"`
	Amount           any    `json:"amount,omitempty"`
	SubscriptionPlan string `json:"subscriptionPlan,omitempty"`
	PeriodLabel      string `json:"periodLabel,omitempty"`
	RemainingLessons any    `json:"remainingLessons,omitempty"`
	FrozenLessons    any    `json:"frozenLessons,omitempty"`
	Area             string `json:"area,omitempty"`
	Group            string `json:"group,omitempty"`
	PlacementID      string `json:"placementId,omitempty"`
}

// PaymentFact is the canonical form of a payment event.
type PaymentFact struct {
	ID               string   `json:"id"`
	PaidAt           string   `json:"paidAt,omitempty"`
	RecordedAt       string   `json:"recordedAt,omitempty"`
	Amount           *float64 `json:"amount,omitempty"`
	SubscriptionPlan Plan     `json:"subscriptionPlan,omitempty"`
	PeriodLabel      string   `json:"periodLabel,omitempty"`
	RemainingLessons *int     `json:"remainingLessons,omitempty"`
	FrozenLessons    *int     `json:"frozenLessons,omitempty"`
	Area             string   `json:"area,omitempty"`
	Group            string   `json:"group,omitempty"`
	PlacementID      string   `json:"placementId,omitempty"`
}

// Reference returns paidAt, falling back to recordedAt.
func (f PaymentFact) Reference() string {
	if f.PaidAt != "" {
		return f.PaidAt
	}
	return f.RecordedAt
}

// Record converts the fact into its structured storage form.
func (f PaymentFact) Record() *FactRecord {
	r := &FactRecord{
		ID:               f.ID,
		PaidAt:           f.PaidAt,
		RecordedAt:       f.RecordedAt,
		SubscriptionPlan: string(f.SubscriptionPlan),
		PeriodLabel:      f.PeriodLabel,
		Area:             f.Area,
		Group:            f.Group,
		PlacementID:      f.PlacementID,
	}
	if f.Amount != nil {
		r.Amount = *f.Amount
	}
	if f.RemainingLessons != nil {
		r.RemainingLessons = float64(*f.RemainingLessons)
	}
	if f.FrozenLessons != nil {
		r.FrozenLessons = float64(*f.FrozenLessons)
	}
	return r
}

// FactEntry wraps a canonical fact as a history entry.
func FactEntry(f PaymentFact) HistoryEntry {
	return HistoryEntry{Record: f.Record()}
}

// ReferenceValue returns the date string that identifies the entry: the legacy
// value itself, or the record's paidAt falling back to recordedAt.
func (e HistoryEntry) ReferenceValue() string {
	if e.Record == nil {
		return e.Legacy
	}
	if e.Record.PaidAt != "" {
		return e.Record.PaidAt
	}
	return e.Record.RecordedAt
}

// MarshalJSON writes a record as an object and a legacy entry as a string.
func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	if e.Record != nil {
		return json.Marshal(e.Record)
	}
	return json.Marshal(e.Legacy)
}

// UnmarshalJSON accepts a bare string, an object or null. Object fields of an
// unexpected type are dropped rather than failing the whole client record.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	*e = HistoryEntry{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &e.Legacy)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		// Arrays and bare numbers carry no usable payment data.
		return nil
	}
	e.Record = &FactRecord{
		ID:               stringField(raw, "id"),
		PaidAt:           stringField(raw, "paidAt"),
		RecordedAt:       stringField(raw, "recordedAt"),
		Amount:           raw["amount"],
		SubscriptionPlan: stringField(raw, "subscriptionPlan"),
		PeriodLabel:      stringField(raw, "periodLabel"),
		RemainingLessons: raw["remainingLessons"],
		FrozenLessons:    raw["frozenLessons"],
		Area:             stringField(raw, "area"),
		Group:            stringField(raw, "group"),
		PlacementID:      stringField(raw, "placementId"),
	}
	return nil
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func (e HistoryEntry) clone() HistoryEntry {
	if e.Record == nil {
		return e
	}
	r := *e.Record
	return HistoryEntry{Record: &r}
}
