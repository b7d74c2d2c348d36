package dedup

import "github.com/dmitrymomot/clubledger/pkg/club"

// Field names reported in matches.
const (
	FieldFullName   = "fullName"
	FieldParentName = "parentName"
	FieldArea       = "area"
	FieldGroup      = "group"
	FieldPhone      = "phone"
	FieldWhatsApp   = "whatsApp"
	FieldTelegram   = "telegram"
	FieldInstagram  = "instagram"
)

// Match is one field of an existing client that matched the candidate.
// Value is the existing client's raw value.
type Match struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// Duplicate is an existing client with at least one matching field.
type Duplicate struct {
	Client  club.Client `json:"client"`
	Matches []Match     `json:"matches"`
}

// Option configures FindClientDuplicates.
type Option func(*options)

type options struct {
	excludeID string
}

// ExcludeID skips the client with the given id, typically the candidate itself
// when an existing record is being edited.
func ExcludeID(id string) Option {
	return func(o *options) {
		o.excludeID = id
	}
}

type contact struct {
	field string
	raw   string
	key   string
}

func contacts(c club.Client) []contact {
	out := make([]contact, 0, 4)
	add := func(field, raw, key string) {
		if key != "" {
			out = append(out, contact{field: field, raw: raw, key: key})
		}
	}
	add(FieldPhone, c.Phone, NormalizePhone(c.Phone))
	add(FieldWhatsApp, c.WhatsApp, NormalizePhone(c.WhatsApp))
	add(FieldTelegram, c.Telegram, NormalizeHandle(c.Telegram))
	add(FieldInstagram, c.Instagram, NormalizeHandle(c.Instagram))
	return out
}

// FindClientDuplicates returns the clients sharing at least one normalized
// field with candidate, in input order. Contact fields are compared across
// kinds, and each field of an existing client is reported at most once.
func FindClientDuplicates(clients []club.Client, candidate club.Client, opts ...Option) []Duplicate {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	fullName := NormalizeName(candidate.FullName)
	parentName := NormalizeName(candidate.ParentName)
	area := normalizeLabel(candidate.Area)
	group := normalizeLabel(candidate.Group)
	keys := make(map[string]struct{}, 4)
	for _, ct := range contacts(candidate) {
		keys[ct.key] = struct{}{}
	}

	var out []Duplicate
	for _, c := range clients {
		if o.excludeID != "" && c.ID == o.excludeID {
			continue
		}

		var matches []Match
		if fullName != "" && NormalizeName(c.FullName) == fullName {
			matches = append(matches, Match{Field: FieldFullName, Value: c.FullName})
		}
		if parentName != "" && NormalizeName(c.ParentName) == parentName {
			matches = append(matches, Match{Field: FieldParentName, Value: c.ParentName})
		}
		if area != "" && normalizeLabel(c.Area) == area {
			matches = append(matches, Match{Field: FieldArea, Value: c.Area})
		}
		if group != "" && normalizeLabel(c.Group) == group {
			matches = append(matches, Match{Field: FieldGroup, Value: c.Group})
		}
		for _, ct := range contacts(c) {
			if _, ok := keys[ct.key]; ok {
				matches = append(matches, Match{Field: ct.field, Value: ct.raw})
			}
		}

		if len(matches) > 0 {
			out = append(out, Duplicate{Client: c, Matches: matches})
		}
	}
	return out
}

// HasField reports whether d matched on the given field.
func (d Duplicate) HasField(field string) bool {
	for _, m := range d.Matches {
		if m.Field == field {
			return true
		}
	}
	return false
}

// HasContact reports whether d matched on any contact field.
func (d Duplicate) HasContact() bool {
	return d.HasField(FieldPhone) || d.HasField(FieldWhatsApp) ||
		d.HasField(FieldTelegram) || d.HasField(FieldInstagram)
}
