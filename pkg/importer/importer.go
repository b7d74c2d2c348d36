package importer

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/clubledger/pkg/club"
	"github.com/dmitrymomot/clubledger/pkg/dedup"
)

// Importer merges rows into a client list. It is safe for concurrent use.
type Importer struct {
	validator *validator.Validate
	region    string
	newID     func() string
	now       func() time.Time
}

// New creates an Importer.
func New(opts ...Option) *Importer {
	im := defaults()
	for _, opt := range opts {
		opt(im)
	}
	im.validator = newValidator()
	return im
}

// Result is the outcome of a merge. Created and Updated hold the final state
// of each affected client in the order the clients were first touched.
type Result struct {
	Created []club.Client
	Updated []club.Client
	Errors  []RowError
}

// Merge applies rows to clients. The input slice is not modified. Rows are
// applied in order, so a later row can merge into a client created by an
// earlier one.
func (im *Importer) Merge(clients []club.Client, rows []Row) Result {
	working := make([]club.Client, len(clients), len(clients)+len(rows))
	for i, c := range clients {
		working[i] = c.Clone()
	}
	existing := len(clients)

	var res Result
	var touched []int
	seen := make(map[int]struct{})
	mark := func(i int) {
		if _, ok := seen[i]; !ok {
			seen[i] = struct{}{}
			touched = append(touched, i)
		}
	}

	for _, r := range rows {
		if err := im.validate(r); err != nil {
			res.Errors = append(res.Errors, RowError{Line: r.Line, Err: err})
			continue
		}
		candidate := im.candidate(r)

		if i := mergeTarget(working, candidate); i >= 0 {
			merged, err := im.merge(working[i], candidate)
			if err != nil {
				res.Errors = append(res.Errors, RowError{Line: r.Line, Err: err})
				continue
			}
			working[i] = merged
			mark(i)
			continue
		}

		created, err := im.create(candidate)
		if err != nil {
			res.Errors = append(res.Errors, RowError{Line: r.Line, Err: err})
			continue
		}
		working = append(working, created)
		mark(len(working) - 1)
	}

	for _, i := range touched {
		if i < existing {
			res.Updated = append(res.Updated, working[i])
		} else {
			res.Created = append(res.Created, working[i])
		}
	}
	return res
}

// candidate builds an unsaved client from a validated row.
func (im *Importer) candidate(r Row) club.Client {
	return club.Client{
		FullName:   strings.Join(strings.Fields(r.FullName), " "),
		ParentName: strings.Join(strings.Fields(r.ParentName), " "),
		Phone:      im.canonicalPhone(r.Phone),
		WhatsApp:   im.canonicalPhone(r.WhatsApp),
		Telegram:   strings.TrimSpace(r.Telegram),
		Instagram:  strings.TrimSpace(r.Instagram),
		Terms:      r.terms(),
	}
}

// canonicalPhone formats a parseable number as E.164 and returns anything
// else trimmed but unchanged.
func (im *Importer) canonicalPhone(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	num, err := phonenumbers.Parse(raw, im.region)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.E164)
}

// mergeTarget returns the index of the first client with the same full name
// that also shares a contact or the parent name, or -1.
func mergeTarget(clients []club.Client, candidate club.Client) int {
	for i := range clients {
		for _, d := range dedup.FindClientDuplicates(clients[i:i+1], candidate) {
			if d.HasField(dedup.FieldFullName) && (d.HasContact() || d.HasField(dedup.FieldParentName)) {
				return i
			}
		}
	}
	return -1
}

func (im *Importer) merge(c club.Client, candidate club.Client) (club.Client, error) {
	out := c.Clone()
	fill(&out.ParentName, candidate.ParentName)
	fill(&out.Phone, candidate.Phone)
	fill(&out.WhatsApp, candidate.WhatsApp)
	fill(&out.Telegram, candidate.Telegram)
	fill(&out.Instagram, candidate.Instagram)

	if candidate.Area == "" {
		return out, nil
	}
	if len(out.Placements) == 0 && out.Area != "" {
		// Lift the legacy top-level enrollment before attaching another one.
		out.Placements = []club.Placement{{ID: im.newID(), Terms: out.Terms, PayStatus: out.PayStatus, Status: out.Status}}
	}
	if club.PlacementIndexByPair(out.Placements, candidate.Area, candidate.Group) >= 0 {
		return out, nil
	}
	p := club.Placement{ID: im.newID(), Terms: candidate.Terms, PayStatus: club.PayPending, Status: club.StatusNew}
	if err := club.AddPlacement(&out, p); err != nil {
		return club.Client{}, err
	}
	return out, nil
}

func (im *Importer) create(candidate club.Client) (club.Client, error) {
	c := candidate
	c.ID = im.newID()
	c.Status = club.StatusNew
	c.PayStatus = club.PayPending
	c.CreatedAt = club.FormatISO(im.now())
	if c.Area == "" {
		return c, nil
	}
	c.Terms = club.Terms{}
	p := club.Placement{ID: im.newID(), Terms: candidate.Terms, PayStatus: club.PayPending, Status: club.StatusNew}
	if err := club.AddPlacement(&c, p); err != nil {
		return club.Client{}, err
	}
	return c, nil
}

func fill(dst *string, v string) {
	if *dst == "" && v != "" {
		*dst = v
	}
}
