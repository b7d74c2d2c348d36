package analytics

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Kind is how a favorite is rendered.
type Kind string

const (
	KindCard  Kind = "card"
	KindChart Kind = "chart"
)

// Metric names a snapshot section.
type Metric string

const (
	MetricRevenue      Metric = "revenue"
	MetricProfit       Metric = "profit"
	MetricFill         Metric = "fill"
	MetricAthletes     Metric = "athletes"
	MetricLeads        Metric = "leads"
	MetricAthleteStats Metric = "athleteStats"
)

// Projection selects one view of a projected metric.
type Projection string

const (
	ProjectionActual    Projection = "actual"
	ProjectionForecast  Projection = "forecast"
	ProjectionRemaining Projection = "remaining"
	ProjectionTarget    Projection = "target"
)

const favoriteSep = "|"

// Favorite is a pinned dashboard tile.
type Favorite struct {
	Kind       Kind
	Area       string
	Metric     Metric
	Projection Projection // only for projected metrics, optional
}

func (k Kind) valid() bool {
	return k == KindCard || k == KindChart
}

// Projected reports whether the metric has the four projections.
func (m Metric) Projected() bool {
	switch m {
	case MetricRevenue, MetricProfit, MetricFill, MetricAthletes:
		return true
	}
	return false
}

func (m Metric) valid() bool {
	return m.Projected() || m == MetricLeads || m == MetricAthleteStats
}

func (p Projection) valid() bool {
	switch p {
	case ProjectionActual, ProjectionForecast, ProjectionRemaining, ProjectionTarget:
		return true
	}
	return false
}

// Validate checks that every part of f is recognized.
func (f Favorite) Validate() error {
	if !f.Kind.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownKind, f.Kind)
	}
	if f.Area == "" {
		return fmt.Errorf("%w: empty area", ErrInvalidFavorite)
	}
	if !f.Metric.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownMetric, f.Metric)
	}
	if f.Projection == "" {
		return nil
	}
	if !f.Metric.Projected() {
		return fmt.Errorf("%w: metric %q has no projections", ErrUnknownProjection, f.Metric)
	}
	if !f.Projection.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownProjection, f.Projection)
	}
	return nil
}

// Encode renders f in the storage form "kind|area|metric[|projection]".
func (f Favorite) Encode() string {
	parts := []string{string(f.Kind), url.QueryEscape(f.Area), string(f.Metric)}
	if f.Projection != "" {
		parts = append(parts, string(f.Projection))
	}
	return strings.Join(parts, favoriteSep)
}

func (f Favorite) String() string {
	return f.Encode()
}

// DecodeFavorite parses the storage form. Unknown kinds, metrics and
// projections are rejected.
func DecodeFavorite(s string) (Favorite, error) {
	parts := strings.Split(s, favoriteSep)
	if len(parts) < 3 || len(parts) > 4 {
		return Favorite{}, fmt.Errorf("%w: %q", ErrInvalidFavorite, s)
	}
	area, err := url.QueryUnescape(parts[1])
	if err != nil {
		return Favorite{}, fmt.Errorf("%w: area of %q: %v", ErrInvalidFavorite, s, err)
	}
	f := Favorite{Kind: Kind(parts[0]), Area: area, Metric: Metric(parts[2])}
	if len(parts) == 4 {
		if parts[3] == "" {
			return Favorite{}, fmt.Errorf("%w: empty projection in %q", ErrInvalidFavorite, s)
		}
		f.Projection = Projection(parts[3])
	}
	if err := f.Validate(); err != nil {
		return Favorite{}, err
	}
	return f, nil
}

// DecodeFavorites decodes every stored favorite. Valid entries are returned
// even when others fail, and the failures are joined into the error.
func DecodeFavorites(encoded []string) ([]Favorite, error) {
	out := make([]Favorite, 0, len(encoded))
	var errs []error
	for _, s := range encoded {
		f, err := DecodeFavorite(s)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, f)
	}
	return out, errors.Join(errs...)
}

// Value reads the favorite's figure from snap. Projected metrics default to
// the actual projection. Leads resolve to the created count and athleteStats
// to the attendance rate. The second result is false when snap was computed
// for another scope.
func (f Favorite) Value(snap Snapshot) (float64, bool) {
	if f.Area != snap.Scope {
		return 0, false
	}
	switch f.Metric {
	case MetricLeads:
		return float64(snap.LeadStats.Created), true
	case MetricAthleteStats:
		return snap.AthleteStats.AttendanceRate, true
	}

	var p Projections
	switch f.Metric {
	case MetricRevenue:
		p = snap.Revenue
	case MetricProfit:
		p = snap.Profit
	case MetricFill:
		p = snap.Fill
	case MetricAthletes:
		p = snap.Athletes
	default:
		return 0, false
	}
	return p.Get(f.Projection), true
}

// Get returns one projection. An empty projection selects Actual.
func (p Projections) Get(which Projection) float64 {
	switch which {
	case ProjectionForecast:
		return p.Forecast
	case ProjectionRemaining:
		return p.Remaining
	case ProjectionTarget:
		return p.Target
	}
	return p.Actual
}
