package importer

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRegion is the phone region assumed for numbers without a country code.
const DefaultRegion = "RU"

// Option configures an Importer.
type Option func(*Importer)

// WithRegion sets the default phone region used to parse local numbers.
func WithRegion(region string) Option {
	return func(im *Importer) {
		if region != "" {
			im.region = region
		}
	}
}

// WithIDGenerator sets the generator of client and placement ids.
func WithIDGenerator(fn func() string) Option {
	return func(im *Importer) {
		if fn != nil {
			im.newID = fn
		}
	}
}

// WithClock sets the time source used for CreatedAt of new clients.
func WithClock(fn func() time.Time) Option {
	return func(im *Importer) {
		if fn != nil {
			im.now = fn
		}
	}
}

func defaults() *Importer {
	return &Importer{
		region: DefaultRegion,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}
