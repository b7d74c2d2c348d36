package billing

import "github.com/google/uuid"

// DefaultManualLessonsIncrement is the number of lessons one payment buys in
// manually tracked groups.
const DefaultManualLessonsIncrement = 8

// Option configures ResolvePaymentCompletion.
type Option func(*options)

type options struct {
	manualIncrement int
	newFactID       func() string
}

func defaultOptions() options {
	return options{
		manualIncrement: DefaultManualLessonsIncrement,
		newFactID:       uuid.NewString,
	}
}

// WithManualLessonsIncrement overrides the number of lessons added to manually
// tracked placements. Non-positive values are ignored.
func WithManualLessonsIncrement(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.manualIncrement = n
		}
	}
}

// WithFactIDGenerator sets the generator of payment fact ids.
func WithFactIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newFactID = fn
		}
	}
}
