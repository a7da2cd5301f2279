package livestock

import (
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

// DateOption configures the clock and calendar used by date rules.
type DateOption func(*dateConfig)

type dateConfig struct {
	now      func() time.Time
	location *time.Location
	weekend  [2]time.Weekday
}

func newDateConfig(opts []DateOption) dateConfig {
	cfg := dateConfig{
		now:      time.Now,
		location: time.Local,
		weekend:  [2]time.Weekday{time.Saturday, time.Sunday},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithClock sets the function that reports the current instant for
// [IsInThePast] and [IsInTheFuture]. It is read on every validation.
func WithClock(now func() time.Time) DateOption {
	return func(c *dateConfig) {
		c.now = now
	}
}

// WithLocation sets the location used to work out the day of the week.
func WithLocation(loc *time.Location) DateOption {
	return func(c *dateConfig) {
		c.location = loc
	}
}

// WithWeekend sets the two days treated as the weekend.
func WithWeekend(first, second time.Weekday) DateOption {
	return func(c *dateConfig) {
		c.weekend = [2]time.Weekday{first, second}
	}
}

// formatDate renders reference dates in error messages.
func formatDate(t time.Time) string {
	return t.Format(time.RFC3339)
}

// DateRule checks a [time.Time] against a fixed reference or the clock.
type DateRule struct {
	check   func(cfg dateConfig, value time.Time) error
	cfg     dateConfig
	summary string
}

// Validate implements [Validator].
func (r *DateRule) Validate(value time.Time) error {
	return r.check(r.cfg, value)
}

// Describe implements [Describer] by setting the date-time format and adding
// the constraint to the description.
func (r *DateRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Format == "" {
		ref.Value.Format = "date-time"
	}
	appendDescription(ref, r.summary)
	return nil
}

func dateRule(summary string, opts []DateOption, check func(cfg dateConfig, value time.Time) error) AnyValidator[time.Time] {
	return Erase[time.Time](&DateRule{check: check, cfg: newDateConfig(opts), summary: summary})
}

// IsInThePast returns a rule that passes for instants before now.
func IsInThePast(opts ...DateOption) AnyValidator[time.Time] {
	return dateRule("in the past", opts, func(cfg dateConfig, value time.Time) error {
		if value.Before(cfg.now()) {
			return nil
		}
		return NewValidationError("Date is not in the past")
	})
}

// IsInTheFuture returns a rule that passes for instants after now.
func IsInTheFuture(opts ...DateOption) AnyValidator[time.Time] {
	return dateRule("in the future", opts, func(cfg dateConfig, value time.Time) error {
		if value.After(cfg.now()) {
			return nil
		}
		return NewValidationError("Date is not in the future")
	})
}

// IsAfter returns a rule that passes for instants strictly after ref.
func IsAfter(ref time.Time) AnyValidator[time.Time] {
	return dateRule("> "+formatDate(ref), nil, func(_ dateConfig, value time.Time) error {
		if value.After(ref) {
			return nil
		}
		return Errorf("Date is not after %s", formatDate(ref))
	})
}

// IsBefore returns a rule that passes for instants strictly before ref.
func IsBefore(ref time.Time) AnyValidator[time.Time] {
	return dateRule("< "+formatDate(ref), nil, func(_ dateConfig, value time.Time) error {
		if value.Before(ref) {
			return nil
		}
		return Errorf("Date is not before %s", formatDate(ref))
	})
}

// IsBetweenDates returns a rule that passes when start <= value <= end.
// The start is checked first.
func IsBetweenDates(start, end time.Time) AnyValidator[time.Time] {
	summary := ">= " + formatDate(start) + " <= " + formatDate(end)
	return dateRule(summary, nil, func(_ dateConfig, value time.Time) error {
		if value.Before(start) {
			return Errorf("Date is before %s", formatDate(start))
		}
		if value.After(end) {
			return Errorf("Date is after %s", formatDate(end))
		}
		return nil
	})
}

func (c dateConfig) isWeekend(value time.Time) bool {
	day := value.In(c.location).Weekday()
	return day == c.weekend[0] || day == c.weekend[1]
}

// IsWeekday returns a rule that passes for dates outside the weekend.
func IsWeekday(opts ...DateOption) AnyValidator[time.Time] {
	return dateRule("weekday", opts, func(cfg dateConfig, value time.Time) error {
		if !cfg.isWeekend(value) {
			return nil
		}
		return NewValidationError("Date is not a weekday")
	})
}

// IsWeekend returns a rule that passes for dates on the weekend.
func IsWeekend(opts ...DateOption) AnyValidator[time.Time] {
	return dateRule("weekend", opts, func(cfg dateConfig, value time.Time) error {
		if cfg.isWeekend(value) {
			return nil
		}
		return NewValidationError("Date is not a weekend")
	})
}
