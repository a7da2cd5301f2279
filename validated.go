package livestock

import (
	"log/slog"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validated holds a value together with its rules and keeps the result of
// validating the current value. Errors are computed on construction and
// again, synchronously, on every [Validated.Set].
//
// A Validated is not safe for concurrent use. Guard it with a mutex when it
// is shared between goroutines.
type Validated[T any] struct {
	value      T
	validators []AnyValidator[T]
	errors     ValidationErrors

	transform func(T) T
	logger    *slog.Logger
	observers []func(T, ValidationErrors)
}

// NewValidated returns a container holding value and validated against
// validators.
func NewValidated[T any](value T, validators ...AnyValidator[T]) *Validated[T] {
	v := &Validated[T]{
		value:      value,
		validators: slices.Clone(validators),
	}
	v.errors = v.Validate(value)
	return v
}

// Value returns the current value.
func (v *Validated[T]) Value() T {
	return v.value
}

// Set stores value, applying the transform if one is configured, and
// revalidates before returning.
func (v *Validated[T]) Set(value T) {
	if v.transform != nil {
		value = v.transform(value)
	}
	v.value = value
	v.revalidate()
}

// Errors returns the failures for the current value, in rule order.
func (v *Validated[T]) Errors() ValidationErrors {
	return slices.Clone(v.errors)
}

// IsValid reports whether the current value passes every rule.
func (v *Validated[T]) IsValid() bool {
	return len(v.errors) == 0
}

// Validate checks value against the container's rules without storing it.
func (v *Validated[T]) Validate(value T) ValidationErrors {
	return Validate(value, v.validators...)
}

// Validators returns a copy of the container's rules.
func (v *Validated[T]) Validators() []AnyValidator[T] {
	return slices.Clone(v.validators)
}

// WithLogger enables a debug record on every revalidation.
func (v *Validated[T]) WithLogger(l *slog.Logger) *Validated[T] {
	v.logger = l
	return v
}

// Transform sets a normaliser applied by Set before storing a value. The
// current value is normalised and revalidated immediately.
func (v *Validated[T]) Transform(f func(T) T) *Validated[T] {
	v.transform = f
	if f != nil {
		v.value = f(v.value)
		v.revalidate()
	}
	return v
}

// OnChange registers f to be called, after revalidation, every time the
// value changes. Observers run synchronously in registration order.
func (v *Validated[T]) OnChange(f func(value T, errs ValidationErrors)) *Validated[T] {
	v.observers = append(v.observers, f)
	return v
}

// Describe implements [Describer] by describing every rule.
func (v *Validated[T]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, r := range v.validators {
		if err := r.Describe(name, parent, ref); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validated[T]) revalidate() {
	v.errors = v.Validate(v.value)
	logRevalidated(v.logger, v.errors)
	for _, f := range v.observers {
		f(v.value, slices.Clone(v.errors))
	}
}
