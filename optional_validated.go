package livestock

import (
	"log/slog"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// OptionalValidated is the optional counterpart of [Validated]. When a value
// is present it is checked exactly like Validated does. When it is absent
// the rules do not run: a [Required] container reports [ErrRequired] and a
// [NotRequired] one is valid.
//
// An OptionalValidated is not safe for concurrent use.
type OptionalValidated[T any] struct {
	value      T
	present    bool
	required   Requirement
	validators []AnyValidator[T]
	errors     ValidationErrors

	transform func(T) T
	logger    *slog.Logger
	observers []func(*T, ValidationErrors)
}

// NewOptionalValidated returns a container holding a copy of *value, or no
// value when value is nil.
func NewOptionalValidated[T any](value *T, required Requirement, validators ...AnyValidator[T]) *OptionalValidated[T] {
	v := &OptionalValidated[T]{
		required:   required,
		validators: slices.Clone(validators),
	}
	if value != nil {
		v.value, v.present = *value, true
	}
	v.errors = v.validate(v.value, v.present)
	return v
}

// Value returns the current value and whether one is present.
func (v *OptionalValidated[T]) Value() (T, bool) {
	return v.value, v.present
}

// Set stores value, applying the transform if one is configured, and
// revalidates before returning.
func (v *OptionalValidated[T]) Set(value T) {
	if v.transform != nil {
		value = v.transform(value)
	}
	v.value, v.present = value, true
	v.revalidate()
}

// Clear removes the value and revalidates before returning.
func (v *OptionalValidated[T]) Clear() {
	var zero T
	v.value, v.present = zero, false
	v.revalidate()
}

// Required returns the container's requirement policy.
func (v *OptionalValidated[T]) Required() Requirement {
	return v.required
}

// Errors returns the failures for the current value, in rule order.
func (v *OptionalValidated[T]) Errors() ValidationErrors {
	return slices.Clone(v.errors)
}

// IsValid reports whether the current state passes.
func (v *OptionalValidated[T]) IsValid() bool {
	return len(v.errors) == 0
}

// Validate checks value, nil meaning absent, without storing it.
func (v *OptionalValidated[T]) Validate(value *T) ValidationErrors {
	if value == nil {
		var zero T
		return v.validate(zero, false)
	}
	return v.validate(*value, true)
}

// Validators returns a copy of the container's rules.
func (v *OptionalValidated[T]) Validators() []AnyValidator[T] {
	return slices.Clone(v.validators)
}

// WithLogger enables a debug record on every revalidation.
func (v *OptionalValidated[T]) WithLogger(l *slog.Logger) *OptionalValidated[T] {
	v.logger = l
	return v
}

// Transform sets a normaliser applied by Set before storing a value. A
// present value is normalised and revalidated immediately.
func (v *OptionalValidated[T]) Transform(f func(T) T) *OptionalValidated[T] {
	v.transform = f
	if f != nil && v.present {
		v.value = f(v.value)
		v.revalidate()
	}
	return v
}

// OnChange registers f to be called, after revalidation, every time the
// value is set or cleared. f receives nil when the value is absent.
func (v *OptionalValidated[T]) OnChange(f func(value *T, errs ValidationErrors)) *OptionalValidated[T] {
	v.observers = append(v.observers, f)
	return v
}

// Describe implements [Describer]. A required property is added to the
// parent's required list; an optional one is marked nullable.
func (v *OptionalValidated[T]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if v.required == Required {
		if parent != nil && !slices.Contains(parent.Required, name) {
			parent.Required = append(parent.Required, name)
		}
	} else {
		ref.Value.Nullable = true
	}
	for _, r := range v.validators {
		if err := r.Describe(name, parent, ref); err != nil {
			return err
		}
	}
	return nil
}

func (v *OptionalValidated[T]) validate(value T, present bool) ValidationErrors {
	if present {
		return Validate(value, v.validators...)
	}
	if v.required == Required {
		return ValidationErrors{ErrRequired}
	}
	return nil
}

func (v *OptionalValidated[T]) revalidate() {
	v.errors = v.validate(v.value, v.present)
	logRevalidated(v.logger, v.errors)
	for _, f := range v.observers {
		var p *T
		if v.present {
			value := v.value
			p = &value
		}
		f(p, slices.Clone(v.errors))
	}
}
