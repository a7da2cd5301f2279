package livestock

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// Validator is implemented by every rule. Validate returns nil when value
// passes, or exactly one [ValidationError] describing why it failed.
type Validator[T any] interface {
	Validate(value T) error
}

// ValidatorFunc adapts a plain function to the [Validator] interface.
type ValidatorFunc[T any] func(value T) error

// Validate calls f(value).
func (f ValidatorFunc[T]) Validate(value T) error {
	return f(value)
}

// AnyValidator hides the concrete type of a rule behind a single captured
// function so rules of different kinds can share one []AnyValidator[T].
// The zero value passes every value.
type AnyValidator[T any] struct {
	validate func(T) error
	describe func(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error
}

// Erase wraps v. When v also implements [Describer] its schema description is
// kept alongside the validation behaviour. Erase panics if v is nil.
func Erase[T any](v Validator[T]) AnyValidator[T] {
	if v == nil {
		panic("livestock: Erase called with a nil Validator")
	}
	a := AnyValidator[T]{validate: v.Validate}
	if d, ok := v.(Describer); ok {
		a.describe = d.Describe
	}
	return a
}

// Func is shorthand for Erase(ValidatorFunc[T](f)).
func Func[T any](f func(value T) error) AnyValidator[T] {
	if f == nil {
		panic("livestock: Func called with a nil function")
	}
	return AnyValidator[T]{validate: f}
}

// Validate runs the wrapped rule against value.
func (a AnyValidator[T]) Validate(value T) error {
	if a.validate == nil {
		return nil
	}
	return a.validate(value)
}

// Describe implements [Describer]. Rules without a description leave the
// schema untouched.
func (a AnyValidator[T]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if a.describe == nil {
		return nil
	}
	return a.describe(name, parent, ref)
}

// WithDescription returns a copy of a that, in addition to its own schema
// description, appends desc to the property description.
func (a AnyValidator[T]) WithDescription(desc string) AnyValidator[T] {
	inner := a.describe
	a.describe = func(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
		if inner != nil {
			if err := inner(name, parent, ref); err != nil {
				return err
			}
		}
		appendDescription(ref, desc)
		return nil
	}
	return a
}

// Validate runs every validator against value in order and returns the
// failures in the same order. The result is nil when value passes them all.
func Validate[T any](value T, validators ...AnyValidator[T]) ValidationErrors {
	var errs ValidationErrors
	for _, v := range validators {
		errs = appendResult(errs, v.Validate(value))
	}
	return errs
}

// appendDescription adds desc to the schema description, separated by a
// space from anything already there.
func appendDescription(ref *openapi3.SchemaRef, desc string) {
	if desc == "" {
		return
	}
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += desc
}
