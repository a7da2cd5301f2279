package livestock

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Checker is the read side of a validated field. Both [Validated] and
// [OptionalValidated] implement it.
type Checker interface {
	IsValid() bool
	Errors() ValidationErrors
}

// Collect gathers the errors of named fields. It returns nil when every
// field is valid, otherwise [FieldErrors] holding only the invalid fields.
// Nil entries, including typed nil pointers, are skipped.
func Collect(fields map[string]Checker) error {
	errs := FieldErrors{}
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		c := fields[name]
		if _, isNil := validation.Indirect(c); isNil {
			continue
		}
		if !c.IsValid() {
			errs[name] = c.Errors()
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ozzoBridge is an ozzo validation.Rule that runs a livestock rule. ozzo hands
// rules an untyped, possibly pointer, value; the bridge dereferences it and
// checks its type before delegating.
type ozzoBridge[T any] struct {
	rule AnyValidator[T]
}

// Rule exposes a as an ozzo-validation rule for use with
// validation.ValidateStruct and validation.Field. Nil values are skipped, as
// ozzo rules other than Required do.
func (a AnyValidator[T]) Rule() validation.Rule {
	return ozzoBridge[T]{rule: a}
}

func (b ozzoBridge[T]) Validate(value any) error {
	if v, ok := value.(T); ok {
		return Validate(v, b.rule).Err()
	}
	value, isNil := validation.Indirect(value)
	if isNil {
		return nil
	}
	v, ok := value.(T)
	if !ok {
		var zero T
		return Errorf("expected %T, got %T", zero, value)
	}
	return Validate(v, b.rule).Err()
}

// FromRule adopts an ozzo-validation rule, such as the rules of its "is"
// package, as a livestock rule. The ozzo error message becomes the
// ValidationError message. Errors ozzo flags as internal are programming
// errors and panic.
func FromRule[T any](r validation.Rule) AnyValidator[T] {
	return Func(func(value T) error {
		err := r.Validate(value)
		if err == nil {
			return nil
		}
		var ie validation.InternalError
		if errors.As(err, &ie) && ie.InternalError() != nil {
			panic(fmt.Errorf("livestock: ozzo rule failed: %w", ie.InternalError()))
		}
		return NewValidationError(err.Error())
	})
}
