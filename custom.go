package livestock

import (
	"errors"
)

type custom[T any] struct {
	f func(T) error
}

// Custom returns a rule backed by f. Any error f returns becomes the
// failure: a ValidationError or ValidationErrors is kept as is, other errors
// are converted to a ValidationError carrying the same message.
func Custom[T any](f func(value T) error) AnyValidator[T] {
	if f == nil {
		panic("livestock: Custom called with a nil function")
	}
	return Erase[T](custom[T]{f: f})
}

func (r custom[T]) Validate(value T) error {
	err := r.f(value)
	if err == nil {
		return nil
	}
	if p, ok := err.(*ValidationError); ok {
		if p == nil {
			return nil
		}
		return *p
	}
	var ve ValidationError
	var ves ValidationErrors
	switch {
	case errors.As(err, &ves):
		return ves
	case errors.As(err, &ve):
		return ve
	default:
		return NewValidationError(err.Error())
	}
}
