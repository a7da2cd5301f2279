package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Integer is satisfied by every integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is satisfied by every integer and floating-point type.
type Number interface {
	Integer | ~float32 | ~float64
}

type signRule[T Number] struct {
	positive bool
}

// IsPositive returns a rule that passes when the value is greater than zero.
func IsPositive[T Number]() AnyValidator[T] {
	return Erase[T](signRule[T]{positive: true})
}

// IsNegative returns a rule that passes when the value is less than zero.
func IsNegative[T Number]() AnyValidator[T] {
	return Erase[T](signRule[T]{positive: false})
}

func (r signRule[T]) Validate(value T) error {
	var zero T
	if r.positive {
		if value > zero {
			return nil
		}
		return NewValidationError("Number is not positive")
	}
	if value < zero {
		return nil
	}
	return NewValidationError("Number is not negative")
}

func (r signRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.positive {
		appendDescription(ref, "greater than 0")
	} else {
		appendDescription(ref, "less than 0")
	}
	return nil
}

type multipleOfRule[T Integer] struct {
	divisor T
	message string
}

// IsMultipleOf returns a rule that passes when value % d == 0. Zero is the
// only multiple of a zero divisor.
func IsMultipleOf[T Integer](d T) AnyValidator[T] {
	return Erase[T](multipleOfRule[T]{d, Errorf("Value is not a multiple of %v", d).Message})
}

// IsEven returns a rule that passes for even integers.
func IsEven[T Integer]() AnyValidator[T] {
	return Erase[T](multipleOfRule[T]{2, "Value is not even"})
}

// IsOdd returns a rule that passes for odd integers.
func IsOdd[T Integer]() AnyValidator[T] {
	return Func(func(value T) error {
		if value%2 != 0 {
			return nil
		}
		return NewValidationError("Value is not odd")
	})
}

func (r multipleOfRule[T]) Validate(value T) error {
	if r.divisor == 0 {
		if value == 0 {
			return nil
		}
	} else if value%r.divisor == 0 {
		return nil
	}
	return NewValidationError(r.message)
}

func (r multipleOfRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.divisor == 0 {
		return nil
	}
	d := float64(r.divisor)
	ref.Value.MultipleOf = &d
	return nil
}
