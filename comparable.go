package livestock

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/getkin/kin-openapi/openapi3"
)

type thresholdRule[T cmp.Ordered] struct {
	cmp       comparison
	threshold T
}

// IsGreaterThanValue returns a rule that passes when the value is strictly greater than lo.
func IsGreaterThanValue[T cmp.Ordered](lo T) AnyValidator[T] {
	return Erase[T](thresholdRule[T]{greaterThan, lo})
}

// IsGreaterThanOrEqualToValue returns a rule that passes when the value is at least lo.
func IsGreaterThanOrEqualToValue[T cmp.Ordered](lo T) AnyValidator[T] {
	return Erase[T](thresholdRule[T]{greaterThanOrEqual, lo})
}

// IsLessThanValue returns a rule that passes when the value is strictly less than hi.
func IsLessThanValue[T cmp.Ordered](hi T) AnyValidator[T] {
	return Erase[T](thresholdRule[T]{lessThan, hi})
}

// IsLessThanOrEqualToValue returns a rule that passes when the value is at most hi.
func IsLessThanOrEqualToValue[T cmp.Ordered](hi T) AnyValidator[T] {
	return Erase[T](thresholdRule[T]{lessThanOrEqual, hi})
}

func (r thresholdRule[T]) Validate(value T) error {
	if holds(r.cmp, value, r.threshold) {
		return nil
	}
	return Errorf("Value is not %s %v", r.cmp, r.threshold)
}

// Describe sets minimum or maximum for inclusive numeric bounds. Strict bounds
// and non-numeric thresholds are written into the description.
func (r thresholdRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	f, err := getFloat(r.threshold)
	switch {
	case err == nil && r.cmp == greaterThanOrEqual:
		ref.Value.Min = &f
	case err == nil && r.cmp == lessThanOrEqual:
		ref.Value.Max = &f
	default:
		appendDescription(ref, fmt.Sprintf("%s %v", r.cmp, r.threshold))
	}
	return nil
}

type betweenRule[T cmp.Ordered] struct {
	min, max T
}

// IsBetween returns a rule that passes when lo <= value <= hi. The lower
// bound is checked first.
func IsBetween[T cmp.Ordered](lo, hi T) AnyValidator[T] {
	return Erase[T](betweenRule[T]{lo, hi})
}

func (r betweenRule[T]) Validate(value T) error {
	if value < r.min {
		return Errorf("Value is less than %v", r.min)
	}
	if value > r.max {
		return Errorf("Value is greater than %v", r.max)
	}
	return nil
}

func (r betweenRule[T]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if err := (thresholdRule[T]{greaterThanOrEqual, r.min}).Describe(name, parent, ref); err != nil {
		return err
	}
	return thresholdRule[T]{lessThanOrEqual, r.max}.Describe(name, parent, ref)
}

var floatType = reflect.TypeOf(float64(0))

// getFloat converts numeric kinds to float64. Strings are rejected even
// though reflect can convert some of them.
func getFloat(unk any) (float64, error) {
	v := reflect.Indirect(reflect.ValueOf(unk))
	if v.Kind() == reflect.String || !v.Type().ConvertibleTo(floatType) {
		return 0, fmt.Errorf("cannot convert %v to float64", v.Type())
	}
	return v.Convert(floatType).Float(), nil
}
