package livestock

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

type countRule[E any] struct {
	cmp   comparison
	bound int
}

func (r countRule[E]) Validate(value []E) error {
	if holds(r.cmp, len(value), r.bound) {
		return nil
	}
	return Errorf("Collection count %d is %s %d", len(value), r.cmp.negated(), r.bound)
}

func (r countRule[E]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	lo, hi := lengthBounds(r.cmp, r.bound)
	if lo > ref.Value.MinItems {
		ref.Value.MinItems = lo
	}
	if hi != nil {
		ref.Value.MaxItems = hi
	}
	return nil
}

type notEmptySliceRule[E any] struct{}

func (notEmptySliceRule[E]) Validate(value []E) error {
	if len(value) == 0 {
		return NewValidationError("Collection is empty")
	}
	return nil
}

func (notEmptySliceRule[E]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.MinItems < 1 {
		ref.Value.MinItems = 1
	}
	return nil
}

// IsNotEmptySlice returns a rule that fails for an empty collection.
func IsNotEmptySlice[E any]() AnyValidator[[]E] {
	return Erase[[]E](notEmptySliceRule[E]{})
}

// IsCountLessThan returns a rule that passes when the collection has fewer than n elements.
func IsCountLessThan[E any](n int) AnyValidator[[]E] {
	return Erase[[]E](countRule[E]{lessThan, n})
}

// IsCountLessThanOrEqualTo returns a rule that passes when the collection has at most n elements.
func IsCountLessThanOrEqualTo[E any](n int) AnyValidator[[]E] {
	return Erase[[]E](countRule[E]{lessThanOrEqual, n})
}

// IsCountGreaterThan returns a rule that passes when the collection has more than n elements.
func IsCountGreaterThan[E any](n int) AnyValidator[[]E] {
	return Erase[[]E](countRule[E]{greaterThan, n})
}

// IsCountGreaterThanOrEqualTo returns a rule that passes when the collection has at least n elements.
func IsCountGreaterThanOrEqualTo[E any](n int) AnyValidator[[]E] {
	return Erase[[]E](countRule[E]{greaterThanOrEqual, n})
}

type countBetweenRule[E any] struct {
	min, max int
}

// IsCountBetween returns a rule that checks the element count is within
// [lo, hi]. The lower bound is checked first.
func IsCountBetween[E any](lo, hi int) AnyValidator[[]E] {
	return Erase[[]E](countBetweenRule[E]{lo, hi})
}

func (r countBetweenRule[E]) Validate(value []E) error {
	if len(value) < r.min {
		return Errorf("Collection count %d is < %d", len(value), r.min)
	}
	if len(value) > r.max {
		return Errorf("Collection count %d is > %d", len(value), r.max)
	}
	return nil
}

func (r countBetweenRule[E]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if err := (countRule[E]{greaterThanOrEqual, r.min}).Describe(name, parent, ref); err != nil {
		return err
	}
	return countRule[E]{lessThanOrEqual, r.max}.Describe(name, parent, ref)
}

type containsElementRule[E comparable] struct {
	element E
}

// ContainsElement returns a rule that passes when the collection contains element.
func ContainsElement[E comparable](element E) AnyValidator[[]E] {
	return Erase[[]E](containsElementRule[E]{element})
}

func (r containsElementRule[E]) Validate(value []E) error {
	if !slices.Contains(value, r.element) {
		return NewValidationError("Collection does not contain required element")
	}
	return nil
}
