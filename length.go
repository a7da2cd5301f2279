package livestock

import (
	"cmp"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rivo/uniseg"
)

// comparison is the operator a bound rule requires to hold.
type comparison int

const (
	lessThan comparison = iota
	lessThanOrEqual
	greaterThan
	greaterThanOrEqual
)

func holds[T cmp.Ordered](c comparison, v, bound T) bool {
	switch c {
	case lessThan:
		return v < bound
	case lessThanOrEqual:
		return v <= bound
	case greaterThan:
		return v > bound
	default:
		return v >= bound
	}
}

// negated is the symbol describing a value that failed c.
func (c comparison) negated() string {
	switch c {
	case lessThan:
		return ">="
	case lessThanOrEqual:
		return ">"
	case greaterThan:
		return "<="
	default:
		return "<"
	}
}

func (c comparison) String() string {
	switch c {
	case lessThan:
		return "less than"
	case lessThanOrEqual:
		return "less than or equal to"
	case greaterThan:
		return "greater than"
	default:
		return "greater than or equal to"
	}
}

// lengthBounds converts a count comparison into inclusive schema limits.
// A nil result means the side is unconstrained.
func lengthBounds(c comparison, bound int) (lo uint64, hi *uint64) {
	switch c {
	case lessThan:
		if bound > 0 {
			h := uint64(bound - 1)
			hi = &h
		}
	case lessThanOrEqual:
		if bound >= 0 {
			h := uint64(bound)
			hi = &h
		}
	case greaterThan:
		if bound >= 0 {
			lo = uint64(bound + 1)
		}
	default:
		if bound > 0 {
			lo = uint64(bound)
		}
	}
	return lo, hi
}

type lengthRule struct {
	cmp   comparison
	bound int
}

func (r lengthRule) Validate(value string) error {
	if holds(r.cmp, uniseg.GraphemeClusterCount(value), r.bound) {
		return nil
	}
	return Errorf("%s is %s %d characters", value, r.cmp.negated(), r.bound)
}

func (r lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	lo, hi := lengthBounds(r.cmp, r.bound)
	if lo > ref.Value.MinLength {
		ref.Value.MinLength = lo
	}
	if hi != nil {
		ref.Value.MaxLength = hi
	}
	return nil
}

// IsLessThan returns a rule that passes when the string has fewer than n characters.
func IsLessThan(n int) AnyValidator[string] {
	return Erase[string](lengthRule{lessThan, n})
}

// IsLessThanOrEqualTo returns a rule that passes when the string has at most n characters.
func IsLessThanOrEqualTo(n int) AnyValidator[string] {
	return Erase[string](lengthRule{lessThanOrEqual, n})
}

// IsGreaterThan returns a rule that passes when the string has more than n characters.
func IsGreaterThan(n int) AnyValidator[string] {
	return Erase[string](lengthRule{greaterThan, n})
}

// IsGreaterThanOrEqualTo returns a rule that passes when the string has at least n characters.
func IsGreaterThanOrEqualTo(n int) AnyValidator[string] {
	return Erase[string](lengthRule{greaterThanOrEqual, n})
}

type lengthBetweenRule struct {
	min, max int
}

// IsLengthBetween returns a rule that checks a string's character count is
// within [lo, hi]. The lower bound is checked first.
func IsLengthBetween(lo, hi int) AnyValidator[string] {
	return Erase[string](lengthBetweenRule{lo, hi})
}

func (r lengthBetweenRule) Validate(value string) error {
	n := uniseg.GraphemeClusterCount(value)
	if n < r.min {
		return Errorf("%s is < %d characters", value, r.min)
	}
	if n > r.max {
		return Errorf("%s is > %d characters", value, r.max)
	}
	return nil
}

func (r lengthBetweenRule) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if err := (lengthRule{greaterThanOrEqual, r.min}).Describe(name, parent, ref); err != nil {
		return err
	}
	return lengthRule{lessThanOrEqual, r.max}.Describe(name, parent, ref)
}
