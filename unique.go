package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

type uniqueRule[E comparable] struct{}

func (r uniqueRule[E]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.UniqueItems = true
	return nil
}

// AllUnique returns a rule that fails when the collection holds the same
// element more than once.
func AllUnique[E comparable]() AnyValidator[[]E] {
	return Erase[[]E](uniqueRule[E]{})
}

func (r uniqueRule[E]) Validate(value []E) error {
	seen := make(map[E]struct{}, len(value))
	for _, e := range value {
		if _, ok := seen[e]; ok {
			return NewValidationError("Collection contains duplicate elements")
		}
		seen[e] = struct{}{}
	}
	return nil
}
