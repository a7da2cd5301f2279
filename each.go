package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// AllPass returns a rule that applies rule to each element in order. It stops
// at the first failing element and reports that element's failure alone, so
// the result holds at most one error.
func AllPass[E any](rule AnyValidator[E]) AnyValidator[[]E] {
	return Erase[[]E](&eachRule[E]{rule})
}

type eachRule[E any] struct {
	rule AnyValidator[E]
}

func (r *eachRule[E]) Validate(value []E) error {
	for _, elem := range value {
		if errs := appendResult(nil, r.rule.Validate(elem)); len(errs) > 0 {
			return Errorf("Element validation failed: %s", errs.Error())
		}
	}
	return nil
}

// Describe documents the element rule on the items schema when there is one.
func (r *eachRule[E]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Items == nil {
		ref.Value.Items = openapi3.NewSchemaRef("", openapi3.NewSchema())
	}
	return r.rule.Describe(name, parent, ref.Value.Items)
}
