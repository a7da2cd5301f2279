package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Describer is implemented by rules and containers that can document their
// constraints on an OpenAPI schema. name is the property name, parent the
// enclosing object schema and ref the property's own schema.
type Describer interface {
	Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error
}

// docRule is a rule that never fails and only contributes to the schema.
type docRule[T any] struct {
	describe func(parent *openapi3.Schema, ref *openapi3.SchemaRef)
}

func (r docRule[T]) Validate(T) error {
	return nil
}

func (r docRule[T]) Describe(_ string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	r.describe(parent, ref)
	return nil
}
