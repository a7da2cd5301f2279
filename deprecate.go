package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Deprecated returns a documentation-only rule that marks the property as
// deprecated in the schema.
func Deprecated[T any]() AnyValidator[T] {
	return Erase[T](docRule[T]{describe: func(_ *openapi3.Schema, ref *openapi3.SchemaRef) {
		ref.Value.Deprecated = true
	}})
}
