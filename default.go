package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Default returns a documentation-only rule that sets the schema default.
func Default[T any](def T) AnyValidator[T] {
	return Erase[T](docRule[T]{describe: func(_ *openapi3.Schema, ref *openapi3.SchemaRef) {
		ref.Value.Default = def
	}})
}
