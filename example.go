package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Example returns a documentation-only rule that sets the schema example.
func Example[T any](ex T) AnyValidator[T] {
	return Erase[T](docRule[T]{describe: func(_ *openapi3.Schema, ref *openapi3.SchemaRef) {
		ref.Value.Example = ex
	}})
}
