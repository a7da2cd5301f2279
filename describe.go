package livestock

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// Description returns a documentation-only rule that appends desc to the
// schema description.
func Description[T any](desc string) AnyValidator[T] {
	return Erase[T](docRule[T]{describe: func(_ *openapi3.Schema, ref *openapi3.SchemaRef) {
		appendDescription(ref, desc)
	}})
}
