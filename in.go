package livestock

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// IsOneOf returns a rule that passes when the value equals one of values.
func IsOneOf[T comparable](values ...T) AnyValidator[T] {
	want := make([]string, len(values))
	for i := range values {
		want[i] = fmt.Sprintf("'%v'", values[i])
	}
	return Erase[T](&inRule[T]{
		values:  slices.Clone(values),
		message: "Value must be one of " + strings.Join(want, ", "),
	})
}

// inRule validates that a value can be found in the given list of values.
type inRule[T comparable] struct {
	values  []T
	message string
}

func (r *inRule[T]) Validate(value T) error {
	if slices.Contains(r.values, value) {
		return nil
	}
	return NewValidationError(r.message)
}

func (r *inRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	enum := make([]any, len(r.values))
	for i, v := range r.values {
		enum[i] = v
	}
	ref.Value.Enum = enum
	return nil
}
