package livestock

import (
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
)

// MultipleRule runs an ordered list of rules against one value and reports
// every failure. Use [Multiple] to build one.
type MultipleRule[T any] struct {
	validators []AnyValidator[T]
}

// Multiple groups validators into a single reusable rule. Unlike a plain
// rule it can fail with several errors, returned as [ValidationErrors] in
// list order.
func Multiple[T any](validators ...AnyValidator[T]) AnyValidator[T] {
	return Erase[T](&MultipleRule[T]{validators: slices.Clone(validators)})
}

// Validate implements [Validator]. It returns nil when every rule passes.
func (m *MultipleRule[T]) Validate(value T) error {
	return Validate(value, m.validators...).Err()
}

// Describe implements [Describer] by describing each grouped rule in turn.
func (m *MultipleRule[T]) Describe(name string, parent *openapi3.Schema, ref *openapi3.SchemaRef) error {
	for _, v := range m.validators {
		if err := v.Describe(name, parent, ref); err != nil {
			return err
		}
	}
	return nil
}
