package livestock

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// WhenRule applies a group of rules only to values that satisfy a condition.
// Use [When] to create one.
type WhenRule[T any] struct {
	desc      string
	condition func(T) bool
	rules     []AnyValidator[T]
}

// When returns a rule that runs validators, aggregated like [Multiple], only
// when condition(value) is true. desc names the condition in the schema.
func When[T any](desc string, condition func(value T) bool, validators ...AnyValidator[T]) AnyValidator[T] {
	return Erase[T](&WhenRule[T]{desc: desc, condition: condition, rules: slices.Clone(validators)})
}

// Validate implements [Validator].
func (r *WhenRule[T]) Validate(value T) error {
	if !r.condition(value) {
		return nil
	}
	return Validate(value, r.rules...).Err()
}

// describeRules calls Describe on each rule using a temporary schema/ref,
// then extracts a human-readable summary of the schema mutations.
func describeRules[T any](name string, rules []AnyValidator[T]) (string, error) {
	if len(rules) == 0 {
		return "", nil
	}

	schema := openapi3.NewSchema()
	ref := &openapi3.SchemaRef{Value: openapi3.NewSchema()}

	for _, r := range rules {
		if err := r.Describe(name, schema, ref); err != nil {
			return "", err
		}
	}

	var parts []string

	if ref.Value.Description != "" {
		parts = append(parts, ref.Value.Description)
	}
	if ref.Value.Min != nil {
		parts = append(parts, fmt.Sprintf("min %g", *ref.Value.Min))
	}
	if ref.Value.Max != nil {
		parts = append(parts, fmt.Sprintf("max %g", *ref.Value.Max))
	}
	if ref.Value.MinLength > 0 {
		parts = append(parts, fmt.Sprintf("min length %d", ref.Value.MinLength))
	}
	if ref.Value.MaxLength != nil {
		parts = append(parts, fmt.Sprintf("max length %d", *ref.Value.MaxLength))
	}
	if ref.Value.Pattern != "" {
		parts = append(parts, "pattern "+ref.Value.Pattern)
	}
	if ref.Value.Format != "" {
		parts = append(parts, "format "+ref.Value.Format)
	}
	if len(ref.Value.Enum) > 0 {
		vals := make([]string, len(ref.Value.Enum))
		for i, v := range ref.Value.Enum {
			vals[i] = fmt.Sprint(v)
		}
		parts = append(parts, "one of ["+strings.Join(vals, ", ")+"]")
	}
	if ref.Value.UniqueItems {
		parts = append(parts, "unique")
	}

	return strings.Join(parts, ", "), nil
}

// Describe implements [Describer] by appending a human-readable summary of
// the conditional rules to the schema description.
func (r *WhenRule[T]) Describe(name string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	desc, err := describeRules(name, r.rules)
	if err != nil || desc == "" {
		return err
	}
	if r.desc != "" {
		appendDescription(ref, fmt.Sprintf("when %s: %s", r.desc, desc))
	} else {
		appendDescription(ref, desc)
	}
	return nil
}
