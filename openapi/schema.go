package openapi

import (
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/jpenwith/livestock"
)

// SchemaRef generates the schema of T and lets every validator describe its
// constraints on it.
func SchemaRef[T any](validators ...livestock.AnyValidator[T]) (*openapi3.SchemaRef, error) {
	return describe[T]("", nil, validators)
}

func baseSchema[T any]() (*openapi3.SchemaRef, error) {
	var zero T
	g := openapi3gen.NewGenerator()
	ref, err := g.NewSchemaRefForValue(zero, nil)
	if err != nil {
		return nil, fmt.Errorf("generate schema for %T: %w", zero, err)
	}
	return ref, nil
}

func describe[T any](name string, parent *openapi3.Schema, validators []livestock.AnyValidator[T]) (*openapi3.SchemaRef, error) {
	ref, err := baseSchema[T]()
	if err != nil {
		return nil, err
	}
	for _, v := range validators {
		if err := v.Describe(name, parent, ref); err != nil {
			return nil, fmt.Errorf("describe %q: %w", name, err)
		}
	}
	return ref, nil
}

// Property is a named member of an object schema. Create one with [Field],
// [OptionalField] or [Rules].
type Property struct {
	name  string
	build func(parent *openapi3.Schema) (*openapi3.SchemaRef, error)
}

// Name returns the property name.
func (p Property) Name() string {
	return p.name
}

// Field describes a [livestock.Validated] field. The property is always
// required since the container always holds a value.
func Field[T any](name string, v *livestock.Validated[T]) Property {
	return Property{name: name, build: func(parent *openapi3.Schema) (*openapi3.SchemaRef, error) {
		addRequired(parent, name)
		ref, err := baseSchema[T]()
		if err != nil {
			return nil, err
		}
		if err := v.Describe(name, parent, ref); err != nil {
			return nil, fmt.Errorf("describe %q: %w", name, err)
		}
		return ref, nil
	}}
}

// OptionalField describes a [livestock.OptionalValidated] field. The
// container's requirement decides whether the property is required or
// nullable.
func OptionalField[T any](name string, v *livestock.OptionalValidated[T]) Property {
	return Property{name: name, build: func(parent *openapi3.Schema) (*openapi3.SchemaRef, error) {
		ref, err := baseSchema[T]()
		if err != nil {
			return nil, err
		}
		if err := v.Describe(name, parent, ref); err != nil {
			return nil, fmt.Errorf("describe %q: %w", name, err)
		}
		return ref, nil
	}}
}

// Rules describes a property from bare validators. It is neither required
// nor nullable.
func Rules[T any](name string, validators ...livestock.AnyValidator[T]) Property {
	return Property{name: name, build: func(parent *openapi3.Schema) (*openapi3.SchemaRef, error) {
		return describe(name, parent, validators)
	}}
}

// Object builds an object schema holding props in the order given.
// Duplicate property names are an error.
func Object(props ...Property) (*openapi3.SchemaRef, error) {
	schema := openapi3.NewObjectSchema()
	if schema.Properties == nil {
		schema.Properties = openapi3.Schemas{}
	}
	for _, p := range props {
		if _, ok := schema.Properties[p.name]; ok {
			return nil, fmt.Errorf("duplicate property %q", p.name)
		}
		ref, err := p.build(schema)
		if err != nil {
			return nil, err
		}
		schema.Properties[p.name] = ref
	}
	return openapi3.NewSchemaRef("", schema), nil
}

// ObjectMust is like [Object] but panics on error.
func ObjectMust(props ...Property) *openapi3.SchemaRef {
	ref, err := Object(props...)
	if err != nil {
		panic(err)
	}
	return ref
}

func addRequired(parent *openapi3.Schema, name string) {
	if parent != nil && !slices.Contains(parent.Required, name) {
		parent.Required = append(parent.Required, name)
	}
}
