// Package livestock provides composable, type-safe value validation for
// field-level checks in data models.
//
// Rules are values of type [AnyValidator], built by the rule families in this
// package or from your own [Validator] implementations with [Erase]:
//
//	rules := []livestock.AnyValidator[string]{
//	    livestock.IsNotEmpty(),
//	    livestock.IsLessThan(50),
//	    livestock.IsEmailAddress(),
//	}
//
// Check a value once with [Validate], or keep it in a [Validated] container
// that revalidates on every change:
//
//	email := livestock.NewValidated("bob@example.com", rules...)
//	email.Set("")
//	email.IsValid()           // false
//	email.Errors()[0].Message // "Value is empty"
//
// [OptionalValidated] adds a [Required] / [NotRequired] policy for absent
// values. [Multiple] groups rules into one reusable rule, and [Collect] turns
// a set of named containers into ozzo-validation field errors.
//
// Every rule also documents itself on an OpenAPI schema through [Describer].
//
// Sub-packages:
//   - openapi – OpenAPI object schemas built from validated fields
//   - transform – string normalisers applied before validation
package livestock
