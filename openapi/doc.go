// Package openapi builds OpenAPI 3 schemas from livestock rules and
// containers, and assembles them into documents.
//
// Build an object schema from the fields of a form with [Object], then
// register it on a document created by [DocBase]:
//
//	schema, err := openapi.Object(
//	    openapi.Field("email", form.Email),
//	    openapi.OptionalField("nickname", form.Nickname),
//	)
//	doc := openapi.DocBase("my-api", "My API", "1.0")
//	openapi.Post(doc, "/signups", "signUp", openapi.Endpoint{
//	    Request: schema,
//	})
package openapi
