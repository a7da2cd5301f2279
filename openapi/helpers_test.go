package openapi_test

import (
	"errors"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
)

var errDescribe = errors.New("describe failed")

type failingDescriber struct{}

func (failingDescriber) Validate(time.Time) error { return nil }

func (failingDescriber) Describe(string, *openapi3.Schema, *openapi3.SchemaRef) error {
	return errDescribe
}
