package openapi

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

const jsonContent = "application/json"

// Response describes an HTTP response and its possible JSON bodies.
type Response struct {
	Desc   string
	Bodies []*openapi3.SchemaRef
}

// Endpoint describes a single operation for [Get], [Post], [Put], [Patch]
// and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     *openapi3.SchemaRef   // single request body
	Requests    []*openapi3.SchemaRef // alternative request bodies (oneOf)
	Response    *openapi3.SchemaRef   // single 200 response body
	Responses   map[string]Response   // overrides Response when set
}

// content wraps schemas in a JSON media type. More than one schema becomes a
// oneOf.
func content(schemas []*openapi3.SchemaRef) openapi3.Content {
	schema := &openapi3.SchemaRef{Value: &openapi3.Schema{OneOf: schemas}}
	if len(schemas) == 1 {
		schema = schemas[0]
	}
	return openapi3.Content{jsonContent: &openapi3.MediaType{Schema: schema}}
}

// NewRequest builds a JSON request body from one or more schemas.
func NewRequest(schemas ...*openapi3.SchemaRef) (*openapi3.RequestBodyRef, error) {
	if len(schemas) == 0 {
		return nil, errors.New("no schemas given")
	}
	if slicesContainNil(schemas) {
		return nil, errors.New("nil schema given")
	}
	return &openapi3.RequestBodyRef{
		Value: &openapi3.RequestBody{Content: content(schemas)},
	}, nil
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(schemas ...*openapi3.SchemaRef) *openapi3.RequestBodyRef {
	o, err := NewRequest(schemas...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse builds a responses object. Map keys are status codes such as
// "200" or "4xx".
func NewResponse(rs map[string]Response) (*openapi3.Responses, error) {
	if len(rs) == 0 {
		return nil, errors.New("no responses given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(rs))
	for status, r := range rs {
		desc := r.Desc
		resp := &openapi3.Response{Description: &desc}
		if len(r.Bodies) > 0 {
			if slicesContainNil(r.Bodies) {
				return nil, errors.New("nil schema given for status " + status)
			}
			resp.Content = content(r.Bodies)
		}
		opts = append(opts, openapi3.WithName(status, resp))
	}

	return openapi3.NewResponses(opts...), nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(rs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(rs)
	if err != nil {
		panic(err)
	}
	return o
}

func slicesContainNil(schemas []*openapi3.SchemaRef) bool {
	for _, s := range schemas {
		if s == nil {
			return true
		}
	}
	return false
}

// DocBase returns an empty OpenAPI 3.0.3 document.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: &openapi3.Paths{},
	}
}

// AddPath sets the operation for method on path, creating the path item when
// needed.
func AddPath(path, method string, doc *openapi3.T, op *openapi3.Operation) {
	p := doc.Paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	doc.Paths.Set(path, p)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := &openapi3.Operation{
		OperationID: operationID,
		Summary:     ep.Summary,
		Description: ep.Description,
	}

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []*openapi3.SchemaRef{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}
