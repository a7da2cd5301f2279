package openapi

import (
	"context"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Handler returns an http.Handler that serves doc as JSON. The document is
// validated and encoded once, when the handler is built.
//
//	http.Handle("GET /openapi.json", openapi.HandlerMust(doc))
func Handler(doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	body, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", jsonContent)
		_, _ = w.Write(body)
	}), nil
}

// HandlerMust is like [Handler] but panics on error.
func HandlerMust(doc *openapi3.T) http.Handler {
	h, err := Handler(doc)
	if err != nil {
		panic(err)
	}
	return h
}
