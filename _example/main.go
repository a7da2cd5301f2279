// Command example serves a sign-up endpoint validated with livestock, along
// with the OpenAPI document describing it.
//
// Run:
//
//	go run ./_example
//
// Then POST to http://localhost:8080/signups or fetch
// http://localhost:8080/openapi.json.
package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/getkin/kin-openapi/openapi3"

	v "github.com/jpenwith/livestock"
	"github.com/jpenwith/livestock/openapi"
	"github.com/jpenwith/livestock/transform"
)

// SignupRequest is the JSON body accepted by POST /signups.
type SignupRequest struct {
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Nickname *string  `json:"nickname"`
	Age      *int     `json:"age"`
	Tags     []string `json:"tags"`
}

// SignupForm holds the validated state of a sign-up.
type SignupForm struct {
	Email    *v.Validated[string]
	Password *v.Validated[string]
	Nickname *v.OptionalValidated[string]
	Age      *v.OptionalValidated[int]
	Tags     *v.Validated[[]string]
}

func NewSignupForm(logger *slog.Logger) *SignupForm {
	return &SignupForm{
		Email: v.NewValidated("",
			v.IsNotEmpty(),
			v.IsLessThanOrEqualTo(254),
			v.IsEmailAddress(),
			v.Example("joe@example.com"),
		).Transform(transform.Chain(transform.TrimSpace, transform.ToLower)).WithLogger(logger),
		Password: v.NewValidated("",
			v.IsGreaterThanOrEqualTo(12),
			v.Matches(`.*\d.*`).WithDescription("at least one digit"),
		).WithLogger(logger),
		Nickname: v.NewOptionalValidated[string](nil, v.NotRequired,
			v.IsLengthBetween(2, 20),
			v.IsAlphaNumeric(),
		).Transform(transform.TrimSpace).WithLogger(logger),
		Age: v.NewOptionalValidated[int](nil, v.Required,
			v.IsGreaterThanOrEqualToValue(18),
			v.IsLessThanOrEqualToValue(130),
		).WithLogger(logger),
		Tags: v.NewValidated[[]string](nil,
			v.IsCountLessThanOrEqualTo[string](5),
			v.AllUnique[string](),
			v.AllPass(v.IsOneOf("news", "offers", "updates")),
		).WithLogger(logger),
	}
}

// Load copies req into the form, revalidating every field.
func (f *SignupForm) Load(req SignupRequest) {
	f.Email.Set(req.Email)
	f.Password.Set(req.Password)
	if req.Nickname != nil {
		f.Nickname.Set(*req.Nickname)
	} else {
		f.Nickname.Clear()
	}
	if req.Age != nil {
		f.Age.Set(*req.Age)
	} else {
		f.Age.Clear()
	}
	f.Tags.Set(req.Tags)
}

// Validate returns the errors of every invalid field, or nil.
func (f *SignupForm) Validate() error {
	return v.Collect(map[string]v.Checker{
		"email":    f.Email,
		"password": f.Password,
		"nickname": f.Nickname,
		"age":      f.Age,
		"tags":     f.Tags,
	})
}

// Schema describes the request body accepted by the form.
func (f *SignupForm) Schema() (*openapi3.SchemaRef, error) {
	return openapi.Object(
		openapi.Field("email", f.Email),
		openapi.Field("password", f.Password),
		openapi.OptionalField("nickname", f.Nickname),
		openapi.OptionalField("age", f.Age),
		openapi.Field("tags", f.Tags),
	)
}

// ErrorResponse is the body of a 422 response.
type ErrorResponse struct {
	Errors v.FieldErrors `json:"errors"`
}

// Document builds the OpenAPI document for the service.
func Document() (*openapi3.T, error) {
	body, err := NewSignupForm(nil).Schema()
	if err != nil {
		return nil, err
	}
	errBody, err := openapi.Object(
		openapi.Rules("errors", v.Description[map[string][]string]("Messages keyed by field name.")),
	)
	if err != nil {
		return nil, err
	}

	doc := openapi.DocBase("Sign-up API", "Demonstrates livestock", "0.1.0")
	openapi.Post(doc, "/signups", "createSignup", openapi.Endpoint{
		Summary: "Create a sign-up",
		Request: body,
		Responses: map[string]openapi.Response{
			"201": {Desc: "Created", Bodies: []*openapi3.SchemaRef{body}},
			"422": {Desc: "Validation failed", Bodies: []*openapi3.SchemaRef{errBody}},
		},
	})
	return doc, nil
}

// HandleSignup decodes, validates and echoes a sign-up.
func HandleSignup(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON body", http.StatusBadRequest)
			return
		}

		form := NewSignupForm(logger)
		form.Load(req)
		if err := form.Validate(); err != nil {
			var fe v.FieldErrors
			if !errors.As(err, &fe) {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Errors: fe})
			return
		}

		req.Email = form.Email.Value()
		if nick, ok := form.Nickname.Value(); ok {
			req.Nickname = &nick
		}
		writeJSON(w, http.StatusCreated, req)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	doc, err := Document()
	if err != nil {
		logger.Error("build openapi document", slog.Any("error", err))
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /signups", HandleSignup(logger))
	mux.Handle("GET /openapi.json", openapi.HandlerMust(doc))

	logger.Info("listening", slog.String("addr", ":8080"))
	if err := http.ListenAndServe(":8080", mux); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
