package livestock

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// tagValidator is the shared go-playground validator with English messages.
type tagValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var sharedTagValidator = sync.OnceValues(func() (*tagValidator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, errors.New("livestock: english translator not found")
	}
	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	return &tagValidator{validate: validate, translator: enTrans}, nil
})

// tagFormats maps validator tags onto OpenAPI string formats.
var tagFormats = map[string]string{
	"email":    "email",
	"uuid":     "uuid",
	"uuid4":    "uuid",
	"url":      "uri",
	"uri":      "uri",
	"ipv4":     "ipv4",
	"ipv6":     "ipv6",
	"hostname": "hostname",
	"datetime": "date-time",
}

type tagRule[T any] struct {
	tv  *tagValidator
	tag string
}

// FromTag adopts a go-playground/validator tag, such as "uuid4" or
// "hexcolor|rgb", as a livestock rule. The validator's English translation
// becomes the ValidationError message. An unknown tag panics on first use.
func FromTag[T any](tag string) AnyValidator[T] {
	tv, err := sharedTagValidator()
	if err != nil {
		panic(err)
	}
	return Erase[T](&tagRule[T]{tv: tv, tag: tag})
}

func (r *tagRule[T]) Validate(value T) error {
	err := r.tv.validate.Var(value, r.tag)
	if err == nil {
		return nil
	}
	var fes validator.ValidationErrors
	if !errors.As(err, &fes) || len(fes) == 0 {
		panic(fmt.Errorf("livestock: tag %q failed: %w", r.tag, err))
	}
	msg := strings.TrimSpace(fes[0].Translate(r.tv.translator))
	if fes[0].Field() == "" {
		msg = "Value " + msg
	}
	return NewValidationError(msg)
}

// Describe sets the schema format for tags with an OpenAPI equivalent and
// otherwise names the tag in the description.
func (r *tagRule[T]) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if f, ok := tagFormats[r.tag]; ok {
		ref.Value.Format = f
		return nil
	}
	appendDescription(ref, "validate: "+r.tag)
	return nil
}
