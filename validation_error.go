package livestock

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError describes why a value failed a single rule.
// Two errors are equal when their messages are equal.
type ValidationError struct {
	Message string `json:"message"`
}

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(message string) ValidationError {
	return ValidationError{Message: message}
}

// Errorf formats a ValidationError message according to a format specifier.
func Errorf(format string, args ...any) ValidationError {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors is an ordered list of rule failures for one value.
type ValidationErrors []ValidationError

func (es ValidationErrors) Error() string {
	return strings.Join(es.Messages(), "; ")
}

// Messages returns the message of every error in order.
func (es ValidationErrors) Messages() []string {
	if len(es) == 0 {
		return nil
	}
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Message
	}
	return msgs
}

// MarshalJSON encodes es as an array of messages.
func (es ValidationErrors) MarshalJSON() ([]byte, error) {
	msgs := es.Messages()
	if msgs == nil {
		msgs = []string{}
	}
	return json.Marshal(msgs)
}

// Err returns es as an error, or nil when es is empty.
func (es ValidationErrors) Err() error {
	if len(es) == 0 {
		return nil
	}
	return es
}

// FieldErrors maps field names to their validation errors. It is an alias for
// [validation.Errors] from ozzo-validation, so it renders as
// "name: message; other: message." and marshals to a JSON object.
type FieldErrors = validation.Errors

// ErrContract is wrapped by the panic raised when a rule returns an error that
// is neither a ValidationError nor ValidationErrors.
var ErrContract = errors.New("livestock: rule returned an error outside the ValidationError contract")

// appendResult appends the outcome of one rule invocation to es.
// A foreign error type is a bug in the rule and panics.
func appendResult(es ValidationErrors, err error) ValidationErrors {
	switch e := err.(type) {
	case nil:
		return es
	case ValidationError:
		return append(es, e)
	case *ValidationError:
		if e == nil {
			return es
		}
		return append(es, *e)
	case ValidationErrors:
		return append(es, e...)
	default:
		panic(fmt.Errorf("%w: %T: %w", ErrContract, err, err))
	}
}
