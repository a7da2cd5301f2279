package livestock

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
)

type stringRule struct {
	check   func(string) bool
	message func(string) string
	desc    func(ref *openapi3.SchemaRef)
}

func (r stringRule) Validate(value string) error {
	if r.check(value) {
		return nil
	}
	return NewValidationError(r.message(value))
}

func (r stringRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if r.desc != nil {
		r.desc(ref)
	}
	return nil
}

// NewStringRule returns a string rule that fails with message when check
// returns false. message is also used as the schema description.
func NewStringRule(check func(string) bool, message string) AnyValidator[string] {
	return Erase[string](stringRule{
		check:   check,
		message: func(string) string { return message },
		desc:    func(ref *openapi3.SchemaRef) { appendDescription(ref, message) },
	})
}

// IsNotEmpty returns a rule that fails for the empty string.
func IsNotEmpty() AnyValidator[string] {
	return Erase[string](stringRule{
		check:   func(s string) bool { return s != "" },
		message: func(string) string { return "Value is empty" },
		desc: func(ref *openapi3.SchemaRef) {
			if ref.Value.MinLength < 1 {
				ref.Value.MinLength = 1
			}
		},
	})
}

// Matches returns a rule that passes when the whole string matches pattern.
// It panics if pattern does not compile.
func Matches(pattern string) AnyValidator[string] {
	return MatchesRegexp(regexp.MustCompile(pattern))
}

// MatchesRegexp is like [Matches] but takes a compiled expression.
func MatchesRegexp(re *regexp.Regexp) AnyValidator[string] {
	pattern := re.String()
	whole := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return Erase[string](stringRule{
		check:   whole.MatchString,
		message: func(s string) string { return s + " does not match " + pattern },
		desc:    func(ref *openapi3.SchemaRef) { ref.Value.Pattern = whole.String() },
	})
}

// Contains returns a case-sensitive rule that passes when the string
// contains sub.
func Contains(sub string) AnyValidator[string] {
	return Erase[string](stringRule{
		check:   func(s string) bool { return strings.Contains(s, sub) },
		message: func(string) string { return "Value does not contain '" + sub + "'" },
		desc:    func(ref *openapi3.SchemaRef) { appendDescription(ref, "contains '"+sub+"'") },
	})
}

// ContainsFold is like [Contains] but compares under Unicode case folding.
func ContainsFold(sub string) AnyValidator[string] {
	return Erase[string](stringRule{
		check: func(s string) bool {
			c := cases.Fold()
			return strings.Contains(c.String(s), c.String(sub))
		},
		message: func(string) string { return "Value does not contain '" + sub + "' (case insensitive)" },
		desc:    func(ref *openapi3.SchemaRef) { appendDescription(ref, "contains '"+sub+"' (case insensitive)") },
	})
}

// IsAlphaNumeric returns a rule that passes when every character is a letter
// or a number. A character is a grapheme cluster, classified by its first
// rune, so combining marks ride along with their base. The empty string
// passes.
func IsAlphaNumeric() AnyValidator[string] {
	return Erase[string](stringRule{
		check: func(s string) bool {
			g := uniseg.NewGraphemes(s)
			for g.Next() {
				r := g.Runes()[0]
				if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
					return false
				}
			}
			return true
		},
		message: func(string) string { return "Value contains non-alphanumeric characters" },
		desc:    func(ref *openapi3.SchemaRef) { appendDescription(ref, "letters and numbers only") },
	})
}

var emailRegexp = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,64}$`)

// IsEmailAddress returns a rule that passes for strings shaped like an email
// address.
func IsEmailAddress() AnyValidator[string] {
	return Erase[string](stringRule{
		check:   emailRegexp.MatchString,
		message: func(s string) string { return s + " is not an email" },
		desc:    func(ref *openapi3.SchemaRef) { ref.Value.Format = "email" },
	})
}
