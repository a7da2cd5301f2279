package transform

import (
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/text/cases"
)

// Func normalises a string.
type Func func(string) string

// TrimSpace removes leading and trailing white space.
func TrimSpace(s string) string {
	return strings.TrimSpace(s)
}

// ToLower maps every letter to lower case.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// Fold applies Unicode case folding, which is better than ToLower for
// caseless comparison ("Straße" and "STRASSE" fold to the same string).
func Fold(s string) string {
	return cases.Fold().String(s)
}

// StripLow returns a Func that removes control characters. New lines and
// carriage returns are kept when keepNewLines is true.
func StripLow(keepNewLines bool) Func {
	return func(s string) string {
		return govalidator.StripLow(s, keepNewLines)
	}
}

// WhiteList returns a Func that removes every character not in chars.
// chars is used inside a regular expression character class, so ranges
// such as "a-z0-9" work.
func WhiteList(chars string) Func {
	return func(s string) string {
		return govalidator.WhiteList(s, chars)
	}
}

// Chain runs fns in order.
func Chain(fns ...Func) Func {
	return func(s string) string {
		for _, f := range fns {
			s = f(s)
		}
		return s
	}
}
