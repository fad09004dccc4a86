// Package validation provides reusable jellydator/validation rules for request payloads.
package validation

import (
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/customers/internal/errors"
)

// WrapValidationError turns a validation failure into an ErrInvalidInput so the HTTP
// layer maps it to 422. Nil stays nil.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank rejects strings that are empty after trimming whitespace.
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// NoWhitespace rejects leading or trailing whitespace. Inner spaces are allowed.
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NoControlChars rejects strings containing control characters such as newlines or NUL.
var NoControlChars = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.IndexFunc(s, unicode.IsControl) == -1
	},
	validation.NewError("validation_no_control_chars", "must not contain control characters"),
)
