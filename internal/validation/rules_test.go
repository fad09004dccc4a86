package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/customers/internal/errors"
)

func TestStringRules(t *testing.T) {
	tests := []struct {
		name      string
		rule      interface{ Validate(value interface{}) error }
		input     string
		shouldErr bool
	}{
		{"not blank valid", NotBlank, "Ada", false},
		{"not blank only spaces", NotBlank, "   ", true},
		{"not blank mixed whitespace", NotBlank, " \t\n ", true},
		{"no whitespace valid", NoWhitespace, "Ada", false},
		{"no whitespace inner space allowed", NoWhitespace, "Mary Ann", false},
		{"no whitespace leading", NoWhitespace, " Ada", true},
		{"no whitespace trailing", NoWhitespace, "Ada ", true},
		{"no control chars valid", NoControlChars, "O'Brien-Smith", false},
		{"no control chars unicode letters", NoControlChars, "Zoë Ångström", false},
		{"no control chars newline", NoControlChars, "Ada\nLovelace", true},
		{"no control chars nul", NoControlChars, "Ada\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rule.Validate(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStringRules_EmptyIsSkipped(t *testing.T) {
	// String rules leave empty values to validation.Required.
	assert.NoError(t, NoWhitespace.Validate(""))
	assert.NoError(t, NoControlChars.Validate(""))
}

func TestWrapValidationError(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})

	t.Run("wraps as invalid input", func(t *testing.T) {
		result := WrapValidationError(assert.AnError)
		assert.ErrorIs(t, result, apperrors.ErrInvalidInput)
		assert.Contains(t, result.Error(), assert.AnError.Error())
	})
}
