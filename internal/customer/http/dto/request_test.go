package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/allisson/customers/internal/errors"
)

func TestCreateCustomerRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		request     CreateCustomerRequest
		shouldErr   bool
		errContains string
	}{
		{
			name:    "valid",
			request: CreateCustomerRequest{FirstName: "Ada", LastName: "Lovelace"},
		},
		{
			name:    "valid multibyte at limit",
			request: CreateCustomerRequest{FirstName: strings.Repeat("é", 255), LastName: "Lovelace"},
		},
		{
			name:        "missing first name",
			request:     CreateCustomerRequest{LastName: "Lovelace"},
			shouldErr:   true,
			errContains: "first_name is required",
		},
		{
			name:        "missing last name",
			request:     CreateCustomerRequest{FirstName: "Ada"},
			shouldErr:   true,
			errContains: "last_name is required",
		},
		{
			name:        "blank first name",
			request:     CreateCustomerRequest{FirstName: "   ", LastName: "Lovelace"},
			shouldErr:   true,
			errContains: "must not be blank",
		},
		{
			name:        "last name too long",
			request:     CreateCustomerRequest{FirstName: "Ada", LastName: strings.Repeat("a", 256)},
			shouldErr:   true,
			errContains: "last_name must be between 1 and 255 characters",
		},
		{
			name:        "control characters",
			request:     CreateCustomerRequest{FirstName: "Ada\n", LastName: "Lovelace"},
			shouldErr:   true,
			errContains: "must not contain control characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomerRequest_ToCustomerDTO(t *testing.T) {
	request := CreateCustomerRequest{FirstName: "  Ada ", LastName: "Lovelace  "}

	result := request.ToCustomerDTO()

	assert.Zero(t, result.ID)
	assert.Equal(t, "Ada", result.FirstName)
	assert.Equal(t, "Lovelace", result.LastName)
}

func TestNewListCustomersResponse(t *testing.T) {
	response := NewListCustomersResponse(nil)

	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)
}
