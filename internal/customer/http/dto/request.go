// Package dto provides request and response bodies for the customer HTTP API.
package dto

import (
	"strings"

	validation "github.com/jellydator/validation"

	customerDTO "github.com/allisson/customers/internal/customer/dto"
	appValidation "github.com/allisson/customers/internal/validation"
)

// CreateCustomerRequest is the body of POST /v1/customers.
type CreateCustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Validate checks that both names are present, not blank and at most 255 characters.
func (r *CreateCustomerRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.FirstName,
			validation.Required.Error("first_name is required"),
			appValidation.NotBlank,
			appValidation.NoControlChars,
			validation.RuneLength(1, 255).Error("first_name must be between 1 and 255 characters"),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("last_name is required"),
			appValidation.NotBlank,
			appValidation.NoControlChars,
			validation.RuneLength(1, 255).Error("last_name must be between 1 and 255 characters"),
		),
	)
	return appValidation.WrapValidationError(err)
}

// ToCustomerDTO converts the request into the service transfer object with trimmed names.
func (r *CreateCustomerRequest) ToCustomerDTO() *customerDTO.CustomerDTO {
	return &customerDTO.CustomerDTO{
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
	}
}
