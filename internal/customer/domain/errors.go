package domain

import (
	"github.com/allisson/customers/internal/errors"
)

// Customer-specific error definitions.
var (
	// ErrCustomerNotFound indicates no customer exists for the requested ID.
	ErrCustomerNotFound = errors.Wrap(errors.ErrNotFound, "customer not found")

	// ErrCustomerRequired indicates a nil customer was handed to an operation that needs one.
	ErrCustomerRequired = errors.Wrap(errors.ErrInvalidInput, "customer is required")

	// ErrInvalidCustomerID indicates the customer ID could not be parsed or is not positive.
	ErrInvalidCustomerID = errors.Wrap(errors.ErrInvalidInput, "invalid customer id")
)
