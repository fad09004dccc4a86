// Package dto defines the transfer objects exchanged at the customer service boundary.
package dto

// CustomerDTO carries customer data to and from callers of the customer service.
// It mirrors domain.Customer field for field.
type CustomerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
