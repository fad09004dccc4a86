package dto

import (
	customerDTO "github.com/allisson/customers/internal/customer/dto"
)

// ListCustomersResponse is the body of GET /v1/customers.
type ListCustomersResponse struct {
	Data []*customerDTO.CustomerDTO `json:"data"`
}

// NewListCustomersResponse wraps customers, rendering an empty list as [] rather than null.
func NewListCustomersResponse(customers []*customerDTO.CustomerDTO) ListCustomersResponse {
	if customers == nil {
		customers = []*customerDTO.CustomerDTO{}
	}
	return ListCustomersResponse{Data: customers}
}
