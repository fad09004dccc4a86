// Package service implements the customer service: it logs every call, delegates to
// query and command collaborators, maps entities to transfer objects and reports
// collaborator failures exactly once before handing them back to the caller.
package service

import (
	"context"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/customer/dto"
)

// Logger records informational and error events for the service.
type Logger interface {
	LogInformation(ctx context.Context, message string)
	LogError(ctx context.Context, err error, message string)
}

// Mapper converts between customer entities and transfer objects.
type Mapper interface {
	ToCustomerDTO(customer *domain.Customer) (*dto.CustomerDTO, error)
	ToCustomerDTOs(customers []*domain.Customer) ([]*dto.CustomerDTO, error)
	ToCustomer(customerDTO *dto.CustomerDTO) (*domain.Customer, error)
}

// CustomerByIDQuery loads a single customer. A missing customer is reported as (nil, nil).
type CustomerByIDQuery interface {
	GetByID(ctx context.Context, id *int64) (*domain.Customer, error)
}

// AllCustomersQuery loads every customer.
type AllCustomersQuery interface {
	GetAll(ctx context.Context) ([]*domain.Customer, error)
}

// CreateCustomerCommand persists a new customer and returns it with its assigned ID.
type CreateCustomerCommand interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
}

// DeleteCustomerCommand removes a customer.
type DeleteCustomerCommand interface {
	Delete(ctx context.Context, customer *domain.Customer) error
}

// CustomerService exposes customer operations in terms of transfer objects.
type CustomerService interface {
	// ListCustomers returns every customer; an empty store yields an empty slice.
	ListCustomers(ctx context.Context) ([]*dto.CustomerDTO, error)
	// GetCustomer returns the customer with the given ID, or nil when there is none.
	GetCustomer(ctx context.Context, id *int64) (*dto.CustomerDTO, error)
	// CreateCustomer stores the customer and returns the persisted version.
	CreateCustomer(ctx context.Context, customer *dto.CustomerDTO) (*dto.CustomerDTO, error)
	// DeleteCustomer removes the customer with the given ID when it exists.
	DeleteCustomer(ctx context.Context, id *int64) error
}
