// Package query provides the read-side customer collaborators backed by a repository.
package query

import (
	"context"

	"github.com/allisson/customers/internal/customer/domain"
)

// CustomerReader is the read half of the customer repository.
type CustomerReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// CustomerByIDQuery loads a single customer by ID.
type CustomerByIDQuery struct {
	reader CustomerReader
}

// NewCustomerByIDQuery creates a new CustomerByIDQuery.
func NewCustomerByIDQuery(reader CustomerReader) *CustomerByIDQuery {
	return &CustomerByIDQuery{reader: reader}
}

// GetByID returns the customer with the given ID. A nil ID or a missing row yields (nil, nil).
func (q *CustomerByIDQuery) GetByID(ctx context.Context, id *int64) (*domain.Customer, error) {
	if id == nil {
		return nil, nil
	}
	return q.reader.GetByID(ctx, *id)
}

// AllCustomersQuery loads every customer.
type AllCustomersQuery struct {
	reader CustomerReader
}

// NewAllCustomersQuery creates a new AllCustomersQuery.
func NewAllCustomersQuery(reader CustomerReader) *AllCustomersQuery {
	return &AllCustomersQuery{reader: reader}
}

// GetAll returns all customers ordered by ID, never a nil slice.
func (q *AllCustomersQuery) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := q.reader.List(ctx)
	if err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []*domain.Customer{}
	}
	return customers, nil
}
