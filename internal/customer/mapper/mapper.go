// Package mapper converts between customer entities and transfer objects.
package mapper

import (
	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/customer/dto"
)

// CustomerMapper converts customers with explicit, field-for-field functions.
// The zero value is ready to use and safe for concurrent use.
type CustomerMapper struct{}

// NewCustomerMapper creates a CustomerMapper.
func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

// ToCustomerDTO maps an entity to a transfer object. A nil entity maps to nil.
func (m *CustomerMapper) ToCustomerDTO(customer *domain.Customer) (*dto.CustomerDTO, error) {
	if customer == nil {
		return nil, nil
	}
	return &dto.CustomerDTO{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
	}, nil
}

// ToCustomerDTOs maps entities to transfer objects, preserving order.
// The result is never nil; nil entries are skipped.
func (m *CustomerMapper) ToCustomerDTOs(customers []*domain.Customer) ([]*dto.CustomerDTO, error) {
	result := make([]*dto.CustomerDTO, 0, len(customers))
	for _, customer := range customers {
		if customer == nil {
			continue
		}
		customerDTO, err := m.ToCustomerDTO(customer)
		if err != nil {
			return nil, err
		}
		result = append(result, customerDTO)
	}
	return result, nil
}

// ToCustomer maps a transfer object to an entity.
func (m *CustomerMapper) ToCustomer(customerDTO *dto.CustomerDTO) (*domain.Customer, error) {
	if customerDTO == nil {
		return nil, domain.ErrCustomerRequired
	}
	return &domain.Customer{
		ID:        customerDTO.ID,
		FirstName: customerDTO.FirstName,
		LastName:  customerDTO.LastName,
	}, nil
}
