// Package mocks provides mock implementations of the customer service collaborators for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/customer/dto"
)

// MockLogger is a mock implementation of service.Logger.
type MockLogger struct {
	mock.Mock
}

// LogInformation mocks the LogInformation method of Logger.
func (m *MockLogger) LogInformation(ctx context.Context, message string) {
	m.Called(ctx, message)
}

// LogError mocks the LogError method of Logger.
func (m *MockLogger) LogError(ctx context.Context, err error, message string) {
	m.Called(ctx, err, message)
}

// MockMapper is a mock implementation of service.Mapper.
type MockMapper struct {
	mock.Mock
}

// ToCustomerDTO mocks the ToCustomerDTO method of Mapper.
func (m *MockMapper) ToCustomerDTO(customer *domain.Customer) (*dto.CustomerDTO, error) {
	args := m.Called(customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CustomerDTO), args.Error(1)
}

// ToCustomerDTOs mocks the ToCustomerDTOs method of Mapper.
func (m *MockMapper) ToCustomerDTOs(customers []*domain.Customer) ([]*dto.CustomerDTO, error) {
	args := m.Called(customers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CustomerDTO), args.Error(1)
}

// ToCustomer mocks the ToCustomer method of Mapper.
func (m *MockMapper) ToCustomer(customerDTO *dto.CustomerDTO) (*domain.Customer, error) {
	args := m.Called(customerDTO)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockCustomerByIDQuery is a mock implementation of service.CustomerByIDQuery.
type MockCustomerByIDQuery struct {
	mock.Mock
}

// GetByID mocks the GetByID method of CustomerByIDQuery.
func (m *MockCustomerByIDQuery) GetByID(ctx context.Context, id *int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockAllCustomersQuery is a mock implementation of service.AllCustomersQuery.
type MockAllCustomersQuery struct {
	mock.Mock
}

// GetAll mocks the GetAll method of AllCustomersQuery.
func (m *MockAllCustomersQuery) GetAll(ctx context.Context) ([]*domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Customer), args.Error(1)
}

// MockCreateCustomerCommand is a mock implementation of service.CreateCustomerCommand.
type MockCreateCustomerCommand struct {
	mock.Mock
}

// Create mocks the Create method of CreateCustomerCommand.
func (m *MockCreateCustomerCommand) Create(
	ctx context.Context,
	customer *domain.Customer,
) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockDeleteCustomerCommand is a mock implementation of service.DeleteCustomerCommand.
type MockDeleteCustomerCommand struct {
	mock.Mock
}

// Delete mocks the Delete method of DeleteCustomerCommand.
func (m *MockDeleteCustomerCommand) Delete(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

// MockCustomerService is a mock implementation of service.CustomerService.
type MockCustomerService struct {
	mock.Mock
}

// ListCustomers mocks the ListCustomers method of CustomerService.
func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]*dto.CustomerDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.CustomerDTO), args.Error(1)
}

// GetCustomer mocks the GetCustomer method of CustomerService.
func (m *MockCustomerService) GetCustomer(ctx context.Context, id *int64) (*dto.CustomerDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CustomerDTO), args.Error(1)
}

// CreateCustomer mocks the CreateCustomer method of CustomerService.
func (m *MockCustomerService) CreateCustomer(
	ctx context.Context,
	customer *dto.CustomerDTO,
) (*dto.CustomerDTO, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CustomerDTO), args.Error(1)
}

// DeleteCustomer mocks the DeleteCustomer method of CustomerService.
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id *int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
