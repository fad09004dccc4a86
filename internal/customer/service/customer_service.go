package service

import (
	"context"

	"github.com/allisson/customers/internal/customer/dto"
)

// Log messages emitted at each operation boundary.
const (
	listCustomersHit    = "Method GetAllCustomers was hit..."
	listCustomersFailed = "Method GetAllCustomers failed"

	getCustomerHit    = "Method GetCustomer was hit..."
	getCustomerFailed = "Method GetCustomer failed"

	createCustomerHit    = "Method CreateCustomer was hit..."
	createCustomerFailed = "Method CreateCustomer failed"

	deleteCustomerHit    = "Method DeleteCustomer was hit..."
	deleteCustomerFailed = "Method DeleteCustomer failed"
)

// customerService implements the CustomerService interface.
type customerService struct {
	logger         Logger
	mapper         Mapper
	customerByID   CustomerByIDQuery
	allCustomers   AllCustomersQuery
	createCustomer CreateCustomerCommand
	deleteCustomer DeleteCustomerCommand
}

// ListCustomers loads all customers and maps them to transfer objects.
func (s *customerService) ListCustomers(ctx context.Context) ([]*dto.CustomerDTO, error) {
	s.logger.LogInformation(ctx, listCustomersHit)

	customers, err := s.allCustomers.GetAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, err, listCustomersFailed)
	}

	result, err := s.mapper.ToCustomerDTOs(customers)
	if err != nil {
		return nil, s.fail(ctx, err, listCustomersFailed)
	}

	return result, nil
}

// GetCustomer loads one customer by ID. A missing customer yields (nil, nil).
func (s *customerService) GetCustomer(ctx context.Context, id *int64) (*dto.CustomerDTO, error) {
	s.logger.LogInformation(ctx, getCustomerHit)

	customer, err := s.customerByID.GetByID(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, err, getCustomerFailed)
	}

	result, err := s.mapper.ToCustomerDTO(customer)
	if err != nil {
		return nil, s.fail(ctx, err, getCustomerFailed)
	}

	return result, nil
}

// CreateCustomer stores a new customer. The returned transfer object reflects the
// persisted entity, not the input.
func (s *customerService) CreateCustomer(
	ctx context.Context,
	customer *dto.CustomerDTO,
) (*dto.CustomerDTO, error) {
	s.logger.LogInformation(ctx, createCustomerHit)

	entity, err := s.mapper.ToCustomer(customer)
	if err != nil {
		return nil, s.fail(ctx, err, createCustomerFailed)
	}

	created, err := s.createCustomer.Create(ctx, entity)
	if err != nil {
		return nil, s.fail(ctx, err, createCustomerFailed)
	}

	result, err := s.mapper.ToCustomerDTO(created)
	if err != nil {
		return nil, s.fail(ctx, err, createCustomerFailed)
	}

	return result, nil
}

// DeleteCustomer removes the customer with the given ID. Deleting a customer that
// does not exist is a no-op.
func (s *customerService) DeleteCustomer(ctx context.Context, id *int64) error {
	s.logger.LogInformation(ctx, deleteCustomerHit)

	customer, err := s.customerByID.GetByID(ctx, id)
	if err != nil {
		return s.fail(ctx, err, deleteCustomerFailed)
	}
	if customer == nil {
		return nil
	}

	if err := s.deleteCustomer.Delete(ctx, customer); err != nil {
		return s.fail(ctx, err, deleteCustomerFailed)
	}

	return nil
}

// fail logs err under message and returns it untouched.
func (s *customerService) fail(ctx context.Context, err error, message string) error {
	s.logger.LogError(ctx, err, message)
	return err
}

// NewCustomerService creates a new customer service with the provided collaborators.
func NewCustomerService(
	logger Logger,
	mapper Mapper,
	customerByID CustomerByIDQuery,
	allCustomers AllCustomersQuery,
	createCustomer CreateCustomerCommand,
	deleteCustomer DeleteCustomerCommand,
) CustomerService {
	return &customerService{
		logger:         logger,
		mapper:         mapper,
		customerByID:   customerByID,
		allCustomers:   allCustomers,
		createCustomer: createCustomer,
		deleteCustomer: deleteCustomer,
	}
}
