package service

import (
	"context"
	"time"

	"github.com/allisson/customers/internal/customer/dto"
	"github.com/allisson/customers/internal/metrics"
)

// metricsDomain labels every customer business metric.
const metricsDomain = "customers"

// customerServiceWithMetrics decorates CustomerService with metrics instrumentation.
type customerServiceWithMetrics struct {
	next    CustomerService
	metrics metrics.BusinessMetrics
}

// NewCustomerServiceWithMetrics wraps a CustomerService with metrics recording.
func NewCustomerServiceWithMetrics(svc CustomerService, m metrics.BusinessMetrics) CustomerService {
	return &customerServiceWithMetrics{
		next:    svc,
		metrics: m,
	}
}

// ListCustomers records metrics for customer listing.
func (s *customerServiceWithMetrics) ListCustomers(ctx context.Context) ([]*dto.CustomerDTO, error) {
	start := time.Now()
	customers, err := s.next.ListCustomers(ctx)
	s.record(ctx, "customer_list", start, err)
	return customers, err
}

// GetCustomer records metrics for customer lookups.
func (s *customerServiceWithMetrics) GetCustomer(ctx context.Context, id *int64) (*dto.CustomerDTO, error) {
	start := time.Now()
	customer, err := s.next.GetCustomer(ctx, id)
	s.record(ctx, "customer_get", start, err)
	return customer, err
}

// CreateCustomer records metrics for customer creation.
func (s *customerServiceWithMetrics) CreateCustomer(
	ctx context.Context,
	customer *dto.CustomerDTO,
) (*dto.CustomerDTO, error) {
	start := time.Now()
	created, err := s.next.CreateCustomer(ctx, customer)
	s.record(ctx, "customer_create", start, err)
	return created, err
}

// DeleteCustomer records metrics for customer deletion.
func (s *customerServiceWithMetrics) DeleteCustomer(ctx context.Context, id *int64) error {
	start := time.Now()
	err := s.next.DeleteCustomer(ctx, id)
	s.record(ctx, "customer_delete", start, err)
	return err
}

func (s *customerServiceWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	s.metrics.RecordOperation(ctx, metricsDomain, operation, status)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), status)
}
