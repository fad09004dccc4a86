package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/allisson/customers/internal/customer/dto"
	"github.com/allisson/customers/internal/customer/service"
	"github.com/allisson/customers/internal/customer/service/mocks"
)

// mockBusinessMetrics is a local mock for metrics.BusinessMetrics.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

func expectMetrics(ctx context.Context, m *mockBusinessMetrics, operation, status string) {
	m.On("RecordOperation", ctx, "customers", operation, status).Return().Once()
	m.On("RecordDuration", ctx, "customers", operation, mock.AnythingOfType("time.Duration"), status).
		Return().
		Once()
}

func TestCustomerServiceWithMetrics(t *testing.T) {
	ctx := context.Background()
	id := int64Ptr(1)

	t.Run("ListCustomers success", func(t *testing.T) {
		mockNext := &mocks.MockCustomerService{}
		mockMetrics := &mockBusinessMetrics{}
		svc := service.NewCustomerServiceWithMetrics(mockNext, mockMetrics)
		output := []*dto.CustomerDTO{{ID: 1, FirstName: "Ada", LastName: "Lovelace"}}

		mockNext.On("ListCustomers", ctx).Return(output, nil).Once()
		expectMetrics(ctx, mockMetrics, "customer_list", "success")

		res, err := svc.ListCustomers(ctx)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("GetCustomer error", func(t *testing.T) {
		mockNext := &mocks.MockCustomerService{}
		mockMetrics := &mockBusinessMetrics{}
		svc := service.NewCustomerServiceWithMetrics(mockNext, mockMetrics)
		expectedErr := errors.New("error")

		mockNext.On("GetCustomer", ctx, id).Return(nil, expectedErr).Once()
		expectMetrics(ctx, mockMetrics, "customer_get", "error")

		res, err := svc.GetCustomer(ctx, id)
		assert.Same(t, expectedErr, err)
		assert.Nil(t, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("CreateCustomer success", func(t *testing.T) {
		mockNext := &mocks.MockCustomerService{}
		mockMetrics := &mockBusinessMetrics{}
		svc := service.NewCustomerServiceWithMetrics(mockNext, mockMetrics)
		input := &dto.CustomerDTO{FirstName: "Ada", LastName: "Lovelace"}
		output := &dto.CustomerDTO{ID: 1, FirstName: "Ada", LastName: "Lovelace"}

		mockNext.On("CreateCustomer", ctx, input).Return(output, nil).Once()
		expectMetrics(ctx, mockMetrics, "customer_create", "success")

		res, err := svc.CreateCustomer(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, output, res)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("DeleteCustomer error", func(t *testing.T) {
		mockNext := &mocks.MockCustomerService{}
		mockMetrics := &mockBusinessMetrics{}
		svc := service.NewCustomerServiceWithMetrics(mockNext, mockMetrics)
		expectedErr := errors.New("error")

		mockNext.On("DeleteCustomer", ctx, id).Return(expectedErr).Once()
		expectMetrics(ctx, mockMetrics, "customer_delete", "error")

		err := svc.DeleteCustomer(ctx, id)
		assert.Same(t, expectedErr, err)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}
