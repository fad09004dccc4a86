package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/customer/dto"
	httpDTO "github.com/allisson/customers/internal/customer/http/dto"
	"github.com/allisson/customers/internal/customer/service"
)

// RunCreateCustomer validates the names the same way the HTTP API does and creates the customer.
func RunCreateCustomer(
	ctx context.Context,
	svc service.CustomerService,
	logger *slog.Logger,
	writer io.Writer,
	firstName, lastName string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	req := httpDTO.CreateCustomerRequest{FirstName: firstName, LastName: lastName}
	if err := req.Validate(); err != nil {
		return err
	}

	customer, err := svc.CreateCustomer(ctx, req.ToCustomerDTO())
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	logger.Info("customer created", slog.Int64("customer_id", customer.ID))

	if format == "json" {
		return writeJSON(writer, customer)
	}
	_, _ = fmt.Fprintf(writer, "Customer created successfully\nID: %d\nName: %s %s\n",
		customer.ID, customer.FirstName, customer.LastName)
	return nil
}

// RunListCustomers prints every customer as a table or a JSON array.
func RunListCustomers(
	ctx context.Context,
	svc service.CustomerService,
	logger *slog.Logger,
	writer io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	customers, err := svc.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list customers: %w", err)
	}

	logger.Debug("customers listed", slog.Int("count", len(customers)))

	if format == "json" {
		return writeJSON(writer, customers)
	}
	return writeCustomerTable(writer, customers)
}

// RunGetCustomer prints one customer. A missing customer is reported as domain.ErrCustomerNotFound.
func RunGetCustomer(
	ctx context.Context,
	svc service.CustomerService,
	logger *slog.Logger,
	writer io.Writer,
	id int64,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if id <= 0 {
		return domain.ErrInvalidCustomerID
	}

	customer, err := svc.GetCustomer(ctx, &id)
	if err != nil {
		return fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		logger.Warn("customer not found", slog.Int64("customer_id", id))
		return domain.ErrCustomerNotFound
	}

	if format == "json" {
		return writeJSON(writer, customer)
	}
	return writeCustomerTable(writer, []*dto.CustomerDTO{customer})
}

// RunDeleteCustomer deletes a customer. Deleting a missing customer succeeds.
func RunDeleteCustomer(
	ctx context.Context,
	svc service.CustomerService,
	logger *slog.Logger,
	writer io.Writer,
	id int64,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	if id <= 0 {
		return domain.ErrInvalidCustomerID
	}

	if err := svc.DeleteCustomer(ctx, &id); err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	logger.Info("customer deleted", slog.Int64("customer_id", id))

	if format == "json" {
		return writeJSON(writer, map[string]any{"id": id, "deleted": true})
	}
	_, _ = fmt.Fprintf(writer, "Customer %d deleted\n", id)
	return nil
}

func writeCustomerTable(writer io.Writer, customers []*dto.CustomerDTO) error {
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tFIRST NAME\tLAST NAME")
	for _, c := range customers {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.FirstName, c.LastName)
	}
	return tw.Flush()
}
