package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/database"
	apperrors "github.com/allisson/customers/internal/errors"
)

// MySQLCustomerRepository implements Customer persistence for MySQL.
type MySQLCustomerRepository struct {
	db *sql.DB
}

// NewMySQLCustomerRepository creates a new MySQL Customer repository.
func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}

// Create inserts the customer and stores the AUTO_INCREMENT identifier on it.
func (m *MySQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO customers (first_name, last_name, created_at) VALUES (?, ?, NOW())`

	result, err := querier.ExecContext(ctx, query, customer.FirstName, customer.LastName)
	if err != nil {
		return apperrors.Wrap(err, "failed to create customer")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read customer id")
	}

	customer.ID = id
	return nil
}

// GetByID retrieves a customer by ID. Returns (nil, nil) when no row matches.
func (m *MySQLCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, first_name, last_name FROM customers WHERE id = ?`

	var customer domain.Customer
	err := querier.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.Wrap(err, "failed to get customer")
	}

	return &customer, nil
}

// List returns every customer ordered by ID.
func (m *MySQLCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, first_name, last_name FROM customers ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customers")
	}
	defer rows.Close() //nolint:errcheck

	return scanCustomers(rows)
}

// Delete removes the customer with the given ID. Deleting a missing row is not an error.
func (m *MySQLCustomerRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM customers WHERE id = ?`

	if _, err := querier.ExecContext(ctx, query, id); err != nil {
		return apperrors.Wrap(err, "failed to delete customer")
	}
	return nil
}
