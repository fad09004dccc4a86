// Package repository implements customer persistence for PostgreSQL and MySQL.
//
// Both implementations join the transaction carried by the context via database.GetTx().
// A missing customer is reported as (nil, nil) so callers decide what absence means.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/allisson/customers/internal/customer/domain"
	"github.com/allisson/customers/internal/database"
	apperrors "github.com/allisson/customers/internal/errors"
)

// PostgreSQLCustomerRepository implements Customer persistence for PostgreSQL.
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQL Customer repository.
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{db: db}
}

// Create inserts the customer and stores the generated identifier on it.
func (p *PostgreSQLCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO customers (first_name, last_name, created_at) 
			  VALUES ($1, $2, NOW()) 
			  RETURNING id`

	var id int64
	if err := querier.QueryRowContext(ctx, query, customer.FirstName, customer.LastName).Scan(&id); err != nil {
		return apperrors.Wrap(err, "failed to create customer")
	}

	customer.ID = id
	return nil
}

// GetByID retrieves a customer by ID. Returns (nil, nil) when no row matches.
func (p *PostgreSQLCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, first_name, last_name FROM customers WHERE id = $1`

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
func (p *PostgreSQLCustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, first_name, last_name FROM customers ORDER BY id ASC`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customers")
	}
	defer rows.Close() //nolint:errcheck

	return scanCustomers(rows)
}

// Delete removes the customer with the given ID. Deleting a missing row is not an error.
func (p *PostgreSQLCustomerRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM customers WHERE id = $1`

	if _, err := querier.ExecContext(ctx, query, id); err != nil {
		return apperrors.Wrap(err, "failed to delete customer")
	}
	return nil
}

func scanCustomers(rows *sql.Rows) ([]*domain.Customer, error) {
	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.FirstName, &customer.LastName); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer")
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customers")
	}

	return customers, nil
}
