package customers

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a customer.
func (r *PGRepo) Create(ctx context.Context, customer Customer) error {
	const query = `
INSERT INTO customers (id, user_id, email, num_cover_letters_generated, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query,
		customer.ID,
		customer.UserID,
		customer.Email,
		customer.NumCoverLettersGenerated,
		customer.CreatedAt,
	)
	return err
}

// GetByID returns a customer by ID.
func (r *PGRepo) GetByID(ctx context.Context, customerID string) (Customer, error) {
	const query = `
SELECT id, user_id, email, num_cover_letters_generated, created_at
FROM customers
WHERE id = $1
LIMIT 1`
	var customer Customer
	err := r.DB.QueryRowContext(ctx, query, customerID).Scan(
		&customer.ID,
		&customer.UserID,
		&customer.Email,
		&customer.NumCoverLettersGenerated,
		&customer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		return Customer{}, err
	}
	return customer, nil
}

// IncrementCoverLettersGenerated bumps the counter in a single UPDATE so
// concurrent generations for the same customer cannot lose increments.
func (r *PGRepo) IncrementCoverLettersGenerated(ctx context.Context, customerID string) (int, error) {
	const query = `
UPDATE customers
SET num_cover_letters_generated = num_cover_letters_generated + 1
WHERE id = $1
RETURNING num_cover_letters_generated`
	var count int
	err := r.DB.QueryRowContext(ctx, query, customerID).Scan(&count)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return count, nil
}

var _ Repo = (*PGRepo)(nil)
