package customers

import "context"

// Repo provides access to customer records.
type Repo interface {
	Create(ctx context.Context, customer Customer) error
	GetByID(ctx context.Context, customerID string) (Customer, error)
	// IncrementCoverLettersGenerated bumps the lifetime generation counter by
	// one as a single atomic update and returns the new count.
	IncrementCoverLettersGenerated(ctx context.Context, customerID string) (int, error)
}
