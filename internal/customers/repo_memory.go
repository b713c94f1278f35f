package customers

import (
	"context"
	"sync"
)

// MemoryRepo stores customers in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu   sync.RWMutex
	byID map[string]Customer
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Customer)}
}

// Create stores the customer.
func (r *MemoryRepo) Create(ctx context.Context, customer Customer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[customer.ID] = customer
	return nil
}

// GetByID returns a customer by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, customerID string) (Customer, error) {
	if err := ctx.Err(); err != nil {
		return Customer{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.byID[customerID]
	if !ok {
		return Customer{}, ErrNotFound
	}
	return customer, nil
}

// IncrementCoverLettersGenerated bumps the counter under the repo lock and
// returns the new count.
func (r *MemoryRepo) IncrementCoverLettersGenerated(ctx context.Context, customerID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.byID[customerID]
	if !ok {
		return 0, ErrNotFound
	}
	customer.NumCoverLettersGenerated++
	r.byID[customerID] = customer
	return customer.NumCoverLettersGenerated, nil
}

var _ Repo = (*MemoryRepo)(nil)
