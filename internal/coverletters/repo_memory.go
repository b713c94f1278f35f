package coverletters

import (
	"context"
	"sync"
)

// MemoryRepo stores cover letters in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	letters map[string]CoverLetter
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{letters: make(map[string]CoverLetter)}
}

// Create stores the letter.
func (r *MemoryRepo) Create(ctx context.Context, letter CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.letters[letter.ID] = letter
	return nil
}

// GetByID returns the letter or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	letter, ok := r.letters[id]
	if !ok {
		return CoverLetter{}, ErrNotFound
	}
	return letter, nil
}

// UpdateRating sets the rating and returns the updated letter.
func (r *MemoryRepo) UpdateRating(ctx context.Context, id string, rating Rating) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	letter, ok := r.letters[id]
	if !ok {
		return CoverLetter{}, ErrNotFound
	}
	letter.Rating = &rating
	r.letters[id] = letter
	return letter, nil
}

// Count returns the number of stored letters. Intended for tests.
func (r *MemoryRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.letters)
}

var _ Repo = (*MemoryRepo)(nil)
