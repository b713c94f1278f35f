package coverletters

import "context"

// Repo persists cover letters.
type Repo interface {
	Create(ctx context.Context, letter CoverLetter) error
	GetByID(ctx context.Context, id string) (CoverLetter, error)
	UpdateRating(ctx context.Context, id string, rating Rating) (CoverLetter, error)
}
