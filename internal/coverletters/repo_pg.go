package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a cover letter row.
func (r *PGRepo) Create(ctx context.Context, letter CoverLetter) error {
	const query = `
INSERT INTO cover_letters (id, resume_id, customer_id, job_description_text, generated_text, input_log_name, rating, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.ResumeID,
		letter.CustomerID,
		letter.JobDescriptionText,
		letter.GeneratedText,
		letter.InputLogName,
		ratingParam(letter.Rating),
		letter.CreatedAt,
	)
	return err
}

// GetByID fetches a cover letter by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (CoverLetter, error) {
	const query = `
SELECT id, resume_id, customer_id, job_description_text, generated_text, input_log_name, rating, created_at
FROM cover_letters
WHERE id = $1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id))
}

// UpdateRating sets the rating and returns the updated row.
func (r *PGRepo) UpdateRating(ctx context.Context, id string, rating Rating) (CoverLetter, error) {
	const query = `
UPDATE cover_letters
SET rating = $2
WHERE id = $1
RETURNING id, resume_id, customer_id, job_description_text, generated_text, input_log_name, rating, created_at`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, id, string(rating)))
}

func (r *PGRepo) scanOne(row *sql.Row) (CoverLetter, error) {
	var letter CoverLetter
	var rating sql.NullString
	err := row.Scan(
		&letter.ID,
		&letter.ResumeID,
		&letter.CustomerID,
		&letter.JobDescriptionText,
		&letter.GeneratedText,
		&letter.InputLogName,
		&rating,
		&letter.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return CoverLetter{}, ErrNotFound
	}
	if err != nil {
		return CoverLetter{}, err
	}
	if rating.Valid {
		value := Rating(rating.String)
		letter.Rating = &value
	}
	return letter, nil
}

func ratingParam(rating *Rating) any {
	if rating == nil {
		return nil
	}
	return string(*rating)
}

var _ Repo = (*PGRepo)(nil)
