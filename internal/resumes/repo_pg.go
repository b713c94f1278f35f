package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a resume. Structured sections are stored as JSONB.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	sections, err := json.Marshal(resume.Sections)
	if err != nil {
		return fmt.Errorf("encode resume sections: %w", err)
	}
	const query = `
INSERT INTO resumes (
    id, customer_id, contact_first_name, contact_last_name, contact_email, summary, sections, raw_text, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err = r.DB.ExecContext(ctx, query,
		resume.ID,
		resume.CustomerID,
		resume.Contact.FirstName,
		resume.Contact.LastName,
		resume.Contact.Email,
		resume.Summary,
		sections,
		resume.RawText,
		resume.CreatedAt,
	)
	return err
}

// GetByID returns a resume by ID for a customer.
func (r *PGRepo) GetByID(ctx context.Context, customerID, resumeID string) (Resume, error) {
	const query = `
SELECT id, customer_id, contact_first_name, contact_last_name, contact_email, summary, sections, raw_text, created_at
FROM resumes
WHERE id = $1
LIMIT 1`
	var resume Resume
	var sections []byte
	err := r.DB.QueryRowContext(ctx, query, resumeID).Scan(
		&resume.ID,
		&resume.CustomerID,
		&resume.Contact.FirstName,
		&resume.Contact.LastName,
		&resume.Contact.Email,
		&resume.Summary,
		&sections,
		&resume.RawText,
		&resume.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if len(sections) > 0 {
		if err := json.Unmarshal(sections, &resume.Sections); err != nil {
			return Resume{}, fmt.Errorf("decode resume sections: %w", err)
		}
	}
	if resume.CustomerID != customerID {
		return Resume{}, ErrForbidden
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
