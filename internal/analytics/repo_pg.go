package analytics

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a conversion event.
func (r *PGRepo) Create(ctx context.Context, event ConversionEvent) error {
	variants, err := json.Marshal(event.ExpVariantStrings)
	if err != nil {
		return fmt.Errorf("encode exp variants: %w", err)
	}
	const query = `
INSERT INTO conversion_events (id, event_name, resume_id, exp_variant_strings, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err = r.DB.ExecContext(ctx, query,
		event.ID,
		event.EventName,
		event.ResumeID,
		variants,
		event.CreatedAt,
	)
	return err
}

// ListByResume returns events for a resume ordered oldest-first.
func (r *PGRepo) ListByResume(ctx context.Context, resumeID string) ([]ConversionEvent, error) {
	const query = `
SELECT id, event_name, resume_id, exp_variant_strings, created_at
FROM conversion_events
WHERE resume_id = $1
ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, resumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ConversionEvent
	for rows.Next() {
		var event ConversionEvent
		var variants []byte
		if err := rows.Scan(
			&event.ID,
			&event.EventName,
			&event.ResumeID,
			&variants,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		if len(variants) > 0 {
			if err := json.Unmarshal(variants, &event.ExpVariantStrings); err != nil {
				return nil, fmt.Errorf("decode exp variants: %w", err)
			}
		}
		out = append(out, event)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
