package analytics

import "context"

// Repo records conversion events. Events are append-only.
type Repo interface {
	Create(ctx context.Context, event ConversionEvent) error
	ListByResume(ctx context.Context, resumeID string) ([]ConversionEvent, error)
}
