package resumes

import "context"

// Repo provides access to resume records.
type Repo interface {
	Create(ctx context.Context, resume Resume) error
	// GetByID returns a resume, enforcing customer ownership.
	GetByID(ctx context.Context, customerID, resumeID string) (Resume, error)
}
