package analytics

import (
	"context"
	"sync"
)

// MemoryRepo stores conversion events in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	events []ConversionEvent
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends the event.
func (r *MemoryRepo) Create(ctx context.Context, event ConversionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// ListByResume returns events for a resume in insertion order.
func (r *MemoryRepo) ListByResume(ctx context.Context, resumeID string) ([]ConversionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []ConversionEvent
	for _, event := range r.events {
		if event.ResumeID == resumeID {
			out = append(out, event)
		}
	}
	return out, nil
}

// All returns every stored event. Intended for assertions in tests.
func (r *MemoryRepo) All() []ConversionEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ConversionEvent, len(r.events))
	copy(out, r.events)
	return out
}

var _ Repo = (*MemoryRepo)(nil)
