package monitoring

import "sync"

// Recorder captures notifications in memory for assertions in tests.
type Recorder struct {
	mu    sync.Mutex
	calls []RecordedCall
}

// RecordedCall is a single captured notification.
type RecordedCall struct {
	ErrorMessage string
	Err          error
}

// Notify records the call.
func (r *Recorder) Notify(errorMessage string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, RecordedCall{ErrorMessage: errorMessage, Err: err})
}

// Calls returns a copy of the captured notifications.
func (r *Recorder) Calls() []RecordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedCall, len(r.calls))
	copy(out, r.calls)
	return out
}

var _ Notifier = (*Recorder)(nil)
