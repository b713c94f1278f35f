package coverletters

import "errors"

var (
	// ErrNotFound is returned when a cover letter does not exist.
	ErrNotFound = errors.New("cover letter not found")

	// ErrTokenBudgetExceeded is returned when the prompt would not fit the
	// model's input budget. No provider call is made in that case.
	ErrTokenBudgetExceeded = errors.New("prompt exceeds model token budget")

	// ErrCompletionFailed is returned when the provider call fails or
	// returns no usable completion.
	ErrCompletionFailed = errors.New("completion failed")
)

// User-facing failure messages reported to monitoring and task callers.
const (
	MsgUnableToGenerate         = "Unable to generate cover letter"
	MsgUnableToSendEmail        = "Unable to send cover letter email"
	MsgUnableToSendFeedback     = "Unable to send cover letter feedback"
	MsgUnableToRecordEngagement = "Unable to record cover letter engagement"
)
