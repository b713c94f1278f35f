package analytics

import "time"

// Event names recorded as conversion events.
const (
	EventCoverLetterGenerate = "cover_letter_generate"
)

// ConversionEvent is an append-only analytics record of a user action,
// tagged with the A/B test variants active for the request.
type ConversionEvent struct {
	ID                string    `json:"id"`
	EventName         string    `json:"eventName"`
	ResumeID          string    `json:"resumeId"`
	ExpVariantStrings []string  `json:"expVariantStrings"`
	CreatedAt         time.Time `json:"createdAt"`
}
