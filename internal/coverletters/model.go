package coverletters

import "time"

// Rating is the user's thumbs verdict on a generated letter.
type Rating string

const (
	RatingThumbsUp   Rating = "thumbs_up"
	RatingThumbsDown Rating = "thumbs_down"
)

// Valid reports whether r is a known rating value.
func (r Rating) Valid() bool {
	return r == RatingThumbsUp || r == RatingThumbsDown
}

// CoverLetter is a persisted generation result. InputLogName points at the
// provider-side log of the prompt that produced the letter and is what user
// feedback is attached to later.
type CoverLetter struct {
	ID                 string
	ResumeID           string
	CustomerID         string
	JobDescriptionText string
	GeneratedText      string
	InputLogName       string
	Rating             *Rating
	CreatedAt          time.Time
}

// View is the API shape of a cover letter.
type View struct {
	ID                 string    `json:"id"`
	JobDescriptionText string    `json:"jobDescriptionText"`
	GeneratedText      string    `json:"generatedText"`
	Rating             *Rating   `json:"rating"`
	CreatedAt          time.Time `json:"createdAt"`
}

// NewView converts a CoverLetter to its API representation.
func NewView(letter CoverLetter) View {
	return View{
		ID:                 letter.ID,
		JobDescriptionText: letter.JobDescriptionText,
		GeneratedText:      letter.GeneratedText,
		Rating:             letter.Rating,
		CreatedAt:          letter.CreatedAt,
	}
}
