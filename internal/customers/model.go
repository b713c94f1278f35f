package customers

import "time"

// Customer is a paying account that owns resumes and cover letters.
type Customer struct {
	ID                       string    `json:"id"`
	UserID                   string    `json:"userId"`
	Email                    string    `json:"email"`
	NumCoverLettersGenerated int       `json:"numCoverLettersGenerated"`
	CreatedAt                time.Time `json:"createdAt"`
}
