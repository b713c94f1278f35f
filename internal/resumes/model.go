package resumes

import "time"

// Resume is a customer's stored resume. Structured sections are kept as JSONB
// in Postgres; resumes imported from a PDF carry the extracted text in RawText.
type Resume struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	Contact    ContactInfo `json:"contact"`
	Summary    string      `json:"summary"`
	Sections   Sections    `json:"sections"`
	RawText    string      `json:"rawText,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// ContactInfo holds the applicant's contact details.
type ContactInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Sections groups the structured resume content.
type Sections struct {
	Experiences    []Experience `json:"experiences,omitempty"`
	Educations     []Education  `json:"educations,omitempty"`
	Skills         []string     `json:"skills,omitempty"`
	Certifications []string     `json:"certifications,omitempty"`
}

// Experience is one work history entry.
type Experience struct {
	Title      string   `json:"title"`
	Company    string   `json:"company"`
	Start      string   `json:"start,omitempty"`
	End        string   `json:"end,omitempty"`
	Highlights []string `json:"highlights,omitempty"`
}

// Education is one education history entry.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree,omitempty"`
	Year   string `json:"year,omitempty"`
}

// FirstName returns the contact first name used in email templates.
func (r Resume) FirstName() string {
	return r.Contact.FirstName
}
