package resumes

import (
	"strings"
	"testing"
)

func TestSerializeStructuredResume(t *testing.T) {
	resume := Resume{
		Contact: ContactInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"},
		Summary: "Backend engineer with 6 years of Go experience.",
		Sections: Sections{
			Experiences: []Experience{
				{
					Title:      "Senior Engineer",
					Company:    "Widgets Inc",
					Start:      "2020",
					End:        "",
					Highlights: []string{"Led payment platform rewrite"},
				},
			},
			Educations: []Education{
				{School: "MIT", Degree: "BSc Computer Science", Year: "2016"},
			},
			Skills:         []string{"Go", "Postgres"},
			Certifications: []string{"AWS SAA"},
		},
	}

	text := Serialize(resume)

	for _, want := range []string{
		"Name: Ada Lovelace",
		"Email: ada@example.com",
		"Summary: Backend engineer with 6 years of Go experience.",
		"Experience:",
		"- Senior Engineer at Widgets Inc (2020 - present)",
		"  * Led payment platform rewrite",
		"Education:",
		"- MIT, BSc Computer Science (2016)",
		"Skills: Go, Postgres",
		"Certifications: AWS SAA",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("serialized resume missing %q:\n%s", want, text)
		}
	}
}

func TestSerializeFallsBackToRawText(t *testing.T) {
	resume := Resume{
		RawText: "  Plain text resume pulled from a PDF.  ",
	}

	text := Serialize(resume)

	if text != "Plain text resume pulled from a PDF." {
		t.Fatalf("expected raw text fallback, got %q", text)
	}
}

func TestSerializeEmptyResume(t *testing.T) {
	if got := Serialize(Resume{}); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestFirstName(t *testing.T) {
	resume := Resume{Contact: ContactInfo{FirstName: "Grace"}}
	if got := resume.FirstName(); got != "Grace" {
		t.Fatalf("expected Grace, got %q", got)
	}
}
