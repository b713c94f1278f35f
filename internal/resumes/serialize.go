package resumes

import "strings"

// Serialize flattens a resume into the plain-text form fed to the completion
// provider. Structured sections win; resumes imported from a PDF fall back to
// the extracted raw text.
func Serialize(resume Resume) string {
	var b strings.Builder

	writeContact(&b, resume.Contact)

	if summary := strings.TrimSpace(resume.Summary); summary != "" {
		b.WriteString("Summary: ")
		b.WriteString(summary)
		b.WriteString("\n")
	}

	writeExperiences(&b, resume.Sections.Experiences)
	writeEducations(&b, resume.Sections.Educations)
	writeList(&b, "Skills", resume.Sections.Skills)
	writeList(&b, "Certifications", resume.Sections.Certifications)

	if b.Len() == 0 {
		return strings.TrimSpace(resume.RawText)
	}
	if raw := strings.TrimSpace(resume.RawText); raw != "" && !hasStructuredContent(resume) {
		b.WriteString(raw)
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func hasStructuredContent(resume Resume) bool {
	s := resume.Sections
	return len(s.Experiences) > 0 || len(s.Educations) > 0 || len(s.Skills) > 0 || len(s.Certifications) > 0
}

func writeContact(b *strings.Builder, contact ContactInfo) {
	name := strings.TrimSpace(strings.TrimSpace(contact.FirstName) + " " + strings.TrimSpace(contact.LastName))
	if name != "" {
		b.WriteString("Name: ")
		b.WriteString(name)
		b.WriteString("\n")
	}
	if contact.Email != "" {
		b.WriteString("Email: ")
		b.WriteString(contact.Email)
		b.WriteString("\n")
	}
}

func writeExperiences(b *strings.Builder, experiences []Experience) {
	if len(experiences) == 0 {
		return
	}
	b.WriteString("Experience:\n")
	for _, exp := range experiences {
		b.WriteString("- ")
		b.WriteString(exp.Title)
		if exp.Company != "" {
			b.WriteString(" at ")
			b.WriteString(exp.Company)
		}
		if exp.Start != "" || exp.End != "" {
			b.WriteString(" (")
			b.WriteString(exp.Start)
			b.WriteString(" - ")
			end := exp.End
			if end == "" {
				end = "present"
			}
			b.WriteString(end)
			b.WriteString(")")
		}
		b.WriteString("\n")
		for _, highlight := range exp.Highlights {
			b.WriteString("  * ")
			b.WriteString(highlight)
			b.WriteString("\n")
		}
	}
}

func writeEducations(b *strings.Builder, educations []Education) {
	if len(educations) == 0 {
		return
	}
	b.WriteString("Education:\n")
	for _, edu := range educations {
		b.WriteString("- ")
		b.WriteString(edu.School)
		if edu.Degree != "" {
			b.WriteString(", ")
			b.WriteString(edu.Degree)
		}
		if edu.Year != "" {
			b.WriteString(" (")
			b.WriteString(edu.Year)
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(strings.Join(items, ", "))
	b.WriteString("\n")
}
