package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sendgrid/rest"

	"coverletter-backend/internal/coverletters"
	"coverletter-backend/internal/customers"
	"coverletter-backend/internal/monitoring"
	"coverletter-backend/internal/resumes"
)

type stubPoster struct {
	response *rest.Response
	err      error
	bodies   [][]byte
}

func (p *stubPoster) Post(ctx context.Context, body []byte) (*rest.Response, error) {
	p.bodies = append(p.bodies, body)
	return p.response, p.err
}

func fixtures() (customers.Customer, resumes.Resume, coverletters.CoverLetter) {
	customer := customers.Customer{ID: "customer-1", Email: "jane@example.com"}
	resume := resumes.Resume{
		ID:         "resume-1",
		CustomerID: "customer-1",
		Contact:    resumes.ContactInfo{FirstName: "Jane", LastName: "Doe"},
	}
	letter := coverletters.CoverLetter{
		ID:            "letter-1",
		ResumeID:      "resume-1",
		CustomerID:    "customer-1",
		GeneratedText: "Dear Hiring Manager,\n\nI am excited to apply.",
	}
	return customer, resume, letter
}

func TestSendCoverLetterSuccess(t *testing.T) {
	poster := &stubPoster{response: &rest.Response{StatusCode: 202}}
	recorder := &monitoring.Recorder{}
	svc := &Service{
		Poster:      poster,
		SenderEmail: "jobs@example.com",
		SenderName:  "Jobs",
		TemplateID:  "d-template",
		Monitor:     recorder,
	}
	customer, resume, letter := fixtures()

	if !svc.SendCoverLetter(context.Background(), customer, resume, letter) {
		t.Fatal("expected send to report success")
	}
	if calls := recorder.Calls(); len(calls) != 0 {
		t.Fatalf("expected no monitoring calls, got %d", len(calls))
	}
	if len(poster.bodies) != 1 {
		t.Fatalf("expected one post, got %d", len(poster.bodies))
	}

	// json.Marshal escapes < and > in the raw bytes, so assertions go
	// through the decoded body.
	var body struct {
		Personalizations []struct {
			To []struct {
				Email string `json:"email"`
			} `json:"to"`
			DynamicTemplateData map[string]string `json:"dynamic_template_data"`
		} `json:"personalizations"`
		From struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"from"`
		TemplateID string `json:"template_id"`
	}
	if err := json.Unmarshal(poster.bodies[0], &body); err != nil {
		t.Fatalf("decode request body: %v", err)
	}
	if len(body.Personalizations) != 1 || len(body.Personalizations[0].To) != 1 {
		t.Fatalf("expected one personalization with one recipient, got %s", poster.bodies[0])
	}
	data := body.Personalizations[0].DynamicTemplateData
	if got := data["generatedCoverLetter"]; got != "Dear Hiring Manager,<br /><br />I am excited to apply." {
		t.Fatalf("expected newlines converted to <br />, got %q", got)
	}
	if data["firstName"] != "Jane" {
		t.Fatalf("expected firstName in template data, got %q", data["firstName"])
	}
	if got := body.Personalizations[0].To[0].Email; got != "jane@example.com" {
		t.Fatalf("expected recipient email, got %q", got)
	}
	if body.From.Email != "jobs@example.com" || body.From.Name != "Jobs" {
		t.Fatalf("unexpected sender %+v", body.From)
	}
	if body.TemplateID != "d-template" {
		t.Fatalf("expected template id, got %q", body.TemplateID)
	}
}

func TestSendCoverLetterProviderRejection(t *testing.T) {
	poster := &stubPoster{response: &rest.Response{StatusCode: 500, Body: "boom"}}
	recorder := &monitoring.Recorder{}
	svc := &Service{Poster: poster, Monitor: recorder}
	customer, resume, letter := fixtures()

	if svc.SendCoverLetter(context.Background(), customer, resume, letter) {
		t.Fatal("expected send to report failure")
	}
	calls := recorder.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected one monitoring call, got %d", len(calls))
	}
	if calls[0].ErrorMessage != coverletters.MsgUnableToSendEmail {
		t.Fatalf("unexpected monitoring message %q", calls[0].ErrorMessage)
	}
}

func TestSendCoverLetterTransportError(t *testing.T) {
	poster := &stubPoster{err: errors.New("connection refused")}
	recorder := &monitoring.Recorder{}
	svc := &Service{Poster: poster, Monitor: recorder}
	customer, resume, letter := fixtures()

	if svc.SendCoverLetter(context.Background(), customer, resume, letter) {
		t.Fatal("expected send to report failure")
	}
	if calls := recorder.Calls(); len(calls) != 1 {
		t.Fatalf("expected one monitoring call, got %d", len(calls))
	}
}

func TestSendCoverLetterMissingEmail(t *testing.T) {
	poster := &stubPoster{response: &rest.Response{StatusCode: 202}}
	recorder := &monitoring.Recorder{}
	svc := &Service{Poster: poster, Monitor: recorder}
	customer, resume, letter := fixtures()
	customer.Email = ""

	if svc.SendCoverLetter(context.Background(), customer, resume, letter) {
		t.Fatal("expected send to report failure")
	}
	if len(poster.bodies) != 0 {
		t.Fatal("expected no post when the customer has no email")
	}
	if calls := recorder.Calls(); len(calls) != 1 {
		t.Fatalf("expected one monitoring call, got %d", len(calls))
	}
}
