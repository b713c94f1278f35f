package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"coverletter-backend/internal/coverletters"
	"coverletter-backend/internal/customers"
	"coverletter-backend/internal/monitoring"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/telemetry"
)

// Poster submits a mail-send request body to the mail provider.
type Poster interface {
	Post(ctx context.Context, body []byte) (*rest.Response, error)
}

// SendGridClient posts mail-send requests to the SendGrid v3 API.
type SendGridClient struct {
	APIKey string
}

// Post submits the request body to /v3/mail/send.
func (c *SendGridClient) Post(ctx context.Context, body []byte) (*rest.Response, error) {
	request := sendgrid.GetRequest(c.APIKey, "/v3/mail/send", "https://api.sendgrid.com")
	request.Method = "POST"
	request.Body = body
	return sendgrid.MakeRequestWithContext(ctx, request)
}

var _ Poster = (*SendGridClient)(nil)

// Service sends templated cover letter emails. Delivery is best effort: a
// failure is reported to monitoring and the caller only learns sent/not-sent.
type Service struct {
	Poster      Poster
	SenderEmail string
	SenderName  string
	TemplateID  string
	Monitor     monitoring.Notifier
}

// SendCoverLetter emails the generated letter to the customer using the
// dynamic template. Newlines in the letter become <br /> tags so the HTML
// template keeps the paragraph breaks. Returns true when the provider
// accepted the message.
func (s *Service) SendCoverLetter(ctx context.Context, customer customers.Customer, resume resumes.Resume, letter coverletters.CoverLetter) bool {
	if customer.Email == "" {
		s.report(fmt.Errorf("customer %s has no email address", customer.ID))
		return false
	}

	body := mail.GetRequestBody(s.buildMessage(customer, resume, letter))
	response, err := s.Poster.Post(ctx, body)
	if err != nil {
		s.report(err)
		return false
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		s.report(fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body))
		return false
	}

	telemetry.Info("mailer.sent", map[string]any{
		"cover_letter_id": letter.ID,
		"status":          response.StatusCode,
	})
	return true
}

func (s *Service) buildMessage(customer customers.Customer, resume resumes.Resume, letter coverletters.CoverLetter) *mail.SGMailV3 {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(s.SenderName, s.SenderEmail))
	message.SetTemplateID(s.TemplateID)

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail("", customer.Email))
	personalization.SetDynamicTemplateData("firstName", resume.FirstName())
	personalization.SetDynamicTemplateData("generatedCoverLetter", strings.ReplaceAll(letter.GeneratedText, "\n", "<br />"))
	message.AddPersonalizations(personalization)
	return message
}

func (s *Service) report(err error) {
	if s.Monitor != nil {
		s.Monitor.Notify(coverletters.MsgUnableToSendEmail, err)
	}
}
