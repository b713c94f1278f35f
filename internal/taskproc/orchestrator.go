package taskproc

import (
	"context"
	"time"

	"github.com/google/uuid"

	"coverletter-backend/internal/analytics"
	"coverletter-backend/internal/coverletters"
	"coverletter-backend/internal/customers"
	"coverletter-backend/internal/monitoring"
	"coverletter-backend/internal/queue"
	"coverletter-backend/internal/resumes"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/telemetry"
)

// ErrorPayload is the failure shape returned to task callers.
type ErrorPayload struct {
	IsError      bool   `json:"is_error"`
	ErrorMessage string `json:"error_message"`
}

// Result is the outcome of a generation job. Exactly one of Letter and Err
// is set.
type Result struct {
	Letter *coverletters.View `json:"coverLetter,omitempty"`
	Err    *ErrorPayload      `json:"error,omitempty"`
}

// LetterMailer delivers a generated letter by email.
type LetterMailer interface {
	SendCoverLetter(ctx context.Context, customer customers.Customer, resume resumes.Resume, letter coverletters.CoverLetter) bool
}

// Orchestrator runs the full generation pipeline for a queued job: generate
// and persist the letter, bump the customer's generation counter, record the
// conversion event with the active experiment variants, and email the result.
// Counter, analytics, and email steps are best effort once the letter exists.
type Orchestrator struct {
	Generator *coverletters.Service
	Resumes   resumes.Repo
	Customers customers.Repo
	Events    analytics.Repo
	Mailer    LetterMailer
	Monitor   monitoring.Notifier
}

// Run executes the pipeline for one job.
func (o *Orchestrator) Run(ctx context.Context, msg queue.Message) Result {
	started := metrics.NowMillis()

	resume, err := o.Resumes.GetByID(ctx, msg.CustomerID, msg.ResumeID)
	if err != nil {
		return o.fail(msg, err)
	}

	letter, err := o.Generator.Generate(ctx, resume, msg.JobDescriptionText)
	if err != nil {
		return o.fail(msg, err)
	}
	metrics.ObserveGenerationDurationMs(metrics.NowMillis() - started)

	if count, err := o.Customers.IncrementCoverLettersGenerated(ctx, msg.CustomerID); err != nil {
		o.notify(coverletters.MsgUnableToRecordEngagement, err)
		telemetry.Error("taskproc.counter_failed", map[string]any{
			"customer_id": msg.CustomerID,
			"error":       err.Error(),
		})
	} else {
		telemetry.Info("taskproc.counter_incremented", map[string]any{
			"customer_id": msg.CustomerID,
			"count":       count,
		})
	}

	event := analytics.ConversionEvent{
		ID:                uuid.NewString(),
		EventName:         analytics.EventCoverLetterGenerate,
		ResumeID:          msg.ResumeID,
		ExpVariantStrings: analytics.ListExpVariantStrings(msg.RequestCookies),
		CreatedAt:         time.Now().UTC(),
	}
	if err := o.Events.Create(ctx, event); err != nil {
		o.notify(coverletters.MsgUnableToRecordEngagement, err)
		telemetry.Error("taskproc.conversion_event_failed", map[string]any{
			"resume_id": msg.ResumeID,
			"error":     err.Error(),
		})
	}

	o.sendEmail(ctx, msg.CustomerID, resume, letter)

	view := coverletters.NewView(letter)
	return Result{Letter: &view}
}

func (o *Orchestrator) fail(msg queue.Message, err error) Result {
	o.notify(coverletters.MsgUnableToGenerate, err)
	telemetry.Error("taskproc.generation_failed", map[string]any{
		"resume_id":   msg.ResumeID,
		"customer_id": msg.CustomerID,
		"request_id":  msg.RequestID,
		"error":       err.Error(),
	})
	return Result{Err: &ErrorPayload{
		IsError:      true,
		ErrorMessage: coverletters.MsgUnableToGenerate,
	}}
}

func (o *Orchestrator) sendEmail(ctx context.Context, customerID string, resume resumes.Resume, letter coverletters.CoverLetter) {
	if o.Mailer == nil {
		return
	}
	customer, err := o.Customers.GetByID(ctx, customerID)
	if err != nil {
		o.notify(coverletters.MsgUnableToSendEmail, err)
		telemetry.Error("taskproc.email_lookup_failed", map[string]any{
			"customer_id": customerID,
			"error":       err.Error(),
		})
		return
	}
	if o.Mailer.SendCoverLetter(ctx, customer, resume, letter) {
		metrics.IncEmailsSent()
	}
}

func (o *Orchestrator) notify(message string, err error) {
	if o.Monitor != nil {
		o.Monitor.Notify(message, err)
	}
}
