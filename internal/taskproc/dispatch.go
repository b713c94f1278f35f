package taskproc

import (
	"context"
	"time"

	"coverletter-backend/internal/queue"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/telemetry"
)

const inlineJobTimeout = 5 * time.Minute

// QueueDispatcher hands jobs to the external queue for the worker process.
type QueueDispatcher struct {
	Client queue.Client
}

// Dispatch enqueues the job.
func (d *QueueDispatcher) Dispatch(ctx context.Context, msg queue.Message) error {
	return d.Client.Send(ctx, msg)
}

// InlineDispatcher runs jobs in-process when no queue is configured, such as
// local development. The job runs on its own context so it survives the HTTP
// request that triggered it.
type InlineDispatcher struct {
	Orch *Orchestrator
}

// Dispatch starts the job in a goroutine and returns immediately.
func (d *InlineDispatcher) Dispatch(ctx context.Context, msg queue.Message) error {
	metrics.IncGenerationJobsReceived()
	go func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), inlineJobTimeout)
		defer cancel()
		result := d.Orch.Run(jobCtx, msg)
		if result.Err != nil {
			metrics.IncGenerationJobsFailed()
			return
		}
		metrics.IncGenerationJobsCompleted()
		telemetry.Info("taskproc.inline_completed", map[string]any{
			"resume_id":  msg.ResumeID,
			"request_id": msg.RequestID,
		})
	}()
	return nil
}
