package coverletters

import (
	"context"

	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/monitoring"
)

// FeedbackRelay forwards letter ratings to the completion provider so they
// can be tied to the prompt logs. Delivery is best effort: a failed relay is
// reported to monitoring and otherwise swallowed, the stored rating is the
// source of truth.
type FeedbackRelay struct {
	Recorder llm.FeedbackRecorder
	Monitor  monitoring.Notifier
}

// Send relays a rating for the letter's input log. A thumbs-down maps to an
// explicit negative reaction, anything else is reported as positive.
func (f *FeedbackRelay) Send(ctx context.Context, letter CoverLetter, userID string) {
	if f.Recorder == nil || letter.InputLogName == "" {
		return
	}
	thumbs := llm.ThumbsUp
	if letter.Rating != nil && *letter.Rating == RatingThumbsDown {
		thumbs = llm.ThumbsDown
	}
	feedback := llm.UserFeedback{
		LogName: letter.InputLogName,
		Thumbs:  thumbs,
		UserID:  userID,
	}
	if err := f.Recorder.RecordSingleUserFeedback(ctx, feedback); err != nil {
		if f.Monitor != nil {
			f.Monitor.Notify(MsgUnableToSendFeedback, err)
		}
	}
}
