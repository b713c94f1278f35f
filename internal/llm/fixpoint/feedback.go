package fixpoint

import (
	"context"
	"fmt"

	"coverletter-backend/internal/llm"
)

type likeRequest struct {
	Likes []likeBody `json:"likes"`
}

type likeBody struct {
	LogName        string `json:"log_name"`
	ThumbsReaction string `json:"thumbs_reaction"`
	UserID         string `json:"user_id"`
}

// RecordSingleUserFeedback forwards one thumbs reaction to the Fixpoint
// feedback-logging endpoint.
func (c *Client) RecordSingleUserFeedback(ctx context.Context, like llm.UserFeedback) error {
	body := likeRequest{
		Likes: []likeBody{
			{
				LogName:        like.LogName,
				ThumbsReaction: wireThumbsReaction(like.Thumbs),
				UserID:         like.UserID,
			},
		},
	}
	if _, err := c.post(ctx, "/v1/likes", body); err != nil {
		return fmt.Errorf("fixpoint record user feedback: %w", err)
	}
	return nil
}

func wireThumbsReaction(reaction llm.ThumbsReaction) string {
	if reaction == llm.ThumbsDown {
		return "THUMBS_DOWN"
	}
	return "THUMBS_UP"
}

var _ llm.FeedbackRecorder = (*Client)(nil)
