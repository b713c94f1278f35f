package llm

import (
	"context"
	"errors"
)

// Message is a single chat message sent to the completion provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RoleUser is the chat role used for applicant-side prompt messages.
const RoleUser = "user"

// UserMessage builds a user-role chat message.
func UserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Choice is one candidate completion.
type Choice struct {
	Message      Message
	FinishReason string
}

// Completion is the provider response to a chat-completion request.
type Completion struct {
	ID      string
	Model   string
	Choices []Choice
}

// LogRef identifies a recorded request or response log at the completion
// provider, used later to attribute user feedback.
type LogRef struct {
	Name string
}

// Client invokes a hosted chat-completion model and records request/response
// logs for feedback attribution.
type Client interface {
	CreateChatCompletion(ctx context.Context, messages []Message, model string, maxTokens int) (Completion, LogRef, LogRef, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("completion provider not configured")

// PlaceholderClient is a stub implementation used when no provider
// credentials are configured, such as local development.
type PlaceholderClient struct{}

// CreateChatCompletion returns ErrNotConfigured.
func (PlaceholderClient) CreateChatCompletion(ctx context.Context, messages []Message, model string, maxTokens int) (Completion, LogRef, LogRef, error) {
	_ = ctx
	_ = messages
	_ = model
	_ = maxTokens
	return Completion{}, LogRef{}, LogRef{}, ErrNotConfigured
}

var _ Client = PlaceholderClient{}

// ThumbsReaction is a binary user reaction to a generated completion.
type ThumbsReaction string

const (
	ThumbsUp   ThumbsReaction = "thumbs_up"
	ThumbsDown ThumbsReaction = "thumbs_down"
)

// UserFeedback attributes a thumbs reaction to a recorded completion log.
type UserFeedback struct {
	LogName string         `json:"log_name"`
	Thumbs  ThumbsReaction `json:"thumbs_reaction"`
	UserID  string         `json:"user_id"`
}

// FeedbackRecorder forwards user feedback to the completion provider's
// feedback-logging endpoint.
type FeedbackRecorder interface {
	RecordSingleUserFeedback(ctx context.Context, like UserFeedback) error
}
