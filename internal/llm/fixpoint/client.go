package fixpoint

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"coverletter-backend/internal/llm"
)

// Client implements llm.Client and llm.FeedbackRecorder. Completions go
// through OpenAI; every request and response is also recorded against the
// Fixpoint logging API so user feedback can be attributed later.
type Client struct {
	openai     *openai.Client
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a Fixpoint-wrapped completion client.
func NewClient(openaiAPIKey, fixpointAPIKey, fixpointAPIURL string) (*Client, error) {
	if strings.TrimSpace(openaiAPIKey) == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if strings.TrimSpace(fixpointAPIKey) == "" {
		return nil, fmt.Errorf("FIXPOINT_API_KEY is required")
	}
	if strings.TrimSpace(fixpointAPIURL) == "" {
		return nil, fmt.Errorf("FIXPOINT_API_URL is required")
	}
	timeout := 120 * time.Second
	if raw := strings.TrimSpace(os.Getenv("FIXPOINT_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			timeout = time.Duration(parsed) * time.Second
		}
	}
	return &Client{
		openai: openai.NewClient(openaiAPIKey),
		apiURL: strings.TrimRight(fixpointAPIURL, "/"),
		apiKey: fixpointAPIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type inputLogRequest struct {
	ModelName string        `json:"model_name"`
	Messages  []llm.Message `json:"messages"`
}

type outputLogRequest struct {
	InputName  string          `json:"input_name"`
	ModelName  string          `json:"model_name"`
	Completion json.RawMessage `json:"completion"`
}

type logResponse struct {
	Name string `json:"name"`
}

// CreateChatCompletion records an input log, runs the completion, and records
// an output log. The returned log refs carry the Fixpoint log names.
func (c *Client) CreateChatCompletion(ctx context.Context, messages []llm.Message, model string, maxTokens int) (llm.Completion, llm.LogRef, llm.LogRef, error) {
	inputLog, err := c.recordLog(ctx, fmt.Sprintf("/v1/openai_chats/%s/input_logs", model), inputLogRequest{
		ModelName: model,
		Messages:  messages,
	})
	if err != nil {
		return llm.Completion{}, llm.LogRef{}, llm.LogRef{}, fmt.Errorf("fixpoint input log: %w", err)
	}

	reqMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		reqMessages = append(reqMessages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	resp, err := c.openai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     model,
		Messages:  reqMessages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return llm.Completion{}, llm.LogRef{}, llm.LogRef{}, fmt.Errorf("create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return llm.Completion{}, llm.LogRef{}, llm.LogRef{}, fmt.Errorf("chat completion response missing choices")
	}

	rawCompletion, err := json.Marshal(resp)
	if err != nil {
		return llm.Completion{}, llm.LogRef{}, llm.LogRef{}, fmt.Errorf("encode completion for output log: %w", err)
	}
	outputLog, err := c.recordLog(ctx, fmt.Sprintf("/v1/openai_chats/%s/output_logs", model), outputLogRequest{
		InputName:  inputLog.Name,
		ModelName:  model,
		Completion: rawCompletion,
	})
	if err != nil {
		return llm.Completion{}, llm.LogRef{}, llm.LogRef{}, fmt.Errorf("fixpoint output log: %w", err)
	}

	completion := llm.Completion{
		ID:    resp.ID,
		Model: resp.Model,
	}
	for _, choice := range resp.Choices {
		completion.Choices = append(completion.Choices, llm.Choice{
			Message:      llm.Message{Role: choice.Message.Role, Content: choice.Message.Content},
			FinishReason: string(choice.FinishReason),
		})
	}
	return completion, llm.LogRef{Name: inputLog.Name}, llm.LogRef{Name: outputLog.Name}, nil
}

func (c *Client) recordLog(ctx context.Context, path string, body any) (logResponse, error) {
	raw, err := c.post(ctx, path, body)
	if err != nil {
		return logResponse{}, err
	}
	var parsed logResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return logResponse{}, fmt.Errorf("parse log response: %w", err)
	}
	if parsed.Name == "" {
		return logResponse{}, fmt.Errorf("log response missing name")
	}
	return parsed, nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fixpoint %s: status %d: %s", path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

var _ llm.Client = (*Client)(nil)
