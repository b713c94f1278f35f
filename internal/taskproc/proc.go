package taskproc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"coverletter-backend/internal/queue"
)

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrMissingRef indicates a message missing the resume or customer id.
type ErrMissingRef struct {
	Meta      MessageMeta
	RequestID string
}

func (e ErrMissingRef) Error() string { return "missing resume or customer id" }

// ErrProcess indicates processing failed after successful parsing.
type ErrProcess struct {
	ResumeID  string
	RequestID string
	Payload   ErrorPayload
}

func (e ErrProcess) Error() string {
	return "process generation: " + e.Payload.ErrorMessage
}

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (queue.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if strings.TrimSpace(msg.ResumeID) == "" || strings.TrimSpace(msg.CustomerID) == "" {
		return msg, meta, ErrMissingRef{Meta: meta, RequestID: msg.RequestID}
	}
	return msg, meta, nil
}

// HandleMessage parses, validates, and processes a message payload.
func HandleMessage(ctx context.Context, orch *Orchestrator, body string) error {
	if orch == nil {
		return errors.New("generation orchestrator not configured")
	}

	msg, _, err := ParseMessage(body)
	if err != nil {
		return err
	}

	result := orch.Run(ctx, msg)
	if result.Err != nil {
		return ErrProcess{ResumeID: msg.ResumeID, RequestID: msg.RequestID, Payload: *result.Err}
	}
	return nil
}
