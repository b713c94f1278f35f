package coverletters

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/resumes"
)

// Service generates cover letters and persists the results.
type Service struct {
	Repo  Repo
	LLM   llm.Client
	Model string

	// CountTokens measures prompt size. Defaults to llm.NumTokens and is
	// swappable in tests to avoid encoder downloads.
	CountTokens func(model, text string) (int, error)
}

// NewService constructs a Service for the given model.
func NewService(repo Repo, client llm.Client, model string) *Service {
	return &Service{
		Repo:        repo,
		LLM:         client,
		Model:       model,
		CountTokens: llm.NumTokens,
	}
}

// Generate builds the prompt from the resume and job description, checks the
// token budget, requests a completion, and persists the letter. The budget
// counts the resume text and job description only, not the fixed framing
// messages. When over budget no provider call is made and
// ErrTokenBudgetExceeded is returned.
func (s *Service) Generate(ctx context.Context, resume resumes.Resume, jobDescription string) (CoverLetter, error) {
	serialized := resumes.Serialize(resume)

	used, err := s.inputTokens(serialized + jobDescription)
	if err != nil {
		return CoverLetter{}, fmt.Errorf("count input tokens: %w", err)
	}
	if budget := MaxInputTokens(s.Model); used > budget {
		return CoverLetter{}, fmt.Errorf("%w: %d tokens over a budget of %d", ErrTokenBudgetExceeded, used, budget)
	}

	messages, err := BuildPrompt(serialized, jobDescription)
	if err != nil {
		return CoverLetter{}, err
	}

	completion, inputLog, _, err := s.LLM.CreateChatCompletion(ctx, messages, s.Model, MaxCompletionTokens)
	if err != nil {
		return CoverLetter{}, fmt.Errorf("%w: %v", ErrCompletionFailed, err)
	}
	if len(completion.Choices) == 0 {
		return CoverLetter{}, fmt.Errorf("%w: no choices returned", ErrCompletionFailed)
	}

	letter := CoverLetter{
		ID:                 uuid.NewString(),
		ResumeID:           resume.ID,
		CustomerID:         resume.CustomerID,
		JobDescriptionText: jobDescription,
		GeneratedText:      completion.Choices[0].Message.Content,
		InputLogName:       inputLog.Name,
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, letter); err != nil {
		return CoverLetter{}, fmt.Errorf("persist cover letter: %w", err)
	}
	return letter, nil
}

func (s *Service) inputTokens(text string) (int, error) {
	count := s.CountTokens
	if count == nil {
		count = llm.NumTokens
	}
	return count(s.Model, text)
}

// Rate stores the user's verdict on a letter and returns the updated record.
func (s *Service) Rate(ctx context.Context, id string, rating Rating) (CoverLetter, error) {
	if !rating.Valid() {
		return CoverLetter{}, fmt.Errorf("invalid rating %q", rating)
	}
	return s.Repo.UpdateRating(ctx, id, rating)
}
