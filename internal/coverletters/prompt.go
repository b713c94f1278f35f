package coverletters

import (
	"encoding/json"
	"fmt"

	"coverletter-backend/internal/llm"
)

const (
	// MaxCompletionTokens caps the generated letter length.
	MaxCompletionTokens = 600

	// inputBudgetRatio is the share of the model's context window the
	// prompt may occupy. The remainder is headroom for the completion.
	inputBudgetRatio = 0.7
)

const (
	promptBegin = "You are a Job applicant. You will be provided with your " +
		"resume and a job description you are applying for."

	promptTask = "First take a moment to fully understand your career objective, " +
		"based on the provided resume. Then, create a cover letter strictly " +
		"for the provided job description highlighting all your skills, experiences, " +
		"projects and certifications relevant to the job. All the necessary " +
		"information will be provided in the next message."

	promptReturn = "You should return around 5 paragraphs in about 300 words."
)

// BuildPrompt assembles the chat messages for a generation request. The
// resume and job description travel as a JSON payload so the model sees
// them clearly delimited.
func BuildPrompt(serializedResume, jobDescription string) ([]llm.Message, error) {
	payload, err := json.Marshal(map[string]string{
		"resume":          serializedResume,
		"job_description": jobDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("encode prompt payload: %w", err)
	}
	return []llm.Message{
		llm.UserMessage(promptBegin),
		llm.UserMessage(promptTask),
		llm.UserMessage(string(payload)),
		llm.UserMessage(promptReturn),
	}, nil
}

// MaxInputTokens returns the input budget for a model.
func MaxInputTokens(model string) int {
	return int(float64(llm.MaxContextTokens(model)) * inputBudgetRatio)
}
