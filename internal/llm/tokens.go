package llm

import (
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Very long conversations are more likely to receive incomplete replies, so
// input is capped well below the model's full context window.
// https://platform.openai.com/docs/guides/gpt/managing-tokens

const fallbackEncoding = "cl100k_base"

// NumTokens counts tokens in text using the given model's tokenizer. Unknown
// models fall back to the cl100k_base encoding.
func NumTokens(model, text string) (int, error) {
	enc, err := tiktoken.EncodingForModel(model)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return 0, err
		}
	}
	return len(enc.Encode(text, nil, nil)), nil
}

// MaxContextTokens returns the maximum context window for a model.
func MaxContextTokens(model string) int {
	normalized := strings.ToLower(strings.TrimSpace(model))
	switch {
	case strings.HasPrefix(normalized, "gpt-4o"),
		strings.HasPrefix(normalized, "gpt-4-turbo"),
		strings.HasPrefix(normalized, "gpt-4.1"):
		return 128000
	case strings.HasPrefix(normalized, "gpt-4-32k"):
		return 32768
	case strings.HasPrefix(normalized, "gpt-4"):
		return 8192
	case strings.HasPrefix(normalized, "gpt-3.5-turbo-16k"):
		return 16385
	case strings.HasPrefix(normalized, "gpt-3.5"):
		return 4096
	default:
		return 8192
	}
}
