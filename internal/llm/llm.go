package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the provider answered but produced no
// usable text. Callers treat it the same as a transport failure and fall
// through to the next analysis strategy.
var ErrEmptyResponse = errors.New("model returned empty response")

// Model is the generative capability the analyzer and generator depend on.
// Implementations make no guarantee about output shape; all shape
// enforcement happens in the response normalizer.
type Model interface {
	// Generate sends prompt (plus an optional PNG image for vision-capable
	// calls) and returns the raw response text.
	Generate(ctx context.Context, prompt string, image []byte) (string, error)
	// Name identifies the provider/model for logging.
	Name() string
}

// FromConfig builds the configured model, or returns nil when no provider is
// configured. A nil model is a supported state: the pipeline then runs on
// the rule-based analysis path only.
func FromConfig(ctx context.Context, provider, geminiKey, openAIKey string) (Model, error) {
	switch provider {
	case "gemini":
		if geminiKey == "" {
			return nil, nil
		}
		return NewGeminiModel(ctx, geminiKey)
	case "openai":
		if openAIKey == "" {
			return nil, nil
		}
		return NewOpenAIModel(openAIKey), nil
	case "", "none":
		return nil, nil
	default:
		return nil, errors.New("unknown LLM provider: " + provider)
	}
}
