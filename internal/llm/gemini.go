package llm

import (
	"context"

	genai "google.golang.org/genai"
)

const geminiModelName = "gemini-2.0-flash"

// GeminiModel is a thin wrapper around the official genai client. It only
// covers the API call itself; fallback ordering and output parsing live in
// the analyzer.
//
// MaxAttempts opts in to retrying transient provider errors; zero means a
// single attempt.
type GeminiModel struct {
	cli         *genai.Client
	model       string
	MaxAttempts int
}

func NewGeminiModel(ctx context.Context, apiKey string) (*GeminiModel, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &GeminiModel{cli: cli, model: geminiModelName}, nil
}

func (g *GeminiModel) Name() string { return "gemini:" + g.model }

func (g *GeminiModel) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	parts := []*genai.Part{{Text: prompt}}
	if len(image) > 0 {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: "image/png", Data: image},
		})
	}

	return withRetry(ctx, "gemini", g.MaxAttempts, func() (string, error) {
		resp, err := g.cli.Models.GenerateContent(ctx, g.model,
			[]*genai.Content{{Parts: parts}}, nil)
		if err != nil {
			return "", err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
			len(resp.Candidates[0].Content.Parts) == 0 {
			return "", ErrEmptyResponse
		}
		text := resp.Candidates[0].Content.Parts[0].Text
		if text == "" {
			return "", ErrEmptyResponse
		}
		return text, nil
	})
}
