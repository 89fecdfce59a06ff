package llm

import (
	"context"
	"encoding/base64"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIModel backs the generative capability with GPT-4o. Image input is
// passed as an inline data URL on a multi-part user message.
//
// MaxAttempts opts in to retrying transient provider errors; zero means a
// single attempt.
type OpenAIModel struct {
	client      *openai.Client
	MaxAttempts int
}

func NewOpenAIModel(apiKey string) *OpenAIModel {
	return &OpenAIModel{client: openai.NewClient(apiKey)}
}

func (o *OpenAIModel) Name() string { return "openai:" + openai.GPT4o }

func (o *OpenAIModel) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	var msg openai.ChatCompletionMessage
	if len(image) > 0 {
		msg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: prompt},
				{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
					URL: "data:image/png;base64," + base64.StdEncoding.EncodeToString(image),
				}},
			},
		}
	} else {
		msg = openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: prompt}
	}

	return withRetry(ctx, "openai", o.MaxAttempts, func() (string, error) {
		resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       openai.GPT4o,
			Messages:    []openai.ChatCompletionMessage{msg},
			Temperature: 0.3,
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return "", ErrEmptyResponse
		}
		return resp.Choices[0].Message.Content, nil
	})
}
