package generation

import (
	"context"

	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider invokes an OpenAI-compatible chat completion endpoint.
// Safety thresholds ride along in the request for providers that honor them;
// the OpenAI API applies its own moderation, so they are not forwarded here.
type OpenAIProvider struct {
	client *openai.Client
}

// NewOpenAIProvider builds a provider for the given API key and optional
// custom base URL (for OpenAI-compatible gateways).
func NewOpenAIProvider(apiKey, baseURL string) *OpenAIProvider {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIProvider{client: openai.NewClientWithConfig(config)}
}

// Generate sends the rendered prompt and returns the first choice verbatim.
func (p *OpenAIProvider) Generate(ctx context.Context, req Request) (Response, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return Response{}, err
	}
	if len(resp.Choices) == 0 {
		return Response{}, nil
	}
	choice := resp.Choices[0]
	return Response{
		Text:         choice.Message.Content,
		FinishReason: string(choice.FinishReason),
	}, nil
}
